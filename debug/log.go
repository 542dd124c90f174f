package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/docwire/doc"
)

// Logf writes a formatted message to stderr, rendering *doc.Node and
// plain map/slice arguments as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *doc.Node:
			d, err := json.Marshal(doc.ToAny(x))
			if err != nil {
				args[i] = fmt.Sprintf("[raw *doc.Node] %v", x)
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
