package libdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/docwire/doc"
	"github.com/signadot/docwire/json"
)

// Lines returns a line diff of the indented JSON text of from and to.
// Removed lines are prefixed "-", added lines "+" and unchanged lines
// " ". If colored, added and removed lines are colored for terminals.
func Lines(from, to *doc.Node, colored bool) (string, error) {
	a, err := json.Marshal(from, json.Indent(2))
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(to, json.Indent(2))
	if err != nil {
		return "", err
	}
	diffCfg := diffpatch.New()
	ac, bc, lines := diffCfg.DiffLinesToChars(string(a)+"\n", string(b)+"\n")
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(ac, bc, false), lines)

	add, del := fmt.Sprintf, fmt.Sprintf
	if colored {
		add = color.GreenString
		del = color.RedString
	}
	buf := &strings.Builder{}
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			switch d.Type {
			case diffpatch.DiffInsert:
				buf.WriteString(add("+%s", ln))
			case diffpatch.DiffDelete:
				buf.WriteString(del("-%s", ln))
			default:
				buf.WriteString(" " + ln)
			}
			buf.WriteByte('\n')
		}
	}
	return buf.String(), nil
}
