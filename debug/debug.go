package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

type debug struct {
	JSON  bool
	BSON  bool
	FSON  bool
	Match bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.JSON = boolEnv("DW_DEBUG_JSON")
	d.BSON = boolEnv("DW_DEBUG_BSON")
	d.FSON = boolEnv("DW_DEBUG_FSON")
	d.Match = boolEnv("DW_DEBUG_MATCH")
	d.Patch = boolEnv("DW_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func JSON() bool {
	return d.JSON
}
func BSON() bool {
	return d.BSON
}
func FSON() bool {
	return d.FSON
}
func Match() bool {
	return d.Match
}
func Patch() bool {
	return d.Patch
}

var (
	loggersMu sync.Mutex
	loggers   = map[string]*zap.Logger{}
)

// Logger returns the logger for the named codec ("json", "bson", "fson",
// "match" or "patch"). It is a no-op logger unless the corresponding
// DW_DEBUG_* variable is set.
func Logger(name string) *zap.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok := loggers[name]; ok {
		return l
	}
	l := zap.NewNop()
	if enabled(name) {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		if dl, err := cfg.Build(); err == nil {
			l = dl.Named(name)
		}
	}
	loggers[name] = l
	return l
}

// SetLogger replaces the logger returned by Logger(name).
func SetLogger(name string, l *zap.Logger) {
	loggersMu.Lock()
	defer loggersMu.Unlock()
	loggers[name] = l
}

func enabled(name string) bool {
	switch name {
	case "json":
		return d.JSON
	case "bson":
		return d.BSON
	case "fson":
		return d.FSON
	case "match":
		return d.Match
	case "patch":
		return d.Patch
	}
	return false
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
