package retro

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// globalDebug enables debug assertions: double completion and tree misuse
// panic instead of logging. Set via Scene.SetDebugMode or SetDebugMode.
var globalDebug bool

// logger is the package logger. Library code logs only warnings unless debug
// mode raises the level.
var logger = newPackageLogger(os.Stderr)

func newPackageLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: "retro",
		Level:  log.WarnLevel,
	})
}

// SetLogger replaces the package logger. Passing nil restores the default
// stderr logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newPackageLogger(os.Stderr)
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *log.Logger {
	return logger
}

// SetDebugMode toggles debug assertions and debug-level logging.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
	if enabled {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
}

// debugCheckDisposed panics with a descriptive message when a disposed view is
// used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(v *View, op string) {
	if v.disposed {
		panic(fmt.Sprintf("retro debug: %s on disposed view %q (ID was %d)", op, v.Name, v.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(v *View) {
	depth := 0
	for p := v; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		logger.Warn("tree depth exceeds threshold", "depth", depth, "max", debugMaxTreeDepth, "view", v.Name)
	}
}

// debugCheckChildCount warns if a view has more than 1000 children.
// MultiCircle on a large screen gets close to this with one layer per cell,
// but cells are mask layers, not views.
const debugMaxChildCount = 1000

func debugCheckChildCount(v *View) {
	if len(v.children) > debugMaxChildCount {
		logger.Warn("view has too many children", "view", v.Name, "children", len(v.children), "max", debugMaxChildCount)
	}
}
