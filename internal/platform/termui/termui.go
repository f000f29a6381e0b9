package termui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	apperrors "quizterm/internal/platform/errors"
)

// IsTerminal reports whether a writer is a TTY.
var IsTerminal = defaultIsTerminal

// Decision captures which front-end the play command should use.
type Decision struct {
	UseTUI  bool
	Warning string
}

// Resolve maps a configured ui mode onto a front-end for the given output.
func Resolve(mode string, stdout io.Writer) (Decision, error) {
	switch mode {
	case "", "plain":
		return Decision{}, nil
	case "auto":
		return Decision{UseTUI: IsTerminal(stdout)}, nil
	case "tui":
		if IsTerminal(stdout) {
			return Decision{UseTUI: true}, nil
		}
		return Decision{Warning: "TUI requested but stdout is not a TTY; falling back to plain output."}, nil
	default:
		return Decision{}, fmt.Errorf("%w: ui mode %q (expected plain|tui|auto)", apperrors.ErrInvalidInput, mode)
	}
}

func defaultIsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
