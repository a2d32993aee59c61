package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/pricat/pkg/errors"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Execute runs pricat with args and returns the process exit code. Errors are
// rendered on stderr, stdout only ever carries command output.
func Execute(args []string, stdout, stderr io.Writer) int {
	// cobra reads os.Args when given nil
	if args == nil {
		args = []string{}
	}

	a := &app{}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}

	renderer, rerr := a.renderer(stderr)
	if rerr != nil {
		// --display itself was bad, fall back to plain text
		a.display = "text"
		renderer, rerr = a.renderer(stderr)
	}
	if rerr != nil || renderer.RenderError(err) != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}

// ExitCode maps an error to the process exit code: usage errors exit with 2,
// every other failure with 1
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsErrorCode(err, errors.ErrInvalidInput):
		return ExitUsage
	case strings.HasPrefix(err.Error(), "unknown command"),
		strings.HasPrefix(err.Error(), "unknown flag"):
		return ExitUsage
	default:
		return ExitError
	}
}
