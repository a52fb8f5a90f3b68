package cmd

import (
	"errors"
	"fmt"
	"io"
)

// Error kinds. Every failure returned by a command wraps exactly one of these.
var (
	ErrMissingArgument          = errors.New("missing argument")
	ErrPathAlreadyExists        = errors.New("path already exists")
	ErrThemeNotFound            = errors.New("theme not found")
	ErrInvalidTheme             = errors.New("invalid theme")
	ErrStarterTemplateMissing   = errors.New("starter template missing")
	ErrDocsBundleMissing        = errors.New("docs bundle missing")
	ErrDocNotFound              = errors.New("doc not found")
	ErrContainerRuntimeNotFound = errors.New("container runtime not found")
	ErrContainerSpawn           = errors.New("container spawn failed")
	ErrContainerExit            = errors.New("container exited non-zero")
)

// Failure is a user-facing error: Msg is printed after "Error: " and each
// entry in Details goes on its own line underneath.
type Failure struct {
	Kind    error
	Msg     string
	Details []string
}

func (f *Failure) Error() string { return f.Msg }

func (f *Failure) Unwrap() error { return f.Kind }

// Fail returns a Failure of the given kind.
func Fail(kind error, msg string, details ...string) *Failure {
	return &Failure{Kind: kind, Msg: msg, Details: details}
}

// ExitStatusError carries a child process exit code that should become the
// program's own exit code.
type ExitStatusError struct {
	Code int
}

func (e *ExitStatusError) Error() string {
	return fmt.Sprintf("container exited with code %d", e.Code)
}

func (e *ExitStatusError) Unwrap() error { return ErrContainerExit }

// ExitCode maps an error returned from a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exit *ExitStatusError
	if errors.As(err, &exit) {
		return exit.Code
	}
	return 1
}

// report writes err to w the way the user should see it. Child exit codes are
// not reported; the container has already written its own output.
func report(w io.Writer, err error) {
	var exit *ExitStatusError
	if errors.As(err, &exit) {
		return
	}
	var f *Failure
	if errors.As(err, &f) {
		fmt.Fprintf(w, "Error: %s\n", f.Msg)
		for _, d := range f.Details {
			fmt.Fprintln(w, d)
		}
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
