package git

import "fmt"

// ExternalToolError indicates the version-control query could not be
// executed: the path is not a repository, the git binary is missing, or
// the log command itself failed. Never retried; surfaced to the caller.
type ExternalToolError struct {
	Op  string
	Err error
}

func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("git %s: %v", e.Op, e.Err)
}

func (e *ExternalToolError) Unwrap() error {
	return e.Err
}
