package git

// HistoryReader reads commit history for a report period.
// The abstraction keeps the go-git and git-CLI engines interchangeable.
type HistoryReader interface {
	// ReadCommits returns commits inside the configured bounds,
	// oldest first. An empty slice is a valid result.
	ReadCommits() ([]CommitInfo, error)
}

// NewHistoryReader constructs the reader for the selected engine.
func NewHistoryReader(engine Engine, opts ReadOptions) (HistoryReader, error) {
	switch engine {
	case EngineGitCLI:
		return NewCLIReader(opts), nil
	default:
		return NewGoGitReader(opts)
	}
}

// Compile-time interface conformance checks.
var (
	_ HistoryReader = (*GoGitReader)(nil)
	_ HistoryReader = (*CLIReader)(nil)
)
