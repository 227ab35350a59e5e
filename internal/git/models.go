package git

import (
	"strings"
	"time"
)

// CommitInfo represents one commit in the report period.
type CommitInfo struct {
	SHA     string
	When    time.Time
	Author  AuthorInfo
	Message string   // subject line only
	Files   []string // paths touched, after filtering
}

// ShortSHA returns the abbreviated hash used in report bullets.
func (c CommitInfo) ShortSHA() string {
	if len(c.SHA) <= 7 {
		return c.SHA
	}
	return c.SHA[:7]
}

// AuthorInfo represents commit author information.
type AuthorInfo struct {
	Name  string
	Email string
}

// Engine selects the history reading implementation.
type Engine string

const (
	EngineGoGit  Engine = "gogit"
	EngineGitCLI Engine = "cli"
)

// ReadOptions configures a history reader.
type ReadOptions struct {
	RepoPath string
	Branch   string
	Since    time.Time // inclusive
	Until    time.Time // exclusive
	Include  []string  // glob patterns for commit file paths
	Exclude  []string
}

// inBounds enforces the half-open [Since, Until) interval regardless of
// how the underlying engine interprets its own range flags.
func (o ReadOptions) inBounds(t time.Time) bool {
	return !t.Before(o.Since) && t.Before(o.Until)
}

// subjectLine reduces a full commit message to its first line.
func subjectLine(message string) string {
	if idx := strings.IndexByte(message, '\n'); idx != -1 {
		message = message[:idx]
	}
	return strings.TrimRight(message, "\r")
}
