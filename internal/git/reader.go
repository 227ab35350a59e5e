package git

import (
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// GoGitReader reads commit history through go-git. This is the default
// engine: no external binary required.
type GoGitReader struct {
	repo *git.Repository
	opts ReadOptions
}

// NewGoGitReader opens the repository at opts.RepoPath.
func NewGoGitReader(opts ReadOptions) (*GoGitReader, error) {
	repo, err := git.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, &ExternalToolError{Op: "open", Err: err}
	}
	return &GoGitReader{repo: repo, opts: opts}, nil
}

// ReadCommits reads commits inside the configured bounds, oldest first.
func (r *GoGitReader) ReadCommits() ([]CommitInfo, error) {
	from, err := r.resolveStart()
	if err != nil {
		return nil, err
	}

	since := r.opts.Since
	until := r.opts.Until
	logOpts := &git.LogOptions{From: from, Since: &since, Until: &until}

	cIter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, &ExternalToolError{Op: "log", Err: err}
	}

	var results []CommitInfo

	err = cIter.ForEach(func(c *object.Commit) error {
		// go-git's Since/Until are a prefilter; the half-open
		// interval is enforced here so both engines agree.
		if !r.opts.inBounds(c.Committer.When) {
			return nil
		}

		files, err := r.commitFiles(c)
		if err != nil {
			return err
		}

		results = append(results, CommitInfo{
			SHA:     c.Hash.String(),
			When:    c.Committer.When,
			Author:  AuthorInfo{Name: c.Author.Name, Email: c.Author.Email},
			Message: subjectLine(c.Message),
			Files:   files,
		})
		return nil
	})
	if err != nil {
		return nil, &ExternalToolError{Op: "log", Err: err}
	}

	// Log order depends on traversal; the report wants oldest first.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].When.Before(results[j].When)
	})

	return results, nil
}

func (r *GoGitReader) resolveStart() (plumbing.Hash, error) {
	rev := strings.TrimSpace(r.opts.Branch)
	if rev == "" || strings.EqualFold(rev, "HEAD") {
		ref, err := r.repo.Head()
		if err != nil {
			return plumbing.ZeroHash, &ExternalToolError{Op: "resolve HEAD", Err: err}
		}
		return ref.Hash(), nil
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, &ExternalToolError{Op: "resolve " + rev, Err: err}
	}
	return *hash, nil
}

// commitFiles lists the paths a commit touched, filtered by the
// configured globs. Stats covers parentless commits by diffing against
// the empty tree, so initial commits are reported too.
func (r *GoGitReader) commitFiles(c *object.Commit) ([]string, error) {
	stats, err := c.Stats()
	if err != nil {
		return nil, err
	}

	var files []string
	for _, st := range stats {
		path := st.Name
		if path == "" || !matchesFilters(path, r.opts.Include, r.opts.Exclude) {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// matchesFilters checks a path against include/exclude glob patterns.
// Exclude wins; an empty include list accepts everything.
func matchesFilters(path string, include, exclude []string) bool {
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range exclude {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return false
		}
	}

	if len(include) == 0 {
		return true
	}
	for _, pattern := range include {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}
