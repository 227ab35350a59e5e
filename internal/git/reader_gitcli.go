package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"
)

// CLIReader reads commit history by invoking the git binary. It exists
// for repositories where opening through go-git is impractical; output
// is record-separated so it parses reliably even with exotic paths or
// messages.
type CLIReader struct {
	opts ReadOptions
}

// NewCLIReader creates a reader that shells out to git.
func NewCLIReader(opts ReadOptions) *CLIReader {
	return &CLIReader{opts: opts}
}

// ReadCommits reads commits inside the configured bounds, oldest first.
func (r *CLIReader) ReadCommits() ([]CommitInfo, error) {
	// Each commit header line is prefixed by 0x1e (record separator),
	// then NUL-separated fields, and ends with a newline. --name-only -z
	// appends NUL-terminated paths, so records split cleanly on 0x1e.
	const format = "%x1e%H%x00%cI%x00%an%x00%ae%x00%s%n"

	args := []string{
		"-C", r.opts.RepoPath,
		"log",
		"--no-color",
		"--pretty=format:" + format,
		"--name-only", "-z",
		fmt.Sprintf("--since=@%d", r.opts.Since.Unix()),
		fmt.Sprintf("--until=@%d", r.opts.Until.Unix()),
	}

	rev := strings.TrimSpace(r.opts.Branch)
	if rev != "" && !strings.EqualFold(rev, "HEAD") {
		args = append(args, rev)
	}

	// stderr is kept out of the parse stream: git chatter (warnings,
	// advice) must not be mistaken for log records.
	cmd := exec.Command("git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &ExternalToolError{
			Op:  "log",
			Err: fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String())),
		}
	}

	results, err := r.parseLog(stdout.Bytes())
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].When.Before(results[j].When)
	})

	return results, nil
}

func (r *CLIReader) parseLog(out []byte) ([]CommitInfo, error) {
	records := bytes.Split(out, []byte{0x1e})
	results := make([]CommitInfo, 0, len(records))

	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}

		header, body := splitHeaderBody(rec)
		if len(header) == 0 {
			continue
		}

		fields := bytes.SplitN(header, []byte{0x00}, 5)
		if len(fields) < 5 {
			return nil, &ExternalToolError{
				Op:  "log",
				Err: fmt.Errorf("unexpected header format"),
			}
		}

		when, err := time.Parse(time.RFC3339, string(fields[1]))
		if err != nil {
			return nil, &ExternalToolError{
				Op:  "log",
				Err: fmt.Errorf("parse committer date: %w", err),
			}
		}
		if !r.opts.inBounds(when) {
			continue
		}

		results = append(results, CommitInfo{
			SHA:  string(fields[0]),
			When: when,
			Author: AuthorInfo{
				Name:  string(fields[2]),
				Email: string(fields[3]),
			},
			Message: subjectLine(string(fields[4])),
			Files:   r.parseNameOnly(body),
		})
	}

	return results, nil
}

// splitHeaderBody separates the pretty header line from the --name-only
// output that follows it.
func splitHeaderBody(rec []byte) (header, body []byte) {
	if idx := bytes.IndexByte(rec, '\n'); idx != -1 {
		return rec[:idx], rec[idx+1:]
	}
	return rec, nil
}

// parseNameOnly extracts NUL-terminated paths and applies the filters.
func (r *CLIReader) parseNameOnly(body []byte) []string {
	var files []string
	for _, raw := range bytes.Split(body, []byte{0x00}) {
		path := strings.TrimSpace(string(raw))
		if path == "" || !matchesFilters(path, r.opts.Include, r.opts.Exclude) {
			continue
		}
		files = append(files, path)
	}
	return files
}
