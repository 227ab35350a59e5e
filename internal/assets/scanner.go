// Package assets discovers supplementary files for a report period.
//
// Assets live in one subdirectory per period (<root>/YYYY-MM). A file
// whose name starts with a YYYY-MM-DD- prefix inside the period binds
// to that day; everything else is period-level. A missing directory is
// not an error.
package assets

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tmori/gitworklog/internal/period"
)

// Kind classifies how an asset is rendered.
type Kind int

const (
	KindOther Kind = iota
	KindImage      // embedded inline
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	if k == KindImage {
		return "image"
	}
	return "other"
}

// Entry is one discovered asset.
type Entry struct {
	Path string // as discovered, relative to the scan root's parent
	Name string // base filename
	Kind Kind
	Day  string // "YYYY-MM-DD" when bound to a day, else ""
}

// imageExtensions is the fixed set of embeddable extensions,
// matched case-insensitively.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".svg":  true,
	".webp": true,
}

var dayPrefix = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})-`)

// Scanner lists and classifies assets for report periods.
type Scanner struct {
	Root    string   // assets root directory
	Include []string // glob patterns on filenames
	Exclude []string
}

// Scan lists the period's asset directory. Missing directory yields an
// empty list and nil error. Subdirectories are skipped. Entries come
// back sorted by filename so rendering is deterministic.
func (s *Scanner) Scan(p period.Period) ([]Entry, error) {
	dir := filepath.Join(s.Root, p.Key())
	dirents, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if !s.matches(name) {
			continue
		}

		entries = append(entries, Entry{
			Path: filepath.Join(dir, name),
			Name: name,
			Kind: classify(name),
			Day:  associatedDay(name, p),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

func (s *Scanner) matches(name string) bool {
	for _, pattern := range s.Exclude {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return false
		}
	}
	if len(s.Include) == 0 {
		return true
	}
	for _, pattern := range s.Include {
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

func classify(name string) Kind {
	ext := strings.ToLower(filepath.Ext(name))
	if imageExtensions[ext] {
		return KindImage
	}
	return KindOther
}

// associatedDay parses a leading YYYY-MM-DD- prefix. Malformed or
// out-of-period prefixes make the asset period-level, never an error.
func associatedDay(name string, p period.Period) string {
	m := dayPrefix.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	t, err := time.ParseInLocation("2006-01-02", m[1], p.Loc)
	if err != nil || t.Format("2006-01-02") != m[1] {
		return ""
	}
	// Bind by month only: day-narrowed runs decide at render time
	// which bound days to show.
	if t.Year() != p.Year || t.Month() != p.Month {
		return ""
	}
	return m[1]
}
