package period

import (
	"fmt"
	"regexp"
	"time"
)

// ValidationError indicates a malformed or impossible period argument.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid period %q: %s", e.Input, e.Reason)
}

// Period identifies the year-month a report run targets, optionally
// narrowed to a single day. All date arithmetic happens in Loc.
type Period struct {
	Year  int
	Month time.Month
	Day   int // 0 means whole month
	Loc   *time.Location
}

var (
	monthPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)
	dayPattern   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

// Parse resolves a YYYY-MM token into a Period. An empty token resolves
// to the month containing now.
func Parse(token string, now time.Time, loc *time.Location) (Period, error) {
	if loc == nil {
		loc = time.Local
	}
	if token == "" {
		n := now.In(loc)
		return Period{Year: n.Year(), Month: n.Month(), Loc: loc}, nil
	}

	m := monthPattern.FindStringSubmatch(token)
	if m == nil {
		return Period{}, &ValidationError{Input: token, Reason: "expected YYYY-MM"}
	}

	t, err := time.ParseInLocation("2006-01", token, loc)
	if err != nil {
		return Period{}, &ValidationError{Input: token, Reason: "month out of range"}
	}
	// time.Parse normalizes out-of-range components (2026-13 -> 2027-01);
	// reject anything that did not round-trip.
	if t.Format("2006-01") != token {
		return Period{}, &ValidationError{Input: token, Reason: "month out of range"}
	}

	return Period{Year: t.Year(), Month: t.Month(), Loc: loc}, nil
}

// WithDay narrows the period to a single day given a YYYY-MM-DD token.
// The token's year-month must agree with the period.
func (p Period) WithDay(token string) (Period, error) {
	if dayPattern.FindStringSubmatch(token) == nil {
		return Period{}, &ValidationError{Input: token, Reason: "expected YYYY-MM-DD"}
	}

	t, err := time.ParseInLocation("2006-01-02", token, p.Loc)
	if err != nil || t.Format("2006-01-02") != token {
		return Period{}, &ValidationError{Input: token, Reason: "no such calendar date"}
	}
	if t.Year() != p.Year || t.Month() != p.Month {
		return Period{}, &ValidationError{
			Input:  token,
			Reason: fmt.Sprintf("day outside period %s", p.Key()),
		}
	}

	p.Day = t.Day()
	return p, nil
}

// Key returns the YYYY-MM identifier used for output files and asset
// directories.
func (p Period) Key() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Title returns the human month name, e.g. "January 2026".
func (p Period) Title() string {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, p.Loc).Format("January 2006")
}

// Bounds returns the half-open [start, end) interval covered by the
// period: the whole month, or a single day when narrowed.
func (p Period) Bounds() (start, end time.Time) {
	if p.Day > 0 {
		start = time.Date(p.Year, p.Month, p.Day, 0, 0, 0, 0, p.Loc)
		return start, start.AddDate(0, 0, 1)
	}
	start = time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, p.Loc)
	return start, start.AddDate(0, 1, 0)
}

// Contains reports whether t falls inside the period's bounds.
func (p Period) Contains(t time.Time) bool {
	start, end := p.Bounds()
	return !t.Before(start) && t.Before(end)
}
