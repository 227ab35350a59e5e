// Package grouping buckets commits by calendar day within a report
// period. Pure functions; no I/O.
package grouping

import (
	"time"

	"github.com/tmori/gitworklog/internal/git"
)

const dayLayout = "2006-01-02"

// DayGroups maps calendar dates to the commits made on them, keeping
// the days in ascending order and commits in input order.
type DayGroups struct {
	days    []string
	commits map[string][]git.CommitInfo
}

// GroupByDay partitions commits by their calendar date in loc. Days
// appear in ascending order; within a day, input order is preserved.
// No entries are invented for days without commits.
func GroupByDay(commits []git.CommitInfo, loc *time.Location) *DayGroups {
	if loc == nil {
		loc = time.Local
	}

	g := &DayGroups{commits: make(map[string][]git.CommitInfo)}
	for _, c := range commits {
		day := c.When.In(loc).Format(dayLayout)
		if _, seen := g.commits[day]; !seen {
			g.days = insertSorted(g.days, day)
		}
		g.commits[day] = append(g.commits[day], c)
	}
	return g
}

// Days returns the distinct days with at least one commit, ascending.
func (g *DayGroups) Days() []string {
	return g.days
}

// Commits returns the commits for a day in input order.
func (g *DayGroups) Commits(day string) []git.CommitInfo {
	return g.commits[day]
}

// Len returns the total number of grouped commits.
func (g *DayGroups) Len() int {
	n := 0
	for _, cs := range g.commits {
		n += len(cs)
	}
	return n
}

// Flatten returns all commits in day order, preserving within-day
// order. Regrouping a flattened grouping yields the same grouping.
func (g *DayGroups) Flatten() []git.CommitInfo {
	out := make([]git.CommitInfo, 0, g.Len())
	for _, day := range g.days {
		out = append(out, g.commits[day]...)
	}
	return out
}

// insertSorted keeps days ordered without re-sorting the whole slice
// per insert. The ISO layout makes lexicographic order chronological.
func insertSorted(days []string, day string) []string {
	i := len(days)
	for i > 0 && days[i-1] > day {
		i--
	}
	days = append(days, "")
	copy(days[i+1:], days[i:])
	days[i] = day
	return days
}
