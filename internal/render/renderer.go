// Package render turns grouped commits and assets into the final
// markdown document. Everything here is pure: the document is built
// fully in memory and handed to the writer in one piece.
package render

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tmori/gitworklog/internal/assets"
	"github.com/tmori/gitworklog/internal/grouping"
	"github.com/tmori/gitworklog/internal/period"
)

// maxDetailFiles caps the per-commit file list in the details block.
const maxDetailFiles = 20

// Input bundles everything the renderer needs for one document.
type Input struct {
	Period    period.Period
	Groups    *grouping.DayGroups
	Assets    []assets.Entry
	Template  string // header template text, placeholders unexpanded
	Stats     Stats
	OutputDir string // asset links are rendered relative to this
}

// Render produces the complete report document.
//
// Policy (documented in DESIGN.md): days with neither commits nor
// bound assets are omitted; a period with no activity at all renders
// the header plus an explicit no-activity line. Assets bound to a day
// render inside that day's section; unbound assets render in a
// trailing Assets section. Day-narrowed runs drop assets bound to
// other days.
func Render(in Input) string {
	var b strings.Builder

	b.WriteString(expandHeader(in.Template, in.Period, in.Stats))
	for !strings.HasSuffix(b.String(), "\n\n") {
		b.WriteString("\n")
	}

	dayAssets, periodAssets := splitAssets(in)
	days := activeDays(in.Groups, dayAssets)

	if len(days) == 0 && len(periodAssets) == 0 {
		b.WriteString("_No recorded activity for this period._\n")
		return b.String()
	}

	for _, day := range days {
		writeDaySection(&b, in, day, dayAssets[day])
	}

	if len(periodAssets) > 0 {
		b.WriteString("## Assets\n\n")
		for _, a := range periodAssets {
			b.WriteString(assetLine(a, in.OutputDir))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// splitAssets separates day-bound assets from period-level ones. In a
// day-narrowed run, assets bound to other days are dropped entirely.
func splitAssets(in Input) (map[string][]assets.Entry, []assets.Entry) {
	byDay := make(map[string][]assets.Entry)
	var unbound []assets.Entry

	var selected string
	if in.Period.Day > 0 {
		start, _ := in.Period.Bounds()
		selected = start.Format("2006-01-02")
	}

	for _, a := range in.Assets {
		switch {
		case a.Day == "":
			unbound = append(unbound, a)
		case selected != "" && a.Day != selected:
			// out of scope for this run
		default:
			byDay[a.Day] = append(byDay[a.Day], a)
		}
	}
	return byDay, unbound
}

// activeDays merges commit days and asset-bound days, ascending.
func activeDays(groups *grouping.DayGroups, dayAssets map[string][]assets.Entry) []string {
	seen := make(map[string]bool)
	var days []string
	for _, d := range groups.Days() {
		seen[d] = true
		days = append(days, d)
	}
	for d := range dayAssets {
		if !seen[d] {
			days = append(days, d)
		}
	}
	sort.Strings(days)
	return days
}

func writeDaySection(b *strings.Builder, in Input, day string, dayAssets []assets.Entry) {
	fmt.Fprintf(b, "### %s — Commits summary\n\n", day)

	commits := in.Groups.Commits(day)
	for _, c := range commits {
		fmt.Fprintf(b, "- %s — %s (%s)\n", c.ShortSHA(), c.Message, c.Author.Name)
	}
	if len(commits) > 0 {
		b.WriteString("\n#### Details\n\n")
		for _, c := range commits {
			fmt.Fprintf(b, "- %s — %s (%s)\n", c.ShortSHA(), c.Message, c.Author.Name)
			fmt.Fprintf(b, "  - Date: %s\n", c.When.In(in.Period.Loc).Format("2006-01-02 15:04:05 -0700"))
			files := c.Files
			if len(files) > maxDetailFiles {
				files = files[:maxDetailFiles]
			}
			if len(files) > 0 {
				b.WriteString("  - Files:\n")
				for _, f := range files {
					fmt.Fprintf(b, "    - %s\n", f)
				}
			} else {
				b.WriteString("  - Files: (none)\n")
			}
			b.WriteString("  - Message:\n")
			fmt.Fprintf(b, "    - %s\n\n", c.Message)
		}
	}

	for _, a := range dayAssets {
		b.WriteString(assetLine(a, in.OutputDir))
	}
	if len(dayAssets) > 0 || len(commits) == 0 {
		b.WriteString("\n")
	}
}

// assetLine renders one asset reference: images embed, the rest link.
// Paths are made relative to the output directory so links survive a
// checkout move.
func assetLine(a assets.Entry, outputDir string) string {
	path := a.Path
	if outputDir != "" {
		if rel, err := filepath.Rel(outputDir, a.Path); err == nil {
			path = rel
		}
	}
	path = filepath.ToSlash(path)

	if a.Kind == assets.KindImage {
		return fmt.Sprintf("![%s](%s)\n", a.Name, path)
	}
	return fmt.Sprintf("[%s](%s)\n", a.Name, path)
}
