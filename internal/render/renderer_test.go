package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/tmori/gitworklog/internal/assets"
	"github.com/tmori/gitworklog/internal/git"
	"github.com/tmori/gitworklog/internal/grouping"
)

func testInput(t *testing.T, commits []git.CommitInfo, assetList []assets.Entry) Input {
	t.Helper()
	return Input{
		Period:    jan2026(t),
		Groups:    grouping.GroupByDay(commits, time.UTC),
		Assets:    assetList,
		Template:  defaultHeader,
		OutputDir: "worklogs",
	}
}

func commit(sha, msg string, when time.Time, files ...string) git.CommitInfo {
	return git.CommitInfo{
		SHA:     sha,
		When:    when,
		Author:  git.AuthorInfo{Name: "Alice", Email: "alice@example.com"},
		Message: msg,
		Files:   files,
	}
}

func TestRender_EmptyPeriod(t *testing.T) {
	doc := Render(testInput(t, nil, nil))

	if !strings.HasPrefix(doc, "# January 2026 — Monthly Worklog\n") {
		t.Fatalf("header missing:\n%s", doc)
	}
	if !strings.Contains(doc, "_No recorded activity for this period._") {
		t.Fatalf("no-activity line missing:\n%s", doc)
	}
	if strings.Contains(doc, "###") {
		t.Fatalf("empty period must have no day sections:\n%s", doc)
	}
}

func TestRender_DaySectionsAndBullets(t *testing.T) {
	commits := []git.CommitInfo{
		commit("aaaaaaaabbbb", "add scanner", time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), "scanner.go"),
		commit("ccccccccdddd", "fix bounds", time.Date(2026, 1, 5, 15, 0, 0, 0, time.UTC)),
		commit("eeeeeeeeffff", "write docs", time.Date(2026, 1, 9, 11, 0, 0, 0, time.UTC), "README.md"),
	}

	doc := Render(testInput(t, commits, nil))

	if !strings.Contains(doc, "### 2026-01-05 — Commits summary") {
		t.Fatalf("day section missing:\n%s", doc)
	}
	if !strings.Contains(doc, "- aaaaaaa — add scanner (Alice)") {
		t.Fatalf("commit bullet missing:\n%s", doc)
	}
	if !strings.Contains(doc, "#### Details") {
		t.Fatalf("details block missing:\n%s", doc)
	}
	if !strings.Contains(doc, "    - scanner.go") {
		t.Fatalf("file list missing:\n%s", doc)
	}
	if !strings.Contains(doc, "  - Files: (none)") {
		t.Fatalf("empty file list placeholder missing:\n%s", doc)
	}

	// Days ascending.
	day5 := strings.Index(doc, "### 2026-01-05")
	day9 := strings.Index(doc, "### 2026-01-09")
	if day5 == -1 || day9 == -1 || day5 > day9 {
		t.Fatalf("day sections out of order:\n%s", doc)
	}
}

func TestRender_DetailFileCap(t *testing.T) {
	files := make([]string, maxDetailFiles+5)
	for i := range files {
		files[i] = fmt.Sprintf("pkg/file%02d.go", i)
	}
	commits := []git.CommitInfo{
		commit("abc1234", "big change", time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), files...),
	}

	doc := Render(testInput(t, commits, nil))

	listed := strings.Count(doc, "\n    - pkg/file")
	if listed != maxDetailFiles {
		t.Fatalf("listed %d files, want %d", listed, maxDetailFiles)
	}
	if strings.Contains(doc, files[maxDetailFiles]) {
		t.Fatalf("file beyond cap leaked into output")
	}
}

func TestRender_AssetsUnderTheirDay(t *testing.T) {
	commits := []git.CommitInfo{
		commit("abc1234", "demo work", time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)),
	}
	assetList := []assets.Entry{
		{Path: "assets/2026-01/2026-01-05-demo.png", Name: "2026-01-05-demo.png", Kind: assets.KindImage, Day: "2026-01-05"},
		{Path: "assets/2026-01/2026-01-05-log.txt", Name: "2026-01-05-log.txt", Kind: assets.KindOther, Day: "2026-01-05"},
	}

	doc := Render(testInput(t, commits, assetList))

	if !strings.Contains(doc, "![2026-01-05-demo.png](../assets/2026-01/2026-01-05-demo.png)") {
		t.Fatalf("image embed missing or path not relative:\n%s", doc)
	}
	if !strings.Contains(doc, "[2026-01-05-log.txt](../assets/2026-01/2026-01-05-log.txt)") {
		t.Fatalf("plain link missing:\n%s", doc)
	}
	if strings.Contains(doc, "## Assets") {
		t.Fatalf("day-bound assets must not create a period section:\n%s", doc)
	}
}

func TestRender_AssetOnlyDayGetsSection(t *testing.T) {
	assetList := []assets.Entry{
		{Path: "assets/2026-01/2026-01-17-chart.png", Name: "2026-01-17-chart.png", Kind: assets.KindImage, Day: "2026-01-17"},
	}

	doc := Render(testInput(t, nil, assetList))

	if !strings.Contains(doc, "### 2026-01-17 — Commits summary") {
		t.Fatalf("asset-only day section missing:\n%s", doc)
	}
	if strings.Contains(doc, "_No recorded activity for this period._") {
		t.Fatalf("no-activity line must not appear:\n%s", doc)
	}
}

func TestRender_PeriodLevelAssetsTrailing(t *testing.T) {
	assetList := []assets.Entry{
		{Path: "assets/2026-01/summary.pdf", Name: "summary.pdf", Kind: assets.KindOther},
	}

	doc := Render(testInput(t, nil, assetList))

	if !strings.Contains(doc, "## Assets") {
		t.Fatalf("trailing assets section missing:\n%s", doc)
	}
	if !strings.Contains(doc, "[summary.pdf](../assets/2026-01/summary.pdf)") {
		t.Fatalf("period asset link missing:\n%s", doc)
	}
}

func TestRender_DayRunDropsOtherDays(t *testing.T) {
	in := testInput(t, nil, []assets.Entry{
		{Path: "assets/2026-01/2026-01-05-demo.png", Name: "2026-01-05-demo.png", Kind: assets.KindImage, Day: "2026-01-05"},
		{Path: "assets/2026-01/2026-01-09-other.png", Name: "2026-01-09-other.png", Kind: assets.KindImage, Day: "2026-01-09"},
		{Path: "assets/2026-01/summary.pdf", Name: "summary.pdf", Kind: assets.KindOther},
	})
	p, err := in.Period.WithDay("2026-01-05")
	if err != nil {
		t.Fatalf("WithDay: %v", err)
	}
	in.Period = p

	doc := Render(in)

	if !strings.Contains(doc, "2026-01-05-demo.png") {
		t.Fatalf("selected day's asset missing:\n%s", doc)
	}
	if strings.Contains(doc, "2026-01-09-other.png") {
		t.Fatalf("other day's asset leaked into day run:\n%s", doc)
	}
	if !strings.Contains(doc, "summary.pdf") {
		t.Fatalf("period-level asset missing from day run:\n%s", doc)
	}
}

func TestRender_Deterministic(t *testing.T) {
	commits := []git.CommitInfo{
		commit("abc1234", "work", time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC), "a.go"),
	}
	in := testInput(t, commits, []assets.Entry{
		{Path: "assets/2026-01/2026-01-05-demo.png", Name: "2026-01-05-demo.png", Kind: assets.KindImage, Day: "2026-01-05"},
	})

	if Render(in) != Render(in) {
		t.Fatalf("identical input must render identical output")
	}
}
