package render

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/tmori/gitworklog/internal/output"
	"github.com/tmori/gitworklog/internal/period"
)

// DefaultTemplateName is the well-known header template filename looked
// up in the working directory.
const DefaultTemplateName = "WORKLOG-TEMPLATE.md"

// defaultHeader is used when no template file exists.
const defaultHeader = "# {Month YYYY} — Monthly Worklog\n\n"

// Stats feeds the header placeholder values. Counters the generator
// cannot compute (PRs, issues, deploys) stay zero.
type Stats struct {
	CommitCount int
	ActiveDays  int
	AssetCount  int
	PRCount     int
	IssueCount  int
	DeployCount int
	GeneratedAt time.Time
}

// LoadTemplate reads the header template, falling back to the built-in
// default when the file does not exist. Any other read failure is a
// real error and surfaces as an IOError.
func LoadTemplate(path string) (string, error) {
	if path == "" {
		path = DefaultTemplateName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultHeader, nil
		}
		return "", &output.IOError{Op: "read template", Path: path, Err: err}
	}
	return string(data), nil
}

var tokenPattern = regexp.MustCompile(`\{([A-Za-z_ ]+)\}`)

// placeholders is the fixed token-to-formatter mapping applied in one
// pass over the template. Tokens not listed here render blank.
var placeholders = map[string]func(p period.Period, s Stats) string{
	"Month YYYY":   func(p period.Period, _ Stats) string { return p.Title() },
	"commit_count": func(_ period.Period, s Stats) string { return strconv.Itoa(s.CommitCount) },
	"active_days":  func(_ period.Period, s Stats) string { return strconv.Itoa(s.ActiveDays) },
	"asset_count":  func(_ period.Period, s Stats) string { return strconv.Itoa(s.AssetCount) },
	"pr_count":     func(_ period.Period, s Stats) string { return strconv.Itoa(s.PRCount) },
	"issue_count":  func(_ period.Period, s Stats) string { return strconv.Itoa(s.IssueCount) },
	"deploy_count": func(_ period.Period, s Stats) string { return strconv.Itoa(s.DeployCount) },
	"generated_at": func(p period.Period, s Stats) string {
		return s.GeneratedAt.In(p.Loc).Format("2006-01-02 15:04:05 -0700")
	},
}

// expandHeader substitutes placeholder tokens in the template text.
func expandHeader(template string, p period.Period, s Stats) string {
	return tokenPattern.ReplaceAllStringFunc(template, func(match string) string {
		token := match[1 : len(match)-1]
		if format, ok := placeholders[token]; ok {
			return format(p, s)
		}
		return ""
	})
}
