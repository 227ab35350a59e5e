package output

import (
	"fmt"

	"github.com/fatih/color"
)

// Summary describes a completed run for the console.
type Summary struct {
	PeriodKey  string
	OutputPath string
	Commits    int
	ActiveDays int
	Assets     int
}

// PrintSummary reports a completed run on stdout.
func PrintSummary(s Summary) {
	color.Green("Worklog generated for %s", s.PeriodKey)
	fmt.Printf("Output: %s\n", s.OutputPath)
	fmt.Printf("Commits: %d, Active days: %d, Assets: %d\n",
		s.Commits, s.ActiveDays, s.Assets)
	if s.Commits == 0 {
		color.Yellow("No commits found in the specified range.")
	}
}
