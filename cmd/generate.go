package cmd

import (
	"time"

	"github.com/tmori/gitworklog/config"
	"github.com/tmori/gitworklog/internal/assets"
	"github.com/tmori/gitworklog/internal/git"
	"github.com/tmori/gitworklog/internal/grouping"
	"github.com/tmori/gitworklog/internal/output"
	"github.com/tmori/gitworklog/internal/period"
	"github.com/tmori/gitworklog/internal/render"
	"github.com/urfave/cli/v2"
)

// GenerateCmd returns the generate command.
func GenerateCmd() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"g"},
		Usage:     "Generate the worklog for a period",
		ArgsUsage: "[YYYY-MM]",
		Flags:     commonFlags(),
		Action:    generateAction,
	}
}

func generateAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	p, err := resolvePeriod(c.Args().First(), c.String("day"), time.Now(), time.Local)
	if err != nil {
		return err
	}

	result, err := runPipeline(cfg, p, time.Now())
	if err != nil {
		return err
	}

	if !c.Bool("quiet") {
		output.PrintSummary(*result)
	}
	return nil
}

// resolvePeriod turns the positional YYYY-MM token and the optional
// --day qualifier into a validated Period. A day given without a month
// implies its own month.
func resolvePeriod(token, day string, now time.Time, loc *time.Location) (period.Period, error) {
	if token == "" && len(day) >= 7 {
		token = day[:7]
	}

	p, err := period.Parse(token, now, loc)
	if err != nil {
		return period.Period{}, err
	}
	if day != "" {
		return p.WithDay(day)
	}
	return p, nil
}

// runPipeline executes the whole generation pass: read history, group
// by day, scan assets, render, write. Rendering completes in memory
// before the writer touches the filesystem, so any failure leaves the
// previous report intact.
func runPipeline(cfg *config.Config, p period.Period, now time.Time) (*output.Summary, error) {
	engine, err := parseEngineFlag(cfg.Repo.Engine)
	if err != nil {
		return nil, err
	}

	since, until := p.Bounds()
	reader, err := git.NewHistoryReader(engine, git.ReadOptions{
		RepoPath: cfg.Repo.Path,
		Branch:   cfg.Repo.Branch,
		Since:    since,
		Until:    until,
		Include:  cfg.Filters.Include,
		Exclude:  cfg.Filters.Exclude,
	})
	if err != nil {
		return nil, err
	}

	commits, err := reader.ReadCommits()
	if err != nil {
		return nil, err
	}

	groups := grouping.GroupByDay(commits, p.Loc)

	scanner := &assets.Scanner{
		Root:    cfg.Assets.Root,
		Include: cfg.Assets.Include,
		Exclude: cfg.Assets.Exclude,
	}
	found, err := scanner.Scan(p)
	if err != nil {
		return nil, err
	}

	template, err := render.LoadTemplate(cfg.Template)
	if err != nil {
		return nil, err
	}

	doc := render.Render(render.Input{
		Period:   p,
		Groups:   groups,
		Assets:   found,
		Template: template,
		Stats: render.Stats{
			CommitCount: len(commits),
			ActiveDays:  len(groups.Days()),
			AssetCount:  len(found),
			GeneratedAt: now,
		},
		OutputDir: cfg.Output.Dir,
	})

	writer := &output.Writer{Dir: cfg.Output.Dir}
	path, err := writer.Write(p.Key(), doc)
	if err != nil {
		return nil, err
	}

	return &output.Summary{
		PeriodKey:  p.Key(),
		OutputPath: path,
		Commits:    len(commits),
		ActiveDays: len(groups.Days()),
		Assets:     len(found),
	}, nil
}
