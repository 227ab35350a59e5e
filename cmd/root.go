package cmd

import (
	"fmt"
	"os"

	"github.com/tmori/gitworklog/config"
	"github.com/tmori/gitworklog/internal/git"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "gitworklog",
		Usage:     "Monthly worklog generator for Git repositories",
		ArgsUsage: "[YYYY-MM]",
		Version:   "1.0.0",
		Commands: []*cli.Command{
			GenerateCmd(),
		},
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		}, commonFlags()...),
		Action: defaultAction,
	}
}

// Common flags shared between the root app and the generate command.
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "day",
			Usage: "Narrow the report to a single day (YYYY-MM-DD)",
		},
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch to read (default: HEAD)",
		},
		&cli.StringFlag{
			Name:  "engine",
			Usage: "History engine (gogit, cli)",
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Usage:   "Directory for generated worklogs",
		},
		&cli.StringFlag{
			Name:  "assets-dir",
			Usage: "Root directory of period asset folders",
		},
		&cli.StringFlag{
			Name:    "template",
			Aliases: []string{"t"},
			Usage:   "Header template path",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Suppress the run summary",
		},
	}
}

// parseEngineFlag maps the engine flag to a reader engine.
func parseEngineFlag(s string) (git.Engine, error) {
	switch s {
	case "", "gogit", "go-git":
		return git.EngineGoGit, nil
	case "cli", "git":
		return git.EngineGitCLI, nil
	default:
		return "", fmt.Errorf("invalid engine %q (expected gogit or cli)", s)
	}
}

// loadConfig loads configuration from file or defaults and applies CLI
// flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if repo := c.String("repo"); repo != "" {
		cfg.Repo.Path = repo
	}
	if branch := c.String("branch"); branch != "" {
		cfg.Repo.Branch = branch
	}
	if engine := c.String("engine"); engine != "" {
		cfg.Repo.Engine = engine
	}
	if dir := c.String("output-dir"); dir != "" {
		cfg.Output.Dir = dir
	}
	if root := c.String("assets-dir"); root != "" {
		cfg.Assets.Root = root
	}
	if tpl := c.String("template"); tpl != "" {
		cfg.Template = tpl
	}

	return cfg, nil
}

// defaultAction routes a bare invocation (positional period or nothing)
// to the generate command.
func defaultAction(c *cli.Context) error {
	return GenerateCmd().Action(c)
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
