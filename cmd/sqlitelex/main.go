package main

import (
	"context"
	"fmt"
	"os"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/cybertec-postgresql/sqlitelex/internal/cli"
	"github.com/cybertec-postgresql/sqlitelex/internal/logger"
	"github.com/cybertec-postgresql/sqlitelex/internal/runner"
	"github.com/cybertec-postgresql/sqlitelex/internal/tokdiff"
)

const version = "1.0.0"

// exitCode is set by commands that finish without error but still fail
var exitCode = runner.ExitOK

func main() {
	app := &urfavecli.Command{
		Name:    "sqlitelex",
		Usage:   "SQLite SQL tokenizer and statement tools",
		Version: version,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:  "config",
				Usage: "YAML configuration file",
			},
			&urfavecli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug output",
			},
			&urfavecli.BoolFlag{
				Name:  "strict",
				Usage: "Exit with code 3 when Illegal or unterminated tokens are found",
			},
		},
		Commands: []*urfavecli.Command{
			{
				Name:      "tokens",
				Usage:     "Print the token stream of SQL files (stdin if none)",
				ArgsUsage: "[file...]",
				Action:    tokensCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (text or json)",
					},
					&urfavecli.BoolFlag{
						Name:  "keep-space",
						Usage: "Include whitespace and comment tokens",
					},
				},
			},
			{
				Name:      "split",
				Usage:     "Split SQL files into statements",
				ArgsUsage: "[file...]",
				Action:    splitCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.BoolFlag{
						Name:  "check",
						Usage: "Only report inputs that do not end with a complete statement",
					},
				},
			},
			{
				Name:      "highlight",
				Usage:     "Syntax-highlight SQL files",
				ArgsUsage: "[file...]",
				Action:    highlightCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (ansi or html)",
					},
				},
			},
			{
				Name:      "diff",
				Usage:     "Compare two SQL files token by token",
				ArgsUsage: "<a.sql> <b.sql>",
				Action:    diffCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.BoolFlag{
						Name:  "keep-space",
						Usage: "Treat whitespace and comments as significant",
					},
					&urfavecli.BoolFlag{
						Name:  "fold-keywords",
						Usage: "Compare keywords case-insensitively",
						Value: true,
					},
					&urfavecli.BoolFlag{
						Name:  "exit-code",
						Usage: "Exit with code 1 when the inputs differ",
					},
				},
			},
			{
				Name:      "stats",
				Usage:     "Tokenize all SQL files below the given paths and save statistics",
				ArgsUsage: "[path...]",
				Action:    statsCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.IntFlag{
						Name:  "parallel",
						Usage: "Maximum concurrent files (1 = sequential)",
					},
					&urfavecli.StringFlag{
						Name:  "stats-file",
						Usage: "Statistics output path",
					},
					&urfavecli.StringFlag{
						Name:  "history-db",
						Usage: "Also record the snapshot in this SQLite database",
					},
				},
			},
			{
				Name:   "report",
				Usage:  "Render saved statistics",
				Action: reportCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (json, text, or html)",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
						Value:   "-",
					},
					&urfavecli.StringFlag{
						Name:  "stats-file",
						Usage: "Statistics input path",
					},
				},
			},
			{
				Name:  "history",
				Usage: "Inspect snapshots recorded with --history-db",
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "history-db",
						Usage: "SQLite history database",
					},
				},
				Commands: []*urfavecli.Command{
					{
						Name:   "list",
						Usage:  "List recorded snapshots, newest first",
						Action: historyListCommand,
						Flags: []urfavecli.Flag{
							&urfavecli.IntFlag{
								Name:  "limit",
								Usage: "Maximum number of snapshots (0 = all)",
								Value: 20,
							},
						},
					},
					{
						Name:      "show",
						Usage:     "Render one recorded snapshot",
						ArgsUsage: "<id>",
						Action:    historyShowCommand,
						Flags: []urfavecli.Flag{
							&urfavecli.StringFlag{
								Name:  "format",
								Usage: "Output format (json, text, or html)",
							},
							&urfavecli.StringFlag{
								Name:    "output",
								Aliases: []string{"o"},
								Usage:   "Output file path (use - for stdout)",
								Value:   "-",
							},
						},
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCodeFor(err))
	}
	os.Exit(exitCode)
}

// loadConfig builds the configuration from the --config file and the flags
// of cmd.  formatField names the setting that --format overrides.
func loadConfig(cmd *urfavecli.Command, formatField string) (*cli.Config, error) {
	config, err := cli.LoadConfigFile(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	cli.ApplyFlagsToConfig(config, cli.Flags{
		Parallel:  int(cmd.Int("parallel")),
		StatsFile: cmd.String("stats-file"),
		HistoryDB: cmd.String("history-db"),
		Format:    cmd.String("format"),
		Strict:    cmd.Bool("strict"),
		Verbose:   cmd.Bool("verbose"),
	}, formatField)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	logger.SetVerbose(config.Verbose)
	return config, nil
}

// tokensCommand handles the 'sqlitelex tokens' command
func tokensCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config, err := loadConfig(cmd, "token_format")
	if err != nil {
		return err
	}
	inputs, err := cli.ReadInputs(cmd.Args().Slice(), os.Stdin)
	if err != nil {
		return err
	}
	exitCode, err = cli.Tokens(config, inputs, os.Stdout, cmd.Bool("keep-space"))
	return err
}

// splitCommand handles the 'sqlitelex split' command
func splitCommand(ctx context.Context, cmd *urfavecli.Command) error {
	if _, err := loadConfig(cmd, ""); err != nil {
		return err
	}
	inputs, err := cli.ReadInputs(cmd.Args().Slice(), os.Stdin)
	if err != nil {
		return err
	}
	exitCode, err = cli.Split(inputs, os.Stdout, cmd.Bool("check"))
	return err
}

// highlightCommand handles the 'sqlitelex highlight' command
func highlightCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config, err := loadConfig(cmd, "highlight_format")
	if err != nil {
		return err
	}
	inputs, err := cli.ReadInputs(cmd.Args().Slice(), os.Stdin)
	if err != nil {
		return err
	}
	return cli.Highlight(config, inputs, os.Stdout)
}

// diffCommand handles the 'sqlitelex diff' command
func diffCommand(ctx context.Context, cmd *urfavecli.Command) error {
	if _, err := loadConfig(cmd, ""); err != nil {
		return err
	}
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("diff needs exactly two files, got %d", cmd.Args().Len())
	}
	inputs, err := cli.ReadInputs(cmd.Args().Slice(), os.Stdin)
	if err != nil {
		return err
	}
	opts := tokdiff.Options{
		KeepSpace:    cmd.Bool("keep-space"),
		FoldKeywords: cmd.Bool("fold-keywords"),
	}
	exitCode, err = cli.Diff(inputs[0], inputs[1], os.Stdout, opts, cmd.Bool("exit-code"))
	return err
}

// statsCommand handles the 'sqlitelex stats' command
func statsCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config, err := loadConfig(cmd, "")
	if err != nil {
		return err
	}
	exitCode, err = cli.Run(ctx, config, cmd.Args().Slice(), os.Stdout)
	return err
}

// reportCommand handles the 'sqlitelex report' command
func reportCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config, err := loadConfig(cmd, "report_format")
	if err != nil {
		return err
	}
	return cli.Report(config, cmd.String("output"), os.Stdout)
}

// historyListCommand handles the 'sqlitelex history list' command
func historyListCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config, err := loadConfig(cmd, "")
	if err != nil {
		return err
	}
	return cli.HistoryList(ctx, config, int(cmd.Int("limit")), os.Stdout)
}

// historyShowCommand handles the 'sqlitelex history show' command
func historyShowCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config, err := loadConfig(cmd, "report_format")
	if err != nil {
		return err
	}
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("history show needs one snapshot id")
	}
	return cli.HistoryShow(ctx, config, cmd.Args().First(), cmd.String("output"), os.Stdout)
}
