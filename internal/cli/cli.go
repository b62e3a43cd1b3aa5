// Package cli defines the treeclip command-line interface.
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/seyallius/treeclip/internal/app"
	"github.com/seyallius/treeclip/internal/config"
)

// New builds the root command.
func New(version string) *cli.Command {
	return &cli.Command{
		Name:    "treeclip",
		Usage:   "Bundle a directory tree into one text file",
		Version: version,
		Commands: []*cli.Command{
			runCommand(),
		},
	}
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Extract and bundle files under a directory",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file path", Value: config.DefaultOutput},
			&cli.StringFlag{Name: "root", Usage: "Root directory for the .treeclipignore lookup (defaults to the input path)"},
			&cli.StringSliceFlag{Name: "exclude", Aliases: []string{"e"}, Usage: "Exclude files/folders matching this gitignore-style pattern (repeatable; later patterns win)"},
			&cli.BoolFlag{Name: "skip-hidden", Aliases: []string{"H"}, Value: true, Usage: "Skip hidden files and folders (starting with '.')"},
			&cli.BoolFlag{Name: "git", Usage: "Also honor the repository's .gitignore files"},
			&cli.BoolFlag{Name: "clipboard", Aliases: []string{"c"}, Usage: "Copy the output to the system clipboard"},
			&cli.BoolFlag{Name: "stats", Usage: "Show statistics about the extracted content"},
			&cli.BoolFlag{Name: "editor", Usage: "Open the output file in your editor"},
			&cli.BoolFlag{Name: "delete", Usage: "Delete the output file after the editor closes (requires --editor)"},
			&cli.BoolFlag{Name: "fast-mode", Aliases: []string{"f"}, Usage: "Skip progress display and decorative output"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Enable verbose logging"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Suppress informational output"},
			&cli.BoolFlag{Name: "no-color", Usage: "Disable color output"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg := configFrom(cmd)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return app.New(cfg).Run()
		},
	}
}

func configFrom(cmd *cli.Command) *config.Config {
	cfg := &config.Config{
		InputPath:  cmd.Args().First(),
		OutputPath: cmd.String("output"),
		RootDir:    cmd.String("root"),
		Exclude:    cmd.StringSlice("exclude"),
		SkipHidden: cmd.Bool("skip-hidden"),
		UseGit:     cmd.Bool("git"),
		Clipboard:  cmd.Bool("clipboard"),
		Stats:      cmd.Bool("stats"),
		Editor:     cmd.Bool("editor"),
		Delete:     cmd.Bool("delete"),
		FastMode:   cmd.Bool("fast-mode"),
		Verbose:    cmd.Bool("verbose"),
		Quiet:      cmd.Bool("quiet"),
		NoColor:    cmd.Bool("no-color"),
	}
	cfg.Normalize()
	return cfg
}
