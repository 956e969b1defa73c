package commands

import (
	"fmt"
	"os"

	"github.com/symfony-cli/console"
	"github.com/symfony-cli/terminal"

	ffconfig "github.com/anasdove2020/robocopy-migration/config"
	"github.com/anasdove2020/robocopy-migration/list"
	"github.com/anasdove2020/robocopy-migration/move"
)

var migrateCmd = &console.Command{
	Category:    "",
	Name:        "migrate",
	Usage:       "Move a whole directory tree in one bulk robocopy run",
	Description: "Hands the entire source tree to robocopy in a single invocation, optionally excluding file names listed in a separate file",
	Flags: []console.Flag{
		&console.StringFlag{Name: "exclude-from", Usage: "File listing file names to exclude, one per line"},
		&console.StringFlag{Name: "config", Usage: "Transfer tuning config file"},
		&console.BoolFlag{Name: "verbose", Usage: "Log progress"},
	},
	Action: func(c *console.Context) error {
		applyVerbosity(c)

		args := c.Args().Slice()
		if len(args) < 2 {
			return console.Exit("usage: migrate <source-root> <target-root>", 1)
		}
		sourceRoot, targetRoot := args[0], args[1]
		for _, dir := range []string{sourceRoot, targetRoot} {
			if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
				return console.Exit(fmt.Sprintf("%q is not an existing directory", dir), 1)
			}
		}

		cfg, err := ffconfig.LoadConfigPrefer(c.String("config"))
		if err != nil {
			return console.Exit(fmt.Sprintf("Failed to load config: %v", err), 1)
		}

		var excludes []string
		if excludePath := c.String("exclude-from"); excludePath != "" {
			entries, err := list.Read(excludePath, list.Options{Format: list.FormatPlain})
			if err != nil {
				return console.Exit(fmt.Sprintf("Failed to read exclude list %s: %v", excludePath, err), 2)
			}
			for _, entry := range entries {
				excludes = append(excludes, entry.Path)
			}
		}

		terminal.Logger.Info().
			Str("source", sourceRoot).
			Str("target", targetRoot).
			Int("excludes", len(excludes)).
			Msg("starting bulk migration")

		robocopy := &move.Robocopy{
			Retries:     cfg.Transfer.Retries,
			WaitSeconds: cfg.Transfer.WaitSeconds,
			Threads:     cfg.Transfer.Threads,
		}
		if err := robocopy.MoveTree(sourceRoot, targetRoot, excludes); err != nil {
			return console.Exit(fmt.Sprintf("Bulk transfer failed: %v", err), 3)
		}

		fmt.Fprintf(c.App.Writer, "Migrated <comment>%s</> -> <comment>%s</>\n", sourceRoot, targetRoot)
		return nil
	},
}
