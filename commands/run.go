package commands

import (
	"fmt"
	"os"

	"github.com/symfony-cli/console"
	"github.com/symfony-cli/terminal"

	ffconfig "github.com/anasdove2020/robocopy-migration/config"
	"github.com/anasdove2020/robocopy-migration/list"
	"github.com/anasdove2020/robocopy-migration/move"
	"github.com/anasdove2020/robocopy-migration/report"
)

var runCmd = &console.Command{
	Category:    "",
	Name:        "run",
	Usage:       "Move every path from the list file under the target root",
	Description: "Reads source paths from the list file, re-roots each one under the target root and moves it, writing a per-entry CSV report at the end",
	Flags: []console.Flag{
		&console.IntFlag{Name: "start", DefaultValue: 1, Usage: "1-based entry to start from, counted after the header"},
		&console.StringFlag{Name: "report", Usage: "Report file path (default: timestamped name)"},
		&console.BoolFlag{Name: "csv", Usage: "Parse the list as CSV regardless of its extension"},
		&console.StringFlag{Name: "column", DefaultValue: list.DefaultColumn, Usage: "CSV column holding the paths"},
		&console.BoolFlag{Name: "dirs", Usage: "Move directory entries instead of skipping them"},
		&console.BoolFlag{Name: "robocopy", Usage: "Delegate each transfer to robocopy"},
		&console.StringFlag{Name: "config", Usage: "Transfer tuning config file"},
		&console.BoolFlag{Name: "verbose", Usage: "Log every entry as it is processed"},
	},
	Action: func(c *console.Context) error {
		applyVerbosity(c)

		args := c.Args().Slice()
		if len(args) < 2 {
			return console.Exit("usage: run <list-file> <target-root>", 1)
		}
		listPath, targetRoot := args[0], args[1]

		cfg, err := ffconfig.LoadConfigPrefer(c.String("config"))
		if err != nil {
			return console.Exit(fmt.Sprintf("Failed to load config: %v", err), 1)
		}
		if err := validateRun(listPath, targetRoot); err != nil {
			return console.Exit(err.Error(), 1)
		}

		entries, err := list.Read(listPath, list.Options{
			StartOffset: c.Int("start"),
			Format:      listFormat(c),
			Column:      c.String("column"),
		})
		if err != nil {
			return console.Exit(fmt.Sprintf("Failed to read list %s: %v", listPath, err), 2)
		}

		executor := &move.Executor{
			Mover:     entryMover(c, cfg),
			AllowDirs: c.Bool("dirs"),
		}
		recorder := report.NewRecorder()
		terminal.Logger.Info().
			Str("run", recorder.RunID()).
			Str("list", listPath).
			Str("target", targetRoot).
			Int("entries", len(entries)).
			Msg("starting run")

		moved := 0
		skipped := 0
		failed := 0
		for _, entry := range entries {
			result := executor.MoveOne(entry, targetRoot)
			recorder.Record(result)

			switch result.Status {
			case move.StatusSuccess:
				moved++
				terminal.Logger.Debug().
					Str("source", result.Source).
					Str("destination", result.Destination).
					Msg("moved")
			case move.StatusSkipped:
				skipped++
				terminal.Logger.Debug().
					Str("source", result.Source).
					Msg(result.Message)
			default:
				failed++
				fmt.Fprintf(c.App.ErrWriter, "<fg=red>line %d: %s: %s</>\n", result.Line, result.Source, result.Message)
			}
		}

		reportPath := c.String("report")
		if reportPath == "" {
			reportPath = report.DefaultPath(cfg.Report.Dir)
		}
		flushErr := writeReport(recorder, reportPath)
		if flushErr == nil {
			fmt.Fprintf(c.App.Writer, "Report written to <comment>%s</>\n", reportPath)
		}

		fmt.Fprintf(c.App.Writer, "Summary: <info>%d</> moved, <comment>%d</> skipped, <warning>%d</> failed.\n", moved, skipped, failed)

		// Entry-level failures are the report's business, but losing the
		// report itself is an orchestration failure.
		return flushErr
	},
}

// writeReport flushes the run's results; the moves themselves are already
// done, so a failure here surfaces as a non-zero exit without undoing them.
func writeReport(recorder *report.Recorder, path string) error {
	if err := recorder.Flush(path); err != nil {
		terminal.Logger.Error().Err(err).Str("path", path).Msg("failed to write report")
		return console.Exit(fmt.Sprintf("Failed to write report %s: %v", path, err), 1)
	}
	return nil
}

// validateRun fails fast before any filesystem mutation: the target root and
// the list file must pre-exist, and the list must not be empty.
func validateRun(listPath, targetRoot string) error {
	if listPath == "" || targetRoot == "" {
		return fmt.Errorf("both the list file and the target root are required")
	}
	fi, err := os.Stat(targetRoot)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("target root %q is not an existing directory", targetRoot)
	}
	li, err := os.Stat(listPath)
	if err != nil || li.IsDir() {
		return fmt.Errorf("list file %q does not exist", listPath)
	}
	if li.Size() == 0 {
		return fmt.Errorf("list file %q is empty", listPath)
	}
	return nil
}

func listFormat(c *console.Context) list.Format {
	if c.Bool("csv") {
		return list.FormatCSV
	}
	return list.FormatAuto
}

func entryMover(c *console.Context, cfg *ffconfig.Config) move.Mover {
	if c.Bool("robocopy") {
		return &move.Robocopy{
			Retries:     cfg.Transfer.Retries,
			WaitSeconds: cfg.Transfer.WaitSeconds,
			Threads:     cfg.Transfer.Threads,
		}
	}
	return move.NativeMover{}
}
