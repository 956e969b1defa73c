package commands

import (
	"fmt"
	"os"

	"github.com/symfony-cli/console"

	"github.com/anasdove2020/robocopy-migration/list"
	"github.com/anasdove2020/robocopy-migration/move"
	"github.com/anasdove2020/robocopy-migration/report"
)

var planCmd = &console.Command{
	Category:    "",
	Name:        "plan",
	Usage:       "Show what a run would move (dry-run)",
	Description: "Reads the list and prints the computed destination for every entry without touching the filesystem",
	Flags: []console.Flag{
		&console.IntFlag{Name: "start", DefaultValue: 1, Usage: "1-based entry to start from, counted after the header"},
		&console.StringFlag{Name: "report", Usage: "Also write the plan as a CSV report to this path"},
		&console.BoolFlag{Name: "csv", Usage: "Parse the list as CSV regardless of its extension"},
		&console.StringFlag{Name: "column", DefaultValue: list.DefaultColumn, Usage: "CSV column holding the paths"},
		&console.BoolFlag{Name: "dirs", Usage: "Plan directory entries instead of skipping them"},
		&console.BoolFlag{Name: "verbose", Usage: "Log every entry as it is processed"},
	},
	Action: func(c *console.Context) error {
		applyVerbosity(c)

		args := c.Args().Slice()
		if len(args) < 2 {
			return console.Exit("usage: plan <list-file> <target-root>", 1)
		}
		listPath, targetRoot := args[0], args[1]
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

		recorder := report.NewRecorder()
		for _, entry := range entries {
			result := planOne(entry, targetRoot, c.Bool("dirs"))
			recorder.Record(result)

			switch result.Status {
			case move.StatusWarning:
				fmt.Fprintf(c.App.Writer, "Would move <comment>%s</> -> <comment>%s</>\n", result.Source, result.Destination)
			case move.StatusSkipped:
				fmt.Fprintf(c.App.Writer, "Would skip <comment>%s</>: %s\n", result.Source, result.Message)
			default:
				fmt.Fprintf(c.App.ErrWriter, "<fg=red>line %d: %s: %s</>\n", result.Line, result.Source, result.Message)
			}
		}

		if reportPath := c.String("report"); reportPath != "" {
			if err := recorder.Flush(reportPath); err != nil {
				fmt.Fprintf(c.App.ErrWriter, "<fg=red>failed to write report %s: %v</>\n", reportPath, err)
			}
		}

		fmt.Fprintf(c.App.Writer, "Planned <info>%d</> entries (dry run, nothing moved).\n", len(entries))
		return nil
	},
}

// planOne classifies an entry the way a run would, but stops short of any
// mutation. Plannable entries come back as WARNING so plan reports are never
// mistaken for completed moves.
func planOne(entry list.Entry, targetRoot string, allowDirs bool) move.Result {
	result := move.Result{
		Line:   entry.Line,
		Source: entry.Path,
	}

	info, err := os.Stat(entry.Path)
	if os.IsNotExist(err) {
		result.Status = move.StatusNotFound
		result.Message = "source not found"
		return result
	}
	if err != nil {
		result.Status = move.StatusError
		result.Message = err.Error()
		return result
	}
	if info.IsDir() && !allowDirs {
		result.Status = move.StatusSkipped
		result.Message = "directories are not supported by this operation"
		return result
	}

	dst, err := move.Destination(entry.Path, targetRoot)
	if err != nil {
		result.Status = move.StatusError
		result.Message = err.Error()
		return result
	}
	result.Destination = dst
	result.Status = move.StatusWarning
	result.Message = "would move (dry run)"
	return result
}
