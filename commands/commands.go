package commands

import (
	"github.com/rs/zerolog"
	"github.com/symfony-cli/console"
	"github.com/symfony-cli/terminal"
)

func Commands() []*console.Command {
	return []*console.Command{runCmd, planCmd, migrateCmd}
}

func applyVerbosity(c *console.Context) {
	if c.Bool("verbose") {
		terminal.Logger = terminal.Logger.Level(zerolog.DebugLevel)
	}
}
