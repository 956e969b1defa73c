package main

import (
	"fmt"
	"os"

	"github.com/symfony-cli/console"

	"github.com/anasdove2020/robocopy-migration/commands"
)

func main() {
	app := &console.Application{
		Name:     "robocopy-migration",
		Usage:    "Move files listed in a CSV or text file under a new root, preserving directory structure",
		Commands: commands.Commands(),
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
