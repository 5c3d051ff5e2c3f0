package main

import (
	"os"

	"github.com/simonhull/firebird-suite/nprompt/internal/commands"
)

func main() {
	if err := commands.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
