package main

import (
	"os"

	"github.com/tarunmehrda/corep-reporting-assistant/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
