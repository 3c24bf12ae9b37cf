package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/goliatone/go-surveyform/cmd/surveyform/commands"
)

// Version information - set during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Errors are printed by the printer package with colour formatting
	if err := commands.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
