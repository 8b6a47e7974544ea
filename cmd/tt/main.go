package main

import (
	"fmt"
	"os"

	app "github.com/valter-silva-au/task-tracker/internal"
	"github.com/valter-silva-au/task-tracker/internal/cli"
)

// Set by goreleaser ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	basePath := app.ResolveBasePath()

	// A failed init still lets version, config and completion run.
	a, err := app.NewApp(basePath)
	if err != nil {
		cli.SetInitError(err)
	}

	err = cli.Execute()
	if a != nil {
		_ = a.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
