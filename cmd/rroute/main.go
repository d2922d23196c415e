// Command rroute serves, lists and exercises a segment-trie HTTP router.
package main

import (
	"context"
	"os"

	"github.com/rohanthewiz/rroute/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{Logger: logger})

	app := &cli.Command{
		Name:     "rroute",
		Usage:    "Serve and inspect a segment-trie HTTP router",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
