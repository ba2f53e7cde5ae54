// SPDX-License-Identifier: MIT

// Command lvmatch solves assignment problems from the command line.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvmatch/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
