// Command romandom searches for light (perfect) Roman domination labelings.
//
// Usage:
//
//	romandom solve [flags] GRAPH...
//	romandom generate --kind gnm -n 100 -m 300 -o g.txt
//	romandom verify GRAPH LABELS
//	romandom export results.csv results.xlsx
//	romandom history --store runs.db [GRAPH]
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
