// Command primext queries and edits nested documents with dot paths.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/primext/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
