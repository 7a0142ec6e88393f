package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/libcheck/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// CI consumers read a single true/false line from stdout and never branch
	// on the exit status, so every failure path still exits 0 with a "false"
	// line and a diagnostic on stderr. Command handlers emit their own line;
	// only errors cobra surfaces before a handler runs (unknown flags, bad
	// argument counts) land here.
	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Println("false")
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
	}

	return root.ExecuteContext(ctx)
}
