// SPDX-License-Identifier: Unlicense OR MIT

// Command progressbutton renders, previews and drives a progress button
// from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/trendit/progressbutton/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cli.Execute(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "progressbutton:", err)
		stop()
		os.Exit(1)
	}
}
