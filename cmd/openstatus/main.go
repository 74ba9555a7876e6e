// Command openstatus is a command-line client for the OpenStatus API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/openstatushq/openstatus-go/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
