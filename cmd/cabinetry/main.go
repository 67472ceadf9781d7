// Cabinetry lays out cabinets and the shelves, drawers, rods and handles
// constrained to them.
//
// Build:
//
//	go build -o cabinetry ./cmd/cabinetry
//
// Usage:
//
//	cabinetry run kitchen.yaml --pdf kitchen.pdf
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/piwi3910/cabinetry/internal/cli"
)

// Set via -ldflags "-X main.version=...".
var version string

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.SetVersion(version)
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
