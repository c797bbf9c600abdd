// SPDX-License-Identifier: MIT

// Command trinoise evaluates the trinoise sequence from the command line.
//
// Usage:
//
//	trinoise tri --base 5 0 1 2 123456789012345678901234567890
//	trinoise depth --base 3 5
//	trinoise neighborhood --base 4 0
//	trinoise sequence --base 3 --start 0 --count 27
//	trinoise frequencies --base 6 --format yaml
//	trinoise verify --from 2 --to 7
//
// Settings come from defaults, then an optional YAML file (--config), then
// flags. Logs go to stderr.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/trinoise/digits"
	"github.com/katalvlaran/trinoise/segment"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitInput    = 2 // invalid base, index or configuration
	exitCapacity = 3 // overflow or table limit
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// exitCode maps an error kind to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, digits.ErrInvalidBase),
		errors.Is(err, digits.ErrInvalidIndex),
		errors.Is(err, errInvalidConfig):
		return exitInput
	case errors.Is(err, digits.ErrOverflow),
		errors.Is(err, segment.ErrTableTooLarge):
		return exitCapacity
	default:
		return exitFailure
	}
}
