// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"
	"os/signal"

	"github.com/matt-FFFFFF/cmdreg/internal/ctxlog"
)

// Watch monitors sigCh until ctx is done or sigCh is closed.
// The first signal of a given type is logged. The second signal of the same
// type stops delivery to sigCh and calls cancel.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				ctxlog.Warn(ctx, "watchdog", "detail", "received second signal of type, cancelling", "signal", sig.String())
				signal.Stop(sigCh)
				cancel()

				return
			}

			ctxlog.Warn(ctx, "watchdog",
				"detail", "received first signal of type, send again to cancel",
				"signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
