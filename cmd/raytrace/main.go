// SPDX-License-Identifier: MIT

// Command raytrace traces photon paths around a Schwarzschild black hole.
//
//	raytrace solve --r0 6 --theta0 70 --delta0 -43 --stop 9 --samples 500 --degrees
//	raytrace solve --x 6 --y 0 --delta0 -0.82 --stop -9 --samples 500 --format json
//	raytrace batch --file rays.yaml --workers 8 --metrics-file photon.prom
//
// Exit codes: 0 success, 1 a ray could not be traced, 2 usage or
// configuration error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "raytrace:", err)
		stop()
		os.Exit(exitCode(err))
	}
}
