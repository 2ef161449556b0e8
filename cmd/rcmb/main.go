// SPDX-License-Identifier: MIT

// Command rcmb searches standard-value resistor and capacitor networks that
// approximate a target value, and resistor dividers that approximate a ratio.
//
//	rcmb r --target 3.3k --series e12
//	rcmb c --target 150n --num-elems-max 2 --format json
//	rcmb d --target 0.66 --total-min 10k --total-max 100k
//	rcmb series e6
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "*ERROR: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// run executes one command line and releases the tracer provider, if any.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	a := newApp()
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)

	return errors.Join(err, a.close(context.WithoutCancel(ctx)))
}
