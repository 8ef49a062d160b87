// Command kxtabu searches cycle packings of kidney-exchange compatibility
// matrices.
//
//	kxtabu run --input pool.json --k 3 --time-limit 5m
//	kxtabu run --random-n 60 --random-p 0.05 --gen-seed 7 --json
//	kxtabu bound --input pool.json
//	kxtabu cycles --planted 2,3,3 --random-n 20 --k 3
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "kxtabu:", err)
		stop()
		os.Exit(exitError)
	}
}
