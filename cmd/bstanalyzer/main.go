package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/g-m-twostay/ordtree/internal/analyzer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// an interrupted session says goodbye and isn't a failure.
	if err := analyzer.New().Execute(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
