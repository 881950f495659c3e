// Command simserver runs a scene headless and streams snapshots over
// websocket.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/koteyur/impulse2d/internal/injector"
)

func main() {
	scene := flag.String("scene", "scenes/demo.yaml", "scene file to simulate")
	flag.Parse()

	runner, err := injector.InitializeRunner(*scene)
	if err != nil {
		fmt.Fprintln(os.Stderr, "simserver:", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "simserver:", err)
		os.Exit(1)
	}
}
