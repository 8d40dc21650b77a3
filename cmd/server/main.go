package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/alshawwaf/dev-hub/internal/cmd"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	var err error
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		err = cmd.SeedCmd(ctx)
	} else {
		err = cmd.ServerCmd(ctx)
	}
	if err != nil {
		log.Fatal(err)
	}
}
