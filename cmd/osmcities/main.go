// Command osmcities writes the names of the administrative areas
// within a region, as known to OpenStreetMap, to a text file.
//
// Usage:
//
//	osmcities -c FR -l 6 -out departements.txt
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/apex/log"
	"github.com/osmcities/osmcities/internal/cli/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := app.Run(ctx, os.Args[1:])
	stop()
	if err == nil {
		return
	}
	log.WithError(err).Fatal("main exit")
}
