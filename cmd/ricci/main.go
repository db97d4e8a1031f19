// Command ricci exposes the Wasserstein bridge and the null-model samplers
// on the command line.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := Root.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Error().Msgf("ricci: %v", err)
		os.Exit(1)
	}
}
