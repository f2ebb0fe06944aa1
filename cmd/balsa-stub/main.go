// Command balsa-stub runs the in-memory ticketing backend for local
// development: the CLI pointed at it exercises the full purchase flow
// without the real API.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/travessias-ma/balsa-client/internal/adapters/stubapi"
	platformclock "github.com/travessias-ma/balsa-client/internal/platform/clock"
	"github.com/travessias-ma/balsa-client/internal/platform/logging"
)

func main() {
	port := getenv("PORT", "8080")
	log := logging.New(getenv("LOG_LEVEL", "info"))

	clk := platformclock.NewSystemClock()
	server := stubapi.NewServer(clk, log)

	// Seed a few days of crossings so "balsa trips" has something to
	// show out of the box.
	today := clk.Now().UTC()
	for d := 0; d < 3; d++ {
		server.SeedDefaults(today.AddDate(0, 0, d))
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", port).Msg("stub api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
