// Command balsa is the terminal client for the Ponta da Espera / Cujupe
// ferry crossing: account management, trip listings, ticket purchase
// and check-in codes.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/travessias-ma/balsa-client/internal/adapters/filestore"
	"github.com/travessias-ma/balsa-client/internal/adapters/httpgateway"
	"github.com/travessias-ma/balsa-client/internal/app/auth"
	"github.com/travessias-ma/balsa-client/internal/app/cartypes"
	"github.com/travessias-ma/balsa-client/internal/app/tickets"
	"github.com/travessias-ma/balsa-client/internal/app/trips"
	platformclock "github.com/travessias-ma/balsa-client/internal/platform/clock"
	"github.com/travessias-ma/balsa-client/internal/platform/config"
	"github.com/travessias-ma/balsa-client/internal/platform/logging"
	clockport "github.com/travessias-ma/balsa-client/internal/ports/out/clock"
)

const usage = `balsa - ferry tickets for the Ponta da Espera / Cujupe crossing

Usage:
  balsa <command> [flags]

Commands:
  register   Create an account
  login      Sign in
  logout     Sign out
  whoami     Show the signed-in account
  trips      List crossings for a date
  buy        Buy a ticket
  tickets    List your tickets
  checkin    Show the boarding code for a ticket

Run "balsa <command> --help" for command flags.
`

// app carries the wired service graph into the command handlers.
type app struct {
	auth     *auth.Coordinator
	trips    *trips.Service
	carTypes *cartypes.Service
	tickets  *tickets.Service
	clk      clockport.Clock

	out io.Writer
	in  io.Reader
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		fmt.Print(usage)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel)

	store := filestore.New(cfg.SessionFile)
	gw, err := httpgateway.New(cfg.BaseURL, httpgateway.Options{
		Timeout:       cfg.Timeout,
		RequestHooks:  []httpgateway.RequestHook{httpgateway.BearerAuth(store, log)},
		ResponseHooks: []httpgateway.ResponseHook{httpgateway.InvalidateOn401(store, log)},
		Logger:        log,
	})
	if err != nil {
		return err
	}

	authSvc := auth.NewService(gw, store, log)
	carTypeSvc := cartypes.NewService(gw, log)
	a := &app{
		auth:     auth.NewCoordinator(authSvc),
		trips:    trips.NewService(gw, log),
		carTypes: carTypeSvc,
		tickets:  tickets.NewService(gw, carTypeSvc, log),
		clk:      platformclock.NewSystemClock(),
		out:      os.Stdout,
		in:       os.Stdin,
	}

	ctx := context.Background()
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "register":
		return a.cmdRegister(ctx, rest)
	case "login":
		return a.cmdLogin(ctx, rest)
	case "logout":
		return a.cmdLogout(ctx)
	case "whoami":
		return a.cmdWhoami(ctx)
	case "trips":
		return a.cmdTrips(ctx, rest)
	case "buy":
		return a.cmdBuy(ctx, rest)
	case "tickets":
		return a.cmdTickets(ctx)
	case "checkin":
		return a.cmdCheckin(ctx, rest)
	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}
