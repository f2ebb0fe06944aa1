package main

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/travessias-ma/balsa-client/internal/app/tickets"
	"github.com/travessias-ma/balsa-client/internal/domain"
)

func (a *app) cmdBuy(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("buy", pflag.ContinueOnError)
	tripArg := fs.String("trip", "", "trip id, from balsa trips")
	dateArg := fs.String("date", "today", "travel date, used to look the trip up")
	carTypeArg := fs.String("car-type", "", "vehicle category id; omit for passenger-only")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	if *tripArg == "" {
		return fmt.Errorf("--trip is required; list ids with balsa trips")
	}

	date, err := a.parseDate(*dateArg)
	if err != nil {
		return err
	}
	list, err := a.trips.TripsByDate(ctx, date, nil)
	if err != nil {
		return err
	}
	var trip domain.Trip
	found := false
	for _, t := range list {
		if t.ID == domain.TripID(*tripArg) {
			trip, found = t, true
			break
		}
	}
	if !found {
		return fmt.Errorf("trip %s not found on %s; it may be sold out or on another date", *tripArg, *dateArg)
	}

	sel := tickets.PassengerOnly()
	if *carTypeArg != "" {
		sel = tickets.WithCarType(domain.CarTypeID(*carTypeArg))
	}

	quote, err := a.tickets.QuoteFor(ctx, trip, sel)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderQuote(quote))

	if !*yes {
		ok, err := a.confirm("confirm purchase? [y/N] ")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "purchase cancelled")
			return nil
		}
	}

	ticket, err := a.tickets.Buy(ctx, trip.ID, sel)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderOK("ticket confirmed"))
	fmt.Fprintln(a.out, renderTicket(ticket))
	fmt.Fprintln(a.out, "boarding code: balsa checkin --trip "+string(ticket.TripID))
	return nil
}

func (a *app) cmdTickets(ctx context.Context) error {
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	mine, err := a.tickets.Mine(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderTickets(mine))
	return nil
}

func (a *app) cmdCheckin(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("checkin", pflag.ContinueOnError)
	tripArg := fs.String("trip", "", "trip id of the ticket to board with")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(ctx); err != nil {
		return err
	}
	if *tripArg == "" {
		return fmt.Errorf("--trip is required; list your tickets with balsa tickets")
	}

	mine, err := a.tickets.Mine(ctx)
	if err != nil {
		return err
	}
	for _, t := range mine {
		if t.TripID == domain.TripID(*tripArg) {
			fmt.Fprintln(a.out, renderCheckIn(t))
			return nil
		}
	}
	return fmt.Errorf("no ticket for trip %s", *tripArg)
}
