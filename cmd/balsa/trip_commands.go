package main

import (
	"context"
	"fmt"
	"time"

	"github.com/oapi-codegen/runtime/types"
	"github.com/spf13/pflag"

	"github.com/travessias-ma/balsa-client/internal/domain"
)

func (a *app) parseDate(raw string) (types.Date, error) {
	if raw == "" || raw == "today" {
		now := a.clk.Now()
		return types.Date{Time: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}, nil
	}
	t, err := time.Parse(types.DateFormat, raw)
	if err != nil {
		return types.Date{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", raw)
	}
	return types.Date{Time: t}, nil
}

func (a *app) cmdTrips(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("trips", pflag.ContinueOnError)
	dateArg := fs.String("date", "today", "travel date (YYYY-MM-DD)")
	fromArg := fs.String("from", "", "departure terminal (ponta | cujupe)")
	roundTrip := fs.Bool("round-trip", false, "also list the return leg")
	returnArg := fs.String("return-date", "", "return date, defaults to the travel date")
	if err := fs.Parse(args); err != nil {
		return err
	}

	date, err := a.parseDate(*dateArg)
	if err != nil {
		return err
	}

	var from *domain.Terminal
	if *fromArg != "" {
		term, err := domain.ParseTerminal(*fromArg)
		if err != nil {
			return err
		}
		from = &term
	}

	list, err := a.trips.TripsByDate(ctx, date, from)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderTrips(fmt.Sprintf("Crossings on %s", date.Format(types.DateFormat)), list))

	if !*roundTrip {
		return nil
	}
	if from == nil {
		return fmt.Errorf("--round-trip needs --from to know the return terminal")
	}
	returnDate := date
	if *returnArg != "" {
		if returnDate, err = a.parseDate(*returnArg); err != nil {
			return err
		}
	}
	back, err := a.trips.ReturnTrips(ctx, returnDate, *from)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderTrips(fmt.Sprintf("Return from %s on %s", from.Opposite(), returnDate.Format(types.DateFormat)), back))
	return nil
}
