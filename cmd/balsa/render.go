package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/travessias-ma/balsa-client/internal/app/tickets"
	"github.com/travessias-ma/balsa-client/internal/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	codeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 3).
			Align(lipgloss.Center)
)

func renderOK(msg string) string {
	return okStyle.Render("✓ " + msg)
}

func renderError(err error) string {
	return errStyle.Render("error: " + err.Error())
}

func renderUser(u domain.User) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(u.Name) + "\n")
	b.WriteString(u.Email + "\n")
	b.WriteString(faintStyle.Render("id " + string(u.ID)))
	return b.String()
}

func renderTrips(title string, list []domain.Trip) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	if len(list) == 0 {
		b.WriteString(faintStyle.Render("no crossings with open seats"))
		return b.String()
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-38s %-5s %-18s %-9s %-9s %8s", "ID", "TIME", "FROM", "SEATS", "VEHICLES", "PRICE")) + "\n")
	for _, t := range list {
		b.WriteString(fmt.Sprintf("%-38s %-5s %-18s %-9s %-9s %8s\n",
			t.ID,
			t.TripDate.Format("15:04"),
			t.From,
			fmt.Sprintf("%d/%d", t.HumanCapacityCount, t.HumanCapacity),
			fmt.Sprintf("%d/%d", t.VehicleCapacityCount, t.VehicleCapacity),
			fmt.Sprintf("R$%.2f", t.Price),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderQuote(q tickets.Quote) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Purchase summary") + "\n")
	b.WriteString(fmt.Sprintf("crossing  %s → %s at %s\n", q.Trip.From, q.Trip.To, q.Trip.TripDate.Format("15:04")))
	b.WriteString(fmt.Sprintf("fare      R$%.2f\n", q.Trip.Price))
	if q.CarType != nil {
		b.WriteString(fmt.Sprintf("vehicle   %s (+R$%.2f)\n", q.CarType.Label, q.CarType.Cost))
	} else {
		b.WriteString("vehicle   none (passenger-only)\n")
	}
	b.WriteString(fmt.Sprintf("total     R$%.2f", q.Total))
	return b.String()
}

func renderTicket(t domain.Ticket) string {
	vehicle := "passenger-only"
	if t.CarType != nil {
		vehicle = *t.CarType
	}
	return fmt.Sprintf("%s → %s on %s at %s  [%s, %s]",
		t.TripFrom, t.TripTo,
		t.TripDate.Format("2006-01-02"), t.TripDate.Format("15:04"),
		vehicle, t.Status)
}

func renderTickets(list []domain.Ticket) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your tickets") + "\n")
	if len(list) == 0 {
		b.WriteString(faintStyle.Render("no tickets yet; buy one with balsa buy"))
		return b.String()
	}
	for _, t := range list {
		b.WriteString(renderTicket(t) + "\n")
		b.WriteString(faintStyle.Render("  trip "+string(t.TripID)) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderCheckIn(t domain.Ticket) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Boarding code") + "\n")
	b.WriteString(codeBoxStyle.Render(t.CheckInCode()) + "\n")
	b.WriteString(faintStyle.Render("show this code at the " + string(t.TripFrom) + " gate"))
	return b.String()
}
