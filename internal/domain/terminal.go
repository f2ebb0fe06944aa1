package domain

import (
	"fmt"
	"strings"
)

// Terminal is a fixed ferry departure/arrival point. Exactly two exist
// on this crossing.
type Terminal string

const (
	TerminalPontaDaEspera Terminal = "Ponta da Espera"
	TerminalCujupe        Terminal = "Cujupe"
)

// Terminals lists the two terminals in display order.
func Terminals() []Terminal {
	return []Terminal{TerminalPontaDaEspera, TerminalCujupe}
}

// Valid reports whether t is one of the two known terminals.
func (t Terminal) Valid() bool {
	return t == TerminalPontaDaEspera || t == TerminalCujupe
}

// Opposite returns the other terminal. The return leg of a round trip
// always departs from the terminal the outbound leg arrives at, so this
// is a binary toggle, not terminal-graph routing.
func (t Terminal) Opposite() Terminal {
	if t == TerminalPontaDaEspera {
		return TerminalCujupe
	}
	return TerminalPontaDaEspera
}

// ParseTerminal resolves user input to a Terminal. It accepts the full
// label case-insensitively and the short aliases "ponta" and "cujupe".
func ParseTerminal(s string) (Terminal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ponta", "ponta da espera":
		return TerminalPontaDaEspera, nil
	case "cujupe":
		return TerminalCujupe, nil
	}
	return "", fmt.Errorf("unknown terminal %q (expected %q or %q)", s, TerminalPontaDaEspera, TerminalCujupe)
}
