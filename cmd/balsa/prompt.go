package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptPassword reads a password without echo when stdin is a
// terminal, falling back to a plain line read when input is piped in.
func (a *app) promptPassword(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)

	if f, ok := a.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(a.out)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(raw), nil
	}

	line, err := a.readLine()
	if err != nil {
		return "", err
	}
	return line, nil
}

func (a *app) promptNewPassword() (string, error) {
	first, err := a.promptPassword("password: ")
	if err != nil {
		return "", err
	}
	second, err := a.promptPassword("repeat password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errors.New("passwords do not match")
	}
	return first, nil
}

func (a *app) confirm(prompt string) (bool, error) {
	fmt.Fprint(a.out, prompt)
	line, err := a.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "sim":
		return true, nil
	default:
		return false, nil
	}
}

func (a *app) readLine() (string, error) {
	r := bufio.NewReader(a.in)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
