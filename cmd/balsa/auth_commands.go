package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/travessias-ma/balsa-client/internal/domain"
)

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("register", pflag.ContinueOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "email address")
	cpf := fs.String("cpf", "", "CPF, with or without punctuation")
	if err := fs.Parse(args); err != nil {
		return err
	}

	password, err := a.promptNewPassword()
	if err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, domain.Registration{
		Name:     *name,
		Email:    *email,
		CPF:      *cpf,
		Password: password,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderOK(fmt.Sprintf("account created for %s", user.Email)))
	fmt.Fprintln(a.out, "sign in with: balsa login --email "+user.Email)
	return nil
}

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("login", pflag.ContinueOnError)
	email := fs.String("email", "", "email address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	password, err := a.promptPassword("password: ")
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, domain.Credentials{Email: *email, Password: password})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderOK(fmt.Sprintf("signed in as %s", sess.User.Name)))
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderOK("signed out"))
	return nil
}

func (a *app) cmdWhoami(ctx context.Context) error {
	if !a.auth.IsAuthenticated(ctx) {
		return errors.New("not signed in")
	}
	user, ok := a.auth.User()
	if !ok {
		return errors.New("not signed in")
	}
	fmt.Fprintln(a.out, renderUser(user))
	return nil
}

// requireAuth fronts every command that talks to an authenticated
// endpoint, so the rider gets a clear message instead of a 401.
func (a *app) requireAuth(ctx context.Context) error {
	if !a.auth.IsAuthenticated(ctx) {
		return errors.New("not signed in; run balsa login first")
	}
	return nil
}
