package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rainyday/internal/common"
)

// Indirections over the interactive input helpers, swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) credentials() (string, string, error) {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return "", "", err
	}

	pw, err := getPassword(a.out)
	if err != nil {
		return "", "", err
	}
	defer common.WipeByteArray(pw)

	return email, string(pw), nil
}

// Register creates an account and signs it in.
func (a *App) Register(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}

	id, err := a.auth.Register(ctx, email, password)
	if err != nil {
		return err
	}

	a.setMode(ModeOnline)
	fmt.Fprintf(a.out, "Welcome, %s!\n", id.Email)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, password, err := a.credentials()
	if err != nil {
		return err
	}

	id, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.setMode(ModeOnline)
	fmt.Fprintf(a.out, "Signed in as %s\n", id.Email)
	return nil
}

// Logout forgets the saved session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// expireSession signs out after the server stopped accepting the session.
func (a *App) expireSession(ctx context.Context) {
	a.logger.Info(ctx, "session rejected by server, signing out")
	if err := a.auth.SignOut(ctx); err != nil {
		a.logger.Warn(ctx, "sign out failed", "error", err)
	}
}

func (a *App) WhoAmI(context.Context) error {
	id := a.auth.CurrentUser()
	if id == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s)\n", id.Email, id.UserID)
	return nil
}
