package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophblog/internal/common"
)

// Input indirections so tests can feed answers.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

// Register prompts for a username, email and password and creates the
// account. The CLI is logged in as the new user afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Register(ctx, username, email, string(password))
	if err != nil {
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Registered and logged in as %s\n", user.Username)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Username)
	return nil
}

// Logout drops the saved session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) WhoAmI(context.Context) error {
	if a.user == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s <%s> (id %d)\n", a.user.Username, a.user.Email, a.user.ID)
	return nil
}
