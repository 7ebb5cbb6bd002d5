package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
)

// execIface is the command surface the REPL drives. App implements it;
// tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Create(ctx context.Context) error
	Get(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Update(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, list [limit] [offset], get <id>, whoami, help, exit"
	helpLoggedIn  = "Available commands: create, get <id>, list [limit] [offset], update <id>, delete <id>, whoami, logout, help, exit"
)

// runREPL reads one command per line from in and dispatches it to a until
// "exit", "quit" or end of input. Command errors are reported and the loop
// goes on.
//
//	blog (alice@http)> list 10 0
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "blog (%s)> ", statusFn())

		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, helpLoggedIn)
			} else {
				fmt.Fprintln(out, helpLoggedOut)
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)
		case "create":
			cmdErr = a.Create(ctx)
		case "get":
			cmdErr = a.Get(ctx, args)
		case "l", "list":
			cmdErr = a.List(ctx, args)
		case "update":
			cmdErr = a.Update(ctx, args)
		case "delete":
			cmdErr = a.Delete(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, describe(cmdErr))
		}
	}
}

// describe turns a command error into a line for the user.
func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "Error: unauthorized, check your credentials or login again"
	case errors.Is(err, client.ErrForbidden):
		return "Error: you can only change your own posts"
	case errors.Is(err, client.ErrNotFound):
		return "Error: post not found"
	case errors.Is(err, client.ErrConflict):
		return "Error: username or email already taken"
	case errors.Is(err, client.ErrUnavailable):
		return "Error: server unavailable"
	default:
		return "Error: " + err.Error()
	}
}
