package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophblog/internal/client/client"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	err      error
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	f.loggedIn = true
	return f.record("register", nil)
}
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) WhoAmI(context.Context) error                  { return f.record("whoami", nil) }
func (f *fakeExec) Create(context.Context) error                  { return f.record("create", nil) }
func (f *fakeExec) Get(_ context.Context, args []string) error    { return f.record("get", args) }
func (f *fakeExec) List(_ context.Context, args []string) error   { return f.record("list", args) }
func (f *fakeExec) Update(_ context.Context, args []string) error { return f.record("update", args) }
func (f *fakeExec) Delete(_ context.Context, args []string) error { return f.record("delete", args) }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"create",
		"list 5 10",
		"l",
		"get 42",
		"update 42",
		"delete 42",
		"whoami",
		"foobar",
		"logout",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input), &out)

	want := []string{"login", "create", "list 5 10", "list", "get 42", "update 42", "delete 42", "whoami", "logout"}
	if fmt.Sprint(exec.calls) != fmt.Sprint(want) {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}

	text := out.String()
	for _, s := range []string{helpLoggedOut, helpLoggedIn, "Unknown command: foobar", "Bye!", "blog (status)> "} {
		if !strings.Contains(text, s) {
			t.Fatalf("output misses %q:\n%s", s, text)
		}
	}
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr("whoami"), &out)

	if len(exec.calls) != 1 || exec.calls[0] != "whoami" {
		t.Fatalf("calls = %v", exec.calls)
	}
}

func TestRunREPL_ReportsErrors(t *testing.T) {
	exec := &fakeExec{err: &client.ServerError{Err: client.ErrForbidden, Message: "forbidden"}}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr("delete 1\nexit\n"), &out)

	if !strings.Contains(out.String(), "Error: you can only change your own posts") {
		t.Fatalf("missing error line:\n%s", out.String())
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{client.ErrUnauthorized, "Error: unauthorized, check your credentials or login again"},
		{client.ErrNotFound, "Error: post not found"},
		{client.ErrConflict, "Error: username or email already taken"},
		{client.ErrUnavailable, "Error: server unavailable"},
		{&client.ServerError{Err: client.ErrValidation, Message: "validation error: title is required"}, "Error: validation error: title is required"},
		{errors.New("usage: <command> <post id>"), "Error: usage: <command> <post id>"},
	}

	for _, tt := range tests {
		if got := describe(tt.err); got != tt.want {
			t.Fatalf("describe(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
