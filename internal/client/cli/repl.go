package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/rainyday/internal/client/client"
	"github.com/dmitrijs2005/rainyday/internal/common"
	"github.com/dmitrijs2005/rainyday/internal/raincheck"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App implements
// it; tests use a stub.
type execIface interface {
	isLoggedIn() bool
	expireSession(ctx context.Context)
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Completed(ctx context.Context, args []string) error
	Create(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Complete(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

const (
	helpSignedOut = "Available commands: register, login, help, exit"
	helpSignedIn  = "Available commands: (l)ist, completed, create, edit <id>, show <id>, complete <id>, delete <id>, whoami, logout, help, exit"
)

// runREPL reads commands from reader until EOF, "exit" or "quit". The first
// word selects the command and the rest are its arguments. Command errors
// are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("rainyday%s> ", prefixed(statusFn())))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cerr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}
		case "register":
			cerr = a.Register(ctx)
		case "login":
			cerr = a.Login(ctx)
		case "logout":
			cerr = a.Logout(ctx)
		case "whoami":
			cerr = a.WhoAmI(ctx)
		case "l", "list":
			cerr = a.List(ctx, args)
		case "completed", "done":
			cerr = a.Completed(ctx, args)
		case "create", "new":
			cerr = a.Create(ctx, args)
		case "edit":
			cerr = a.Edit(ctx, args)
		case "show":
			cerr = a.Show(ctx, args)
		case "complete":
			cerr = a.Complete(ctx, args)
		case "delete", "rm":
			cerr = a.Delete(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cerr == nil {
			continue
		}
		if sessionLost(cmd, cerr) && a.isLoggedIn() {
			a.expireSession(ctx)
			printlnFn("Your session has expired. Please log in again.")
			continue
		}
		printlnFn(describe(cerr))
	}
}

// sessionLost reports a server rejecting the saved session. Failed
// credentials on register or login do not count.
func sessionLost(cmd string, err error) bool {
	if cmd == "register" || cmd == "login" {
		return false
	}
	return errors.Is(err, client.ErrUnauthorized)
}

func prefixed(s string) string {
	if s == "" {
		return ""
	}
	return " " + s
}

// describe turns an error into a message for the user.
func describe(err error) string {
	var verr *raincheck.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, client.ErrUnauthorized):
		return "Please log in first."
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later."
	case errors.Is(err, common.ErrorNotFound):
		return "RainCheck not found."
	case errors.Is(err, common.ErrVersionConflict):
		return "This RainCheck was changed elsewhere. Show it again and retry."
	case errors.Is(err, common.ErrorAlreadyExists):
		return "An account with this email already exists."
	default:
		return "Error: " + err.Error()
	}
}
