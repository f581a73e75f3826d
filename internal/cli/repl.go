package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface of the REPL. App satisfies it; tests use
// a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Passwd(ctx context.Context) error
	Post(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Show(ctx context.Context, id string) error
	List(ctx context.Context) error
	Active(ctx context.Context) error
	Mine(ctx context.Context, filter string) error
	Stats(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: register, login, list, active, show <id>, stats, exit"
	helpMember = "Available commands: whoami, profile, passwd, post, edit <id>, delete <id>, show <id>, list, active, mine [all|active|expired|draft], stats, logout, exit"
)

// runREPL reads one command per line from in and dispatches it to a. It
// returns on EOF, on "exit"/"quit" or when ctx is done. Handler errors are
// printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader, out io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(out, "board%s> ", statusFn())

		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
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
				fmt.Fprintln(out, helpMember)
			} else {
				fmt.Fprintln(out, helpGuest)
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)
		case "profile":
			cmdErr = a.Profile(ctx)
		case "passwd":
			cmdErr = a.Passwd(ctx)
		case "post":
			cmdErr = a.Post(ctx)
		case "edit", "delete", "show":
			if len(args) == 0 {
				fmt.Fprintf(out, "Usage: %s <id>\n", cmd)
				continue
			}
			switch cmd {
			case "edit":
				cmdErr = a.Edit(ctx, args[0])
			case "delete":
				cmdErr = a.Delete(ctx, args[0])
			default:
				cmdErr = a.Show(ctx, args[0])
			}
		case "l", "list":
			cmdErr = a.List(ctx)
		case "active":
			cmdErr = a.Active(ctx)
		case "mine":
			filter := ""
			if len(args) > 0 {
				filter = args[0]
			}
			cmdErr = a.Mine(ctx, filter)
		case "stats":
			cmdErr = a.Stats(ctx)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, "error:", cmdErr)
		}
	}
}
