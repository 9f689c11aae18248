package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	st := a.store.Snapshot()
	switch {
	case st.Loading:
		return "(loading)"
	case st.Authenticated():
		return fmt.Sprintf("(%s)", st.User.Username)
	default:
		return ""
	}
}

// Root runs the REPL until EOF or an exit command.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to casefile (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "cf %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		if a.dispatch(ctx, scanner.Text()) {
			return
		}
	}
}

// dispatch runs one command line. It returns true when the REPL should
// exit.
func (a *App) dispatch(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "help":
		a.printHelp()
	case "register":
		a.Register(ctx)
	case "login":
		a.Login(ctx)
	case "list":
		if a.guard(ctx, line) {
			a.list(ctx)
		}
	case "create":
		if a.guard(ctx, line) {
			a.create(ctx)
		}
	case "update":
		if len(args) == 0 {
			fmt.Fprintln(a.out, "Usage: update <id>")
			return false
		}
		if a.guard(ctx, line) {
			a.update(ctx, args[0])
		}
	case "whoami":
		if a.guard(ctx, line) {
			a.whoami(ctx)
		}
	case "refresh":
		if a.guard(ctx, line) {
			a.refresh(ctx)
		}
	case "logout":
		if a.guard(ctx, line) {
			a.Logout(ctx)
		}
	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return true
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return false
}

func (a *App) printHelp() {
	if a.store.Authenticated() {
		fmt.Fprintln(a.out, "Available commands: list, create, update <id>, whoami, refresh, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
	}
}
