package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

func (a *App) getStatus() string {
	if u := a.session.CurrentUser(); u != nil && u.Username != "" {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return ""
}

// Root runs the read-eval-print loop until EOF or an explicit exit.
// Command handlers print their own errors; the loop never aborts on one.
// Commands share a.reader with the interactive prompts, so no input is
// lost between a command line and a follow-up question.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Backoffice console (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "backoffice %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && (len(line) == 0 || !errors.Is(err, io.EOF)) {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.help()
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "refresh":
			_ = a.Refresh(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "menu":
			_ = a.Menu(ctx)
		case "can":
			_ = a.Can(ctx, args)
		case "users":
			_ = a.Users(ctx, args)
		case "customers":
			_ = a.Customers(ctx, args)
		case "roles":
			_ = a.Roles(ctx, args)
		case "assignments":
			_ = a.Assignments(ctx, args)
		case "categories":
			_ = a.Categories(ctx, args)
		case "functions":
			_ = a.Functions(ctx, args)
		case "quote":
			_ = a.Quote(ctx)
		case "sidebar":
			_ = a.Sidebar(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) help() {
	if a.session.IsAuthenticated() {
		fmt.Fprintln(a.out, "Available commands: whoami, menu, can <resource.action>, refresh,")
		fmt.Fprintln(a.out, "  users | customers | roles | assignments | categories | functions [list|get|create|update|delete ...],")
		fmt.Fprintln(a.out, "  quote, sidebar [on|off], logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, quote, exit")
	}
}

// requireAuth reports whether a session is active, printing a hint otherwise.
func (a *App) requireAuth() bool {
	if a.session.IsAuthenticated() {
		return true
	}
	fmt.Fprintln(a.out, "Not logged in. Use 'login' first.")
	return false
}
