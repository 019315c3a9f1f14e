package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/avendano-dev/backoffice/internal/client/models"
	"github.com/avendano-dev/backoffice/internal/client/validate"
)

// Users dispatches the "users" subcommands.
func (a *App) Users(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: users list [search] | get <id> | create | activate <id> | deactivate <id> | delete <id>")
		return nil
	}

	switch args[0] {
	case "list":
		return a.usersList(ctx, strings.Join(args[1:], " "))
	case "get":
		id, ok := a.idArg(args[1:], "users get <id>")
		if !ok {
			return nil
		}
		u, err := a.users.Get(ctx, id)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		a.printUser(*u)
		return nil
	case "create":
		return a.usersCreate(ctx)
	case "activate", "deactivate":
		id, ok := a.idArg(args[1:], "users "+args[0]+" <id>")
		if !ok {
			return nil
		}
		u, err := a.users.SetActive(ctx, id, args[0] == "activate")
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		fmt.Fprintf(a.out, "User %d active=%t\n", u.ID, u.IsActive)
		return nil
	case "delete":
		id, ok := a.idArg(args[1:], "users delete <id>")
		if !ok {
			return nil
		}
		if err := a.users.Delete(ctx, id); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		fmt.Fprintf(a.out, "User %d deleted.\n", id)
		return nil
	default:
		fmt.Fprintln(a.out, "Unknown users subcommand:", args[0])
		return nil
	}
}

func (a *App) usersList(ctx context.Context, search string) error {
	page, err := a.users.List(ctx, models.UserFilters{Search: search})
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	for _, u := range page.Results {
		fmt.Fprintf(a.out, "%4d  %-30s %-25s active=%t\n", u.ID, u.Email, u.FullName, u.IsActive)
	}
	fmt.Fprintf(a.out, "%d of %d users\n", len(page.Results), page.Count)
	return nil
}

func (a *App) usersCreate(ctx context.Context) error {
	in := models.UserCreate{}
	var err error
	if in.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if in.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	pw, err := getPassword(a.out)
	if err != nil {
		return err
	}
	in.Password = string(pw)
	if in.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if in.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}

	if err := validate.Struct(in); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	u, err := a.users.Create(ctx, in)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Created user %d (%s)\n", u.ID, u.Email)
	return nil
}

func (a *App) printUser(u models.User) {
	fmt.Fprintf(a.out, "%s <%s>\n", u.FullName, u.Email)
	fmt.Fprintf(a.out, "  id=%d username=%s type=%s active=%t staff=%t\n",
		u.ID, u.Username, u.UserType, u.IsActive, u.IsStaff)
	if u.Phone != "" || u.City != "" {
		fmt.Fprintf(a.out, "  phone=%s city=%s country=%s\n", u.Phone, u.City, u.Country)
	}
	for _, r := range u.Roles {
		fmt.Fprintf(a.out, "  role %s (%s)\n", r.Name, r.Code)
	}
}

// idArg parses a single numeric ID argument, printing usage on failure.
func (a *App) idArg(args []string, usage string) (int, bool) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage:", usage)
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Not a numeric id:", args[0])
		return 0, false
	}
	return id, true
}
