package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/avendano-dev/backoffice/internal/client/models"
	"github.com/avendano-dev/backoffice/internal/client/validate"
)

// Roles dispatches the "roles" subcommands.
func (a *App) Roles(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: roles list [search] | get <id> | create | users <id> | delete <id>")
		return nil
	}

	switch args[0] {
	case "list":
		roles, err := a.roles.List(ctx, models.RoleFilters{Search: strings.Join(args[1:], " ")})
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		for _, r := range roles {
			fmt.Fprintf(a.out, "%4d  %-20s %-20s level=%d users=%d active=%t\n",
				r.ID, r.Code, r.Name, r.Level, r.UsersCount, r.IsActive)
		}
		return nil
	case "get":
		id, ok := a.idArg(args[1:], "roles get <id>")
		if !ok {
			return nil
		}
		r, err := a.roles.Get(ctx, id)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		fmt.Fprintf(a.out, "%s (%s)\n", r.Name, r.Code)
		fmt.Fprintf(a.out, "  %s\n", r.Description)
		fmt.Fprintf(a.out, "  cerbos_role=%s level=%d system=%t active=%t\n",
			r.CerbosRole, r.Level, r.IsSystem, r.IsActive)
		for _, f := range r.Functions {
			fmt.Fprintf(a.out, "  function %s (%s)\n", f.Name, f.Code)
		}
		return nil
	case "create":
		return a.rolesCreate(ctx)
	case "users":
		id, ok := a.idArg(args[1:], "roles users <id>")
		if !ok {
			return nil
		}
		users, err := a.roles.Users(ctx, id)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		for _, u := range users {
			fmt.Fprintf(a.out, "%4d  %-30s %s\n", u.ID, u.Email, u.FullName)
		}
		return nil
	case "delete":
		id, ok := a.idArg(args[1:], "roles delete <id>")
		if !ok {
			return nil
		}
		if err := a.roles.Delete(ctx, id); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		fmt.Fprintf(a.out, "Role %d deleted.\n", id)
		return nil
	default:
		fmt.Fprintln(a.out, "Unknown roles subcommand:", args[0])
		return nil
	}
}

func (a *App) rolesCreate(ctx context.Context) error {
	in := models.RoleCreate{}
	var err error
	if in.Name, err = getSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if in.Code, err = getSimpleText(a.reader, "Code", a.out); err != nil {
		return err
	}
	if in.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return err
	}
	if in.CerbosRole, err = getSimpleText(a.reader, "Cerbos role", a.out); err != nil {
		return err
	}

	if err := validate.Struct(in); err != nil {
		fmt.Fprintln(a.out, err)
		return err
	}

	r, err := a.roles.Create(ctx, in)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Created role %d (%s)\n", r.ID, r.Code)
	return nil
}

// Assignments dispatches the "assignments" subcommands.
func (a *App) Assignments(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: assignments list [user <id>] | assign <user> <role> | unassign <id>")
		return nil
	}

	switch args[0] {
	case "list":
		filters := models.AssignmentFilters{}
		if len(args) == 3 && args[1] == "user" {
			id, ok := a.idArg(args[2:], "assignments list user <id>")
			if !ok {
				return nil
			}
			filters.User = id
		}
		page, err := a.roles.Assignments(ctx, filters)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		for _, as := range page.Results {
			fmt.Fprintf(a.out, "%4d  user=%d role=%d (%s) since=%s active=%t\n",
				as.ID, as.User, as.Role, as.RoleName, as.AssignedAt, as.IsActive)
		}
		fmt.Fprintf(a.out, "%d of %d assignments\n", len(page.Results), page.Count)
		return nil
	case "assign":
		if len(args) != 3 {
			fmt.Fprintln(a.out, "Usage: assignments assign <user-id> <role-id>")
			return nil
		}
		userID, ok := a.idArg(args[1:2], "assignments assign <user-id> <role-id>")
		if !ok {
			return nil
		}
		roleID, ok := a.idArg(args[2:3], "assignments assign <user-id> <role-id>")
		if !ok {
			return nil
		}
		as, err := a.roles.Assign(ctx, models.RoleAssignmentCreate{User: userID, Role: roleID})
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		fmt.Fprintf(a.out, "Assignment %d created (user=%d role=%d)\n", as.ID, as.User, as.Role)
		return nil
	case "unassign":
		id, ok := a.idArg(args[1:], "assignments unassign <id>")
		if !ok {
			return nil
		}
		if err := a.roles.Unassign(ctx, id); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		fmt.Fprintf(a.out, "Assignment %d removed.\n", id)
		return nil
	default:
		fmt.Fprintln(a.out, "Unknown assignments subcommand:", args[0])
		return nil
	}
}
