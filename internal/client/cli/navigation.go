package cli

import (
	"context"
	"fmt"

	"github.com/avendano-dev/backoffice/internal/client/models"
)

// Categories dispatches the "categories" subcommands.
func (a *App) Categories(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: categories list | get <id> | functions <id> | delete <id>")
		return nil
	}

	switch args[0] {
	case "list":
		cats, err := a.navigation.Categories(ctx, nil)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		for _, c := range cats {
			fmt.Fprintf(a.out, "%4d  %-20s %-20s order=%d functions=%d active=%t\n",
				c.ID, c.Code, c.Name, c.Order, c.ActiveFunctionsCount, c.IsActive)
		}
		return nil
	case "get":
		id, ok := a.idArg(args[1:], "categories get <id>")
		if !ok {
			return nil
		}
		c, err := a.navigation.Category(ctx, id)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		fmt.Fprintf(a.out, "%s (%s)\n", c.Name, c.Code)
		fmt.Fprintf(a.out, "  icon=%s color=%s order=%d system=%t active=%t\n",
			c.Icon, c.Color, c.Order, c.IsSystem, c.IsActive)
		return nil
	case "functions":
		id, ok := a.idArg(args[1:], "categories functions <id>")
		if !ok {
			return nil
		}
		fns, err := a.navigation.CategoryFunctions(ctx, id)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		a.printFunctions(fns, 0)
		return nil
	case "delete":
		id, ok := a.idArg(args[1:], "categories delete <id>")
		if !ok {
			return nil
		}
		if err := a.navigation.DeleteCategory(ctx, id); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		fmt.Fprintf(a.out, "Category %d deleted.\n", id)
		return nil
	default:
		fmt.Fprintln(a.out, "Unknown categories subcommand:", args[0])
		return nil
	}
}

// Functions dispatches the "functions" subcommands.
func (a *App) Functions(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return nil
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: functions list | tree | get <id> | delete <id>")
		return nil
	}

	switch args[0] {
	case "list":
		fns, err := a.navigation.Functions(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		a.printFunctions(fns, 0)
		return nil
	case "tree":
		fns, err := a.navigation.FunctionTree(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		a.printFunctions(fns, 0)
		return nil
	case "get":
		id, ok := a.idArg(args[1:], "functions get <id>")
		if !ok {
			return nil
		}
		f, err := a.navigation.Function(ctx, id)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		fmt.Fprintf(a.out, "%s (%s)\n", f.Name, f.Code)
		url := "-"
		if f.URL != nil {
			url = *f.URL
		}
		fmt.Fprintf(a.out, "  url=%s icon=%s category=%s order=%d active=%t\n",
			url, f.Icon, f.CategoryName, f.Order, f.IsActive)
		if f.CerbosResource != "" {
			fmt.Fprintf(a.out, "  cerbos_resource=%s\n", f.CerbosResource)
		}
		return nil
	case "delete":
		id, ok := a.idArg(args[1:], "functions delete <id>")
		if !ok {
			return nil
		}
		if err := a.navigation.DeleteFunction(ctx, id); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		fmt.Fprintf(a.out, "Function %d deleted.\n", id)
		return nil
	default:
		fmt.Fprintln(a.out, "Unknown functions subcommand:", args[0])
		return nil
	}
}

func (a *App) printFunctions(fns []models.Function, depth int) {
	for _, f := range fns {
		url := ""
		if f.URL != nil {
			url = "  " + *f.URL
		}
		for i := 0; i < depth; i++ {
			fmt.Fprint(a.out, "  ")
		}
		fmt.Fprintf(a.out, "%4d  %-25s%s\n", f.ID, f.Name, url)
		a.printFunctions(f.Children, depth+1)
	}
}
