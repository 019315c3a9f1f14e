package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/avendano-dev/backoffice/internal/client/models"
)

// Menu prints the permission-filtered navigation tree for the current user.
func (a *App) Menu(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}

	nodes := a.menu.Menu()
	if nodes == nil {
		loaded, err := a.menu.LoadMenu(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Cannot load menu:", err)
			return err
		}
		nodes = loaded
	}

	if len(nodes) == 0 {
		fmt.Fprintln(a.out, "No menu entries available.")
		return nil
	}
	a.printMenuNodes(nodes, 0)
	return nil
}

func (a *App) printMenuNodes(nodes []models.MenuNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		label := n.Label
		if n.Route != "" {
			label = fmt.Sprintf("%s  (%s)", label, n.Route)
		}
		fmt.Fprintf(a.out, "%s- %s\n", indent, label)
		a.printMenuNodes(n.Children, depth+1)
	}
}

// Can checks a single "resource.action" permission against the cached
// snapshot, loading the snapshot on first use.
func (a *App) Can(ctx context.Context, args []string) error {
	if !a.requireAuth() {
		return nil
	}
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: can <resource.action>")
		return nil
	}

	if a.menu.Permissions() == nil {
		if _, err := a.menu.LoadPermissions(ctx); err != nil {
			fmt.Fprintln(a.out, "Cannot load permissions:", err)
			return err
		}
	}

	if a.menu.HasPermission(args[0]) {
		fmt.Fprintln(a.out, "allowed")
	} else {
		fmt.Fprintln(a.out, "denied")
	}
	return nil
}
