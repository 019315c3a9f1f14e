package cli

import (
	"context"
	"fmt"

	"github.com/avendano-dev/backoffice/internal/client/storage"
)

// Sidebar shows or sets the persisted sidebar-collapsed preference.
// The value survives restarts via the local state store.
func (a *App) Sidebar(ctx context.Context, args []string) error {
	if len(args) == 0 {
		collapsed, err := a.sidebarCollapsed(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return err
		}
		fmt.Fprintf(a.out, "Sidebar collapsed: %t\n", collapsed)
		return nil
	}

	var value string
	switch args[0] {
	case "on":
		value = "1"
	case "off":
		value = "0"
	default:
		fmt.Fprintln(a.out, "Usage: sidebar [on|off]")
		return nil
	}

	if err := a.store.Set(ctx, storage.KeySidebarCollapsed, []byte(value)); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return err
	}
	fmt.Fprintf(a.out, "Sidebar collapsed: %t\n", value == "1")
	return nil
}

func (a *App) sidebarCollapsed(ctx context.Context) (bool, error) {
	v, err := a.store.Get(ctx, storage.KeySidebarCollapsed)
	if err != nil {
		return false, err
	}
	return string(v) == "1", nil
}
