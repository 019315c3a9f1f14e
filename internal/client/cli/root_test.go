package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoot_DispatchAndExit(t *testing.T) {
	app, out := newTestApp(t, &fakeAuthAPI{}, &fakeAccountAPI{}, "bogus\nhelp\nexit\n")

	app.Root(context.Background())

	got := out.String()
	require.Contains(t, got, "Unknown command: bogus")
	require.Contains(t, got, "Available commands: login, quote, exit")
	require.Contains(t, got, "Bye!")
}

func TestRoot_ExitsOnEOF(t *testing.T) {
	app, out := newTestApp(t, &fakeAuthAPI{}, &fakeAccountAPI{}, "sidebar\n")

	app.Root(context.Background())

	require.Contains(t, out.String(), "Sidebar collapsed: false")
}
