package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/avendano-dev/backoffice/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and establishes a session. On success the
// menu tree and permission snapshot are fetched immediately so the console
// is usable without extra round trips.
//
// The password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid email or password.")
		} else {
			fmt.Fprintln(a.out, "Login failed:", err)
		}
		return err
	}

	fmt.Fprintln(a.out, "Logged in.")
	a.reloadMenu(ctx)
	return nil
}

// Logout tears down the session. Local state is always cleared, even when
// the server-side revocation call fails.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout:", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Refresh forces a token refresh outside of the usual 401-driven path.
func (a *App) Refresh(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}
	if err := a.session.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, "Refresh failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Token refreshed.")
	return nil
}

// Whoami prints the locally cached user plus whatever the access token
// claims reveal about itself.
func (a *App) Whoami(ctx context.Context) error {
	if !a.requireAuth() {
		return nil
	}
	u := a.session.CurrentUser()
	if u == nil {
		// Token restored without a cached profile; fetch it.
		fetched, err := a.account.Me(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Cannot resolve current user:", err)
			return err
		}
		u = fetched
	}

	fmt.Fprintf(a.out, "%s <%s>\n", u.FullName, u.Email)
	fmt.Fprintf(a.out, "  id=%d username=%s active=%t superuser=%t staff=%t\n",
		u.ID, u.Username, u.IsActive, u.IsSuperuser, u.IsStaff)
	for _, r := range u.Roles {
		fmt.Fprintf(a.out, "  role %s (%s)\n", r.Name, r.Code)
	}

	if sub, exp, ok := a.session.TokenClaims(); ok {
		fmt.Fprintf(a.out, "  token subject=%s expires=%s\n", sub, exp.Format("2006-01-02 15:04:05"))
	}
	return nil
}
