package cli

import (
	"context"
	"fmt"
)

// whoami prints the cached profile plus the token expiry when the bearer
// token happens to be a readable JWT.
func (a *App) whoami(ctx context.Context) {
	u := a.store.User()
	fmt.Fprintf(a.out, "%s <%s> (id %s)\n", u.Username, u.Email, u.ID)
	if !u.IsActive {
		fmt.Fprintln(a.out, "Account is deactivated")
	}
	if exp := a.store.TokenExpiry(); !exp.IsZero() {
		fmt.Fprintf(a.out, "Token expires %s\n", exp.Format("2006-01-02 15:04:05 MST"))
	}
}

// refresh re-validates the current token against the server. A rejection
// clears the session, so the user is told to sign in again.
func (a *App) refresh(ctx context.Context) {
	if err := a.store.RefreshUser(ctx); err != nil {
		fmt.Fprintf(a.out, "Session expired: %s\n", a.store.LastError())
		return
	}
	fmt.Fprintf(a.out, "Profile refreshed for %s\n", a.store.User().Username)
}
