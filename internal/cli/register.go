package cli

import (
	"context"
	"fmt"
)

// Register prompts for account details and creates the account. It does
// not sign the user in; the server expects a separate login afterwards.
func (a *App) Register(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	u, err := a.auth.Register(ctx, email, username, password)
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Account created for %s. Use 'login' to sign in.\n", u.Username)
}
