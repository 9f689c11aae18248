package cli

import (
	"context"
	"fmt"
)

// Login prompts for credentials and signs in through the session store.
// On failure the store's last error is shown and the user can simply try
// again. A success replays any command deferred by the guard.
func (a *App) Login(ctx context.Context) {
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

	if err := a.store.Login(ctx, username, password); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", a.store.LastError())
		return
	}

	fmt.Fprintf(a.out, "Signed in as %s\n", a.store.User().Username)
	a.replayPending(ctx)
}
