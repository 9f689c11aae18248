package cli

import (
	"context"
	"fmt"
)

// Logout clears the session locally; no server call is involved.
func (a *App) Logout(ctx context.Context) {
	if err := a.store.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "error clearing stored session: %v\n", err)
	}
	a.caseList = nil
	fmt.Fprintln(a.out, "Signed out")
}
