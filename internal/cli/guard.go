package cli

import (
	"context"
	"fmt"
)

// guard gates protected commands on the session state. While a restore is
// still settling it asks the user to wait. An unauthenticated protected
// command is remembered and replayed after the next successful login, so
// the user lands where they were headed.
func (a *App) guard(ctx context.Context, line string) bool {
	st := a.store.Snapshot()
	if st.Loading {
		fmt.Fprintln(a.out, "Loading session...")
		return false
	}
	if !st.Authenticated() {
		a.pending = line
		fmt.Fprintln(a.out, "Not signed in. Use 'login' first; the command will run afterwards.")
		return false
	}
	return true
}

// replayPending re-runs the command line deferred by the guard, if any.
func (a *App) replayPending(ctx context.Context) {
	if a.pending == "" {
		return
	}
	line := a.pending
	a.pending = ""
	fmt.Fprintf(a.out, "Replaying: %s\n", line)
	a.dispatch(ctx, line)
}
