// Package session owns the authentication lifecycle of the casefile client.
// The Store is the sole writer of both the in-memory session state and its
// durable mirror; everything else only observes.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nightshift/casefile/internal/api"
	"github.com/nightshift/casefile/internal/logging"
	"github.com/nightshift/casefile/internal/models"
	"github.com/nightshift/casefile/internal/storage"
)

// Fallback messages shown when a failure carries no server-supplied detail.
const (
	msgRefreshFailed = "Unable to refresh user session"
	msgLoginFailed   = "Unexpected error. Please try again."
)

// State is a snapshot of the session. Authenticated is true only when both
// the token and the resolved profile are present; a token alone is not
// enough.
type State struct {
	Token   string
	User    *models.User
	Loading bool
	LastErr string
}

// Authenticated reports whether the snapshot represents a usable session.
func (s State) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Store holds the session state, persists it through a storage.Repository,
// and notifies subscribers after every transition.
//
// Overlapping Login/RefreshUser calls are not mutually excluded beyond the
// state mutex; the last writer wins. Acceptable for a single interactive
// user, not a guarantee for concurrent callers.
type Store struct {
	auth api.AuthAPI
	repo storage.Repository
	log  logging.Logger

	mu    sync.Mutex
	state State
	subs  []func(State)
}

func NewStore(auth api.AuthAPI, repo storage.Repository, log logging.Logger) *Store {
	return &Store{auth: auth, repo: repo, log: log}
}

// Subscribe registers fn to be called with a snapshot after every state
// transition. Callbacks run outside the store's lock, on the mutating
// goroutine.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Authenticated() bool { return s.Snapshot().Authenticated() }
func (s *Store) Loading() bool       { return s.Snapshot().Loading }
func (s *Store) Token() string       { return s.Snapshot().Token }
func (s *Store) User() *models.User  { return s.Snapshot().User }
func (s *Store) LastError() string   { return s.Snapshot().LastErr }

// mutate applies fn under the lock, then notifies subscribers with the
// resulting snapshot.
func (s *Store) mutate(fn func(st *State)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.state
	subs := make([]func(State), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Restore bootstraps the session from durable storage.
//
// No stored token settles the session unauthenticated. A stored token with
// a parsable cached profile occupies the authenticated state immediately,
// then re-validates against the server: success replaces the profile with
// the fresh one and rewrites storage; failure clears everything and records
// the failure message. A malformed cached profile clears storage and state
// silently. Only storage-level failures are returned.
func (s *Store) Restore(ctx context.Context) error {
	s.mutate(func(st *State) { st.Loading = true })
	defer s.mutate(func(st *State) { st.Loading = false })

	tok, err := s.repo.Get(ctx, storage.KeyToken)
	if err != nil {
		return err
	}
	if len(tok) == 0 {
		return nil
	}

	cached, err := s.repo.Get(ctx, storage.KeyProfile)
	if err != nil {
		return err
	}
	if len(cached) > 0 {
		var u models.User
		if err := json.Unmarshal(cached, &u); err != nil {
			// Unreadable local cache: reset without surfacing a message.
			s.log.Warn(ctx, "discarding malformed cached profile", "error", err)
			if err := s.repo.ClearSession(ctx); err != nil {
				return err
			}
			s.mutate(func(st *State) { st.Token, st.User = "", nil })
			return nil
		}
		// Occupy optimistically from cache while the token is re-validated.
		s.mutate(func(st *State) {
			st.Token = string(tok)
			st.User = &u
		})
	}

	if err := s.loadProfile(ctx, string(tok)); err != nil {
		s.log.Info(ctx, "stored token rejected, session cleared", "error", err)
	}
	return nil
}

// Login exchanges credentials for a token and immediately resolves the
// profile behind it. Only when both calls succeed does the session become
// authenticated and the pair get persisted. Any failure is recorded as the
// last error and returned so the caller can react.
func (s *Store) Login(ctx context.Context, username, password string) error {
	s.mutate(func(st *State) {
		st.Loading = true
		st.LastErr = ""
	})
	defer s.mutate(func(st *State) { st.Loading = false })

	resp, err := s.auth.Login(ctx, username, password)
	if err != nil {
		s.mutate(func(st *State) { st.LastErr = messageOrDefault(err, msgLoginFailed) })
		return err
	}

	return s.loadProfile(ctx, resp.AccessToken)
}

// Logout erases the durable pair and the in-memory session synchronously.
// No network call is made.
func (s *Store) Logout(ctx context.Context) error {
	err := s.repo.ClearSession(ctx)
	s.mutate(func(st *State) {
		st.Token, st.User = "", nil
	})
	return err
}

// RefreshUser re-fetches the profile for the current token. On failure the
// session is cleared exactly like a failed bootstrap re-validation. With no
// current token this is a no-op.
func (s *Store) RefreshUser(ctx context.Context) error {
	tok := s.Token()
	if tok == "" {
		return nil
	}

	s.mutate(func(st *State) {
		st.Loading = true
		st.LastErr = ""
	})
	defer s.mutate(func(st *State) { st.Loading = false })

	return s.loadProfile(ctx, tok)
}

// TokenExpiry returns the exp claim of the current bearer token when it
// happens to be a parsable JWT, and the zero time otherwise. Display only;
// the token is otherwise treated as opaque and never gated on locally.
func (s *Store) TokenExpiry() time.Time {
	tok := s.Token()
	if tok == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// loadProfile resolves the profile for token. Success persists the pair and
// occupies the authenticated state; failure clears both storage and state
// and records the failure message.
func (s *Store) loadProfile(ctx context.Context, token string) error {
	u, err := s.auth.CurrentUser(ctx, token)
	if err != nil {
		if clearErr := s.repo.ClearSession(ctx); clearErr != nil {
			s.log.Error(ctx, "clearing session storage failed", "error", clearErr)
		}
		s.mutate(func(st *State) {
			st.Token, st.User = "", nil
			st.LastErr = messageOrDefault(err, msgRefreshFailed)
		})
		return err
	}

	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.repo.SaveSession(ctx, token, raw); err != nil {
		return err
	}

	s.mutate(func(st *State) {
		st.Token = token
		st.User = u
	})
	return nil
}

// messageOrDefault prefers the API error's message and falls back to a
// generic one for transport-level failures without a typed error.
func messageOrDefault(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return fallback
}
