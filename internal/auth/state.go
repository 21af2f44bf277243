package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"foodiesbnb/internal/models/db_models"
	"foodiesbnb/pkg/sessioncache"
	"foodiesbnb/pkg/utils"
)

type Phase int

const (
	PhaseInitializing Phase = iota
	PhaseUnauthenticated
	PhaseAuthenticated // signed in, profile not resolved yet
	PhaseProfiled
)

// Snapshot is the published view of the session/profile state.
type Snapshot struct {
	Phase   Phase
	UserID  string
	Email   string
	Token   string
	Profile *db_models.Profile
}

// ProfileResolver maps an identity id to its profile row. Not-found must be
// reported as utils.ErrProfileNotFound, distinct from backend failures.
type ProfileResolver interface {
	Resolve(ctx context.Context, identityID string) (*db_models.Profile, error)
}

// State holds the current session and profile and notifies subscribers on
// every transition. It is injected by reference instead of living in a
// global; the single writer is whoever drives the auth flow. Observers are
// invoked while the lock is held, so they observe strictly the latest
// snapshot and must not call back into State.
type State struct {
	mu       sync.Mutex
	snap     Snapshot
	subs     map[int]func(Snapshot)
	nextSub  int
	resolver ProfileResolver
	cache    sessioncache.Store
	cacheTTL time.Duration
}

func NewState(resolver ProfileResolver, cache sessioncache.Store, cacheTTL time.Duration) *State {
	return &State{
		snap:     Snapshot{Phase: PhaseInitializing},
		subs:     make(map[int]func(Snapshot)),
		resolver: resolver,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (s *State) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Subscribe registers a handler for every transition and returns an
// unsubscribe func. The handler is immediately called with the current
// snapshot.
func (s *State) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	fn(s.snap)
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *State) publishLocked(snap Snapshot) {
	s.snap = snap
	for _, fn := range s.subs {
		fn(snap)
	}
}

// Initialize completes the first session probe. A nil session (including a
// failed probe upstream) resolves to signed-out rather than raising.
func (s *State) Initialize(ctx context.Context, userID, email, token string) {
	if userID == "" {
		s.mu.Lock()
		s.publishLocked(Snapshot{Phase: PhaseUnauthenticated})
		s.mu.Unlock()
		return
	}
	s.SignIn(ctx, userID, email, token)
}

// SignIn publishes Authenticated before profile resolution completes, then
// Profiled once the resolver answers. A missing profile leaves the session
// authenticated but unprofiled; a transient resolver failure does the same
// and reports the error.
func (s *State) SignIn(ctx context.Context, userID, email, token string) error {
	s.mu.Lock()
	s.publishLocked(Snapshot{
		Phase:  PhaseAuthenticated,
		UserID: userID,
		Email:  email,
		Token:  token,
	})
	s.mu.Unlock()

	s.cache.Set(token, sessioncache.Snapshot{UserID: userID, Email: email}, s.cacheTTL)

	return s.resolveProfile(ctx)
}

func (s *State) resolveProfile(ctx context.Context) error {
	s.mu.Lock()
	cur := s.snap
	s.mu.Unlock()
	if cur.UserID == "" {
		return nil
	}

	profile, err := s.resolver.Resolve(ctx, cur.UserID)
	if err != nil {
		if errors.Is(err, utils.ErrProfileNotFound) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	// A sign-out may have raced the resolution; never resurrect a session.
	if s.snap.UserID != cur.UserID {
		s.mu.Unlock()
		return nil
	}
	next := s.snap
	next.Phase = PhaseProfiled
	next.Profile = profile
	s.publishLocked(next)
	token := next.Token
	s.mu.Unlock()

	s.cache.Set(token, sessioncache.Snapshot{
		UserID:   cur.UserID,
		Email:    cur.Email,
		UserType: string(profile.UserType),
		FullName: profile.FullName,
	}, s.cacheTTL)
	return nil
}

// RefreshProfile re-runs resolution for the current identity; no-op when
// unauthenticated.
func (s *State) RefreshProfile(ctx context.Context) error {
	return s.resolveProfile(ctx)
}

// SignOut invalidates the cached session first, then clears local state
// synchronously. Both session and profile are gone afterwards regardless of
// the prior phase.
func (s *State) SignOut() {
	s.mu.Lock()
	token := s.snap.Token
	s.mu.Unlock()
	if token != "" {
		s.cache.Invalidate(token)
	}

	s.mu.Lock()
	s.publishLocked(Snapshot{Phase: PhaseUnauthenticated})
	s.mu.Unlock()
}
