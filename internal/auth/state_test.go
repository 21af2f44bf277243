package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiesbnb/internal/models/db_models"
	"foodiesbnb/pkg/sessioncache"
	"foodiesbnb/pkg/utils"
)

type stubResolver struct {
	resolve func(ctx context.Context, identityID string) (*db_models.Profile, error)
}

func (s *stubResolver) Resolve(ctx context.Context, identityID string) (*db_models.Profile, error) {
	return s.resolve(ctx, identityID)
}

func okResolver(profile *db_models.Profile) *stubResolver {
	return &stubResolver{resolve: func(context.Context, string) (*db_models.Profile, error) {
		return profile, nil
	}}
}

func newTestState(resolver ProfileResolver) (*State, sessioncache.Store) {
	cache := sessioncache.NewMemoryStore()
	return NewState(resolver, cache, time.Minute), cache
}

func TestSignInPublishesAuthenticatedThenProfiled(t *testing.T) {
	profile := &db_models.Profile{FullName: "María Pérez", UserType: db_models.UserTypeCreator}
	state, cache := newTestState(okResolver(profile))

	var phases []Phase
	unsubscribe := state.Subscribe(func(snap Snapshot) {
		phases = append(phases, snap.Phase)
	})
	defer unsubscribe()

	require.NoError(t, state.SignIn(context.Background(), "user-1", "maria@example.com", "tok"))

	assert.Equal(t, []Phase{PhaseInitializing, PhaseAuthenticated, PhaseProfiled}, phases)

	snap := state.Current()
	assert.Equal(t, PhaseProfiled, snap.Phase)
	assert.Equal(t, "user-1", snap.UserID)
	assert.Same(t, profile, snap.Profile)

	cached, ok := cache.Get("tok")
	require.True(t, ok)
	assert.Equal(t, "creator", cached.UserType)
	assert.Equal(t, "María Pérez", cached.FullName)
}

func TestMissingProfileStaysAuthenticated(t *testing.T) {
	resolver := &stubResolver{resolve: func(context.Context, string) (*db_models.Profile, error) {
		return nil, utils.ErrProfileNotFound
	}}
	state, _ := newTestState(resolver)

	require.NoError(t, state.SignIn(context.Background(), "user-1", "maria@example.com", "tok"))

	snap := state.Current()
	assert.Equal(t, PhaseAuthenticated, snap.Phase)
	assert.Nil(t, snap.Profile)
}

func TestResolverFailureReportsErrorAndStaysAuthenticated(t *testing.T) {
	resolver := &stubResolver{resolve: func(context.Context, string) (*db_models.Profile, error) {
		return nil, utils.ErrDatabaseError
	}}
	state, _ := newTestState(resolver)

	err := state.SignIn(context.Background(), "user-1", "maria@example.com", "tok")
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	snap := state.Current()
	assert.Equal(t, PhaseAuthenticated, snap.Phase)
	assert.Equal(t, "user-1", snap.UserID)
	assert.Nil(t, snap.Profile)
}

func TestSignOutClearsSessionAndProfileFromAnyPhase(t *testing.T) {
	profile := &db_models.Profile{FullName: "María Pérez"}
	state, cache := newTestState(okResolver(profile))

	require.NoError(t, state.SignIn(context.Background(), "user-1", "maria@example.com", "tok"))
	state.SignOut()

	snap := state.Current()
	assert.Equal(t, PhaseUnauthenticated, snap.Phase)
	assert.Empty(t, snap.UserID)
	assert.Empty(t, snap.Token)
	assert.Nil(t, snap.Profile)

	_, ok := cache.Get("tok")
	assert.False(t, ok)
}

func TestSignOutDuringResolutionDoesNotResurrect(t *testing.T) {
	var state *State
	resolver := &stubResolver{resolve: func(context.Context, string) (*db_models.Profile, error) {
		// Sign-out races the in-flight resolution.
		state.SignOut()
		return &db_models.Profile{FullName: "María Pérez"}, nil
	}}
	state, _ = newTestState(resolver)

	require.NoError(t, state.SignIn(context.Background(), "user-1", "maria@example.com", "tok"))

	snap := state.Current()
	assert.Equal(t, PhaseUnauthenticated, snap.Phase)
	assert.Nil(t, snap.Profile)
}

func TestInitializeWithoutSessionResolvesToSignedOut(t *testing.T) {
	state, _ := newTestState(okResolver(&db_models.Profile{}))

	state.Initialize(context.Background(), "", "", "")

	assert.Equal(t, PhaseUnauthenticated, state.Current().Phase)
}

func TestSubscribersObserveOnlyLatestSnapshot(t *testing.T) {
	profile := &db_models.Profile{FullName: "María Pérez"}
	state, _ := newTestState(okResolver(profile))

	var snaps []Snapshot
	state.Subscribe(func(snap Snapshot) {
		snaps = append(snaps, snap)
		assert.Equal(t, state.snap, snap)
	})

	require.NoError(t, state.SignIn(context.Background(), "user-1", "maria@example.com", "tok"))
	state.SignOut()

	require.Len(t, snaps, 4)
	assert.Equal(t, PhaseUnauthenticated, snaps[3].Phase)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	state, _ := newTestState(okResolver(&db_models.Profile{}))

	calls := 0
	unsubscribe := state.Subscribe(func(Snapshot) { calls++ })
	require.Equal(t, 1, calls)

	unsubscribe()
	state.SignOut()
	assert.Equal(t, 1, calls)
}

func TestRefreshProfilePicksUpNewData(t *testing.T) {
	current := &db_models.Profile{FullName: "María Pérez"}
	resolver := &stubResolver{resolve: func(context.Context, string) (*db_models.Profile, error) {
		return current, nil
	}}
	state, _ := newTestState(resolver)

	require.NoError(t, state.SignIn(context.Background(), "user-1", "maria@example.com", "tok"))

	current = &db_models.Profile{FullName: "María P. García"}
	require.NoError(t, state.RefreshProfile(context.Background()))

	assert.Equal(t, "María P. García", state.Current().Profile.FullName)
}

func TestRefreshProfileNoopWhenSignedOut(t *testing.T) {
	called := false
	resolver := &stubResolver{resolve: func(context.Context, string) (*db_models.Profile, error) {
		called = true
		return nil, nil
	}}
	state, _ := newTestState(resolver)
	state.SignOut()

	require.NoError(t, state.RefreshProfile(context.Background()))
	assert.False(t, called)
}
