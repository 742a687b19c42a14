package session

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brackup/brackup-cli/internal/api"
	"github.com/brackup/brackup-cli/internal/metrics"
	"github.com/brackup/brackup-cli/internal/storage"
)

type spyNavigator struct {
	homeCalls int
}

func (n *spyNavigator) NavigateHome() { n.homeCalls++ }

func newTestService(client *api.MockAPI) (*Service, *storage.MockStore, *spyNavigator, *metrics.Mock) {
	store := storage.NewMockStore()
	nav := &spyNavigator{}
	m := metrics.NewMock()
	return New(store, client, nav, m), store, nav, m
}

func TestVerifyTokenSetsCurrentUser(t *testing.T) {
	client := api.NewMockAPI()
	client.VerifyFunc = func(ctx context.Context) (*api.User, error) {
		return &api.User{ID: "u-1", DiscordUsername: "alice", Role: api.RoleAdmin}, nil
	}
	svc, store, _, _ := newTestService(client)
	require.NoError(t, store.SetToken("token-abc"))

	ok := svc.VerifyToken(context.Background())

	require.True(t, ok)
	require.NotNil(t, svc.CurrentUser())
	assert.Equal(t, "u-1", svc.CurrentUser().ID)
	assert.True(t, svc.IsAuthenticated())

	// The verified user is also snapshotted for later inspection.
	profile, err := store.Profile()
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "alice", profile.DiscordUsername)
}

func TestVerifyTokenFailureClearsLocalState(t *testing.T) {
	client := api.NewMockAPI()
	client.VerifyFunc = func(ctx context.Context) (*api.User, error) {
		return nil, &api.APIError{Status: http.StatusUnauthorized, Message: api.MsgNotAuthenticated}
	}
	svc, store, _, m := newTestService(client)
	require.NoError(t, store.SetToken("stale"))
	require.NoError(t, store.SetProfile(&api.User{ID: "u-1"}))

	ok := svc.VerifyToken(context.Background())

	assert.False(t, ok)
	assert.Nil(t, svc.CurrentUser())
	assert.False(t, svc.IsAuthenticated())
	assert.Equal(t, 1, m.VerifyFailures())

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
	profile, err := store.Profile()
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestVerifyTokenNetworkFailureAlsoClearsState(t *testing.T) {
	client := api.NewMockAPI()
	client.VerifyFunc = func(ctx context.Context) (*api.User, error) {
		return nil, &api.APIError{Message: "Network error: connection refused"}
	}
	svc, store, _, _ := newTestService(client)
	require.NoError(t, store.SetToken("unreachable"))

	assert.False(t, svc.VerifyToken(context.Background()))

	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestHandleCallbackPersistsVerifiesAndNavigatesHome(t *testing.T) {
	client := api.NewMockAPI()
	client.VerifyFunc = func(ctx context.Context) (*api.User, error) {
		return &api.User{ID: "u-1"}, nil
	}
	svc, store, nav, _ := newTestService(client)

	require.NoError(t, svc.HandleCallback(context.Background(), "fresh-token"))

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", token)
	assert.True(t, svc.IsAuthenticated())
	assert.Equal(t, 1, client.CallCount("Verify"))
	assert.Equal(t, 1, nav.homeCalls)
}

func TestHandleCallbackSurfacesStorageFailure(t *testing.T) {
	client := api.NewMockAPI()
	svc, store, nav, _ := newTestService(client)
	store.SetTokenErr = assert.AnError

	err := svc.HandleCallback(context.Background(), "fresh-token")

	assert.Error(t, err)
	assert.Equal(t, 0, client.CallCount("Verify"))
	assert.Equal(t, 0, nav.homeCalls)
}

func TestLogoutClearsStateEvenWhenRemoteFails(t *testing.T) {
	client := api.NewMockAPI()
	client.VerifyFunc = func(ctx context.Context) (*api.User, error) {
		return &api.User{ID: "u-1"}, nil
	}
	client.LogoutFunc = func(ctx context.Context) error {
		return &api.APIError{Status: http.StatusInternalServerError, Message: api.MsgServerError}
	}
	svc, store, nav, _ := newTestService(client)
	require.NoError(t, store.SetToken("token-abc"))
	require.True(t, svc.VerifyToken(context.Background()))

	svc.Logout(context.Background())

	assert.Nil(t, svc.CurrentUser())
	token, err := store.Token()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Equal(t, 1, nav.homeCalls)
}

func TestRestoreSkipsVerificationWithoutToken(t *testing.T) {
	client := api.NewMockAPI()
	svc, _, _, _ := newTestService(client)

	svc.Restore(context.Background())

	assert.Equal(t, 0, client.CallCount("Verify"))
	assert.False(t, svc.IsAuthenticated())
}

func TestRestoreVerifiesPersistedToken(t *testing.T) {
	client := api.NewMockAPI()
	client.VerifyFunc = func(ctx context.Context) (*api.User, error) {
		return &api.User{ID: "u-1", Role: api.RoleModerator}, nil
	}
	svc, store, _, _ := newTestService(client)
	require.NoError(t, store.SetToken("persisted"))

	svc.Restore(context.Background())

	assert.Equal(t, 1, client.CallCount("Verify"))
	assert.True(t, svc.IsAuthenticated())
	assert.True(t, svc.IsModerator())
}

func TestRefreshUserUpdatesCurrentUser(t *testing.T) {
	client := api.NewMockAPI()
	client.MeFunc = func(ctx context.Context) (*api.User, error) {
		return &api.User{ID: "u-1", DiscordUsername: "renamed"}, nil
	}
	svc, _, _, _ := newTestService(client)

	user, err := svc.RefreshUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "renamed", user.DiscordUsername)
	assert.Equal(t, "renamed", svc.CurrentUser().DiscordUsername)
}

func TestRoleChecks(t *testing.T) {
	tests := []struct {
		role        api.Role
		isAdmin     bool
		isModerator bool
	}{
		{api.RolePlayer, false, false},
		{api.RoleModerator, false, true},
		{api.RoleAdmin, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			client := api.NewMockAPI()
			client.VerifyFunc = func(ctx context.Context) (*api.User, error) {
				return &api.User{ID: "u-1", Role: tt.role}, nil
			}
			svc, _, _, _ := newTestService(client)
			require.True(t, svc.VerifyToken(context.Background()))

			assert.Equal(t, tt.isAdmin, svc.IsAdmin())
			assert.Equal(t, tt.isModerator, svc.IsModerator())
		})
	}
}

func TestRoleChecksWhileUnauthenticated(t *testing.T) {
	svc, _, _, _ := newTestService(api.NewMockAPI())

	assert.False(t, svc.IsAuthenticated())
	assert.False(t, svc.IsAdmin())
	assert.False(t, svc.IsModerator())
}
