package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brackup/brackup-cli/internal/api"
	"github.com/brackup/brackup-cli/internal/metrics"
)

func TestGamesListCachesCollection(t *testing.T) {
	client := api.NewMockAPI()
	client.ListGamesFunc = func(ctx context.Context) ([]api.Game, error) {
		return []api.Game{{ID: "g-1", Name: "Rocket League"}, {ID: "g-2", Name: "Valorant"}}, nil
	}
	m := metrics.NewMock()
	store := NewGames(client, m)

	first, err := store.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := store.List(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// The second read is served from the cache, not the network.
	assert.Equal(t, 1, client.CallCount("ListGames"))
	assert.Equal(t, 1, m.CacheHits())
	assert.Equal(t, 1, m.CacheMisses())
}

func TestGamesListForceRefreshBypassesCache(t *testing.T) {
	client := api.NewMockAPI()
	client.ListGamesFunc = func(ctx context.Context) ([]api.Game, error) {
		return []api.Game{{ID: "g-1"}}, nil
	}
	store := NewGames(client, metrics.NewMock())

	_, err := store.List(context.Background(), false)
	require.NoError(t, err)
	_, err = store.List(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, 2, client.CallCount("ListGames"))
}

func TestGamesListFailureLeavesCacheUntouched(t *testing.T) {
	client := api.NewMockAPI()
	client.ListGamesFunc = func(ctx context.Context) ([]api.Game, error) {
		return nil, assert.AnError
	}
	store := NewGames(client, metrics.NewMock())

	_, err := store.List(context.Background(), false)
	require.Error(t, err)
	assert.False(t, store.IsLoading())
	assert.True(t, store.col.empty())
}

func TestGamesCreateAppendsOnce(t *testing.T) {
	client := api.NewMockAPI()
	client.ListGamesFunc = func(ctx context.Context) ([]api.Game, error) {
		return []api.Game{{ID: "g-1"}}, nil
	}
	client.CreateGameFunc = func(ctx context.Context, req api.CreateGameRequest) (*api.Game, error) {
		return &api.Game{ID: "g-2", Name: req.Name}, nil
	}
	store := NewGames(client, metrics.NewMock())

	_, err := store.List(context.Background(), false)
	require.NoError(t, err)
	_, err = store.Create(context.Background(), api.CreateGameRequest{Name: "Chess", TeamSize: 1})
	require.NoError(t, err)

	games, err := store.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "g-2", games[1].ID)
	assert.Equal(t, 1, client.CallCount("ListGames"))
}

func TestGamesUpdateReconcilesInPlace(t *testing.T) {
	client := api.NewMockAPI()
	client.ListGamesFunc = func(ctx context.Context) ([]api.Game, error) {
		return []api.Game{{ID: "g-1", Name: "First"}, {ID: "g-2", Name: "Second"}, {ID: "g-3", Name: "Third"}}, nil
	}
	client.UpdateGameFunc = func(ctx context.Context, id string, req api.UpdateGameRequest) (*api.Game, error) {
		return &api.Game{ID: id, Name: *req.Name}, nil
	}
	store := NewGames(client, metrics.NewMock())
	_, err := store.List(context.Background(), false)
	require.NoError(t, err)

	name := "Renamed"
	_, err = store.Update(context.Background(), "g-2", api.UpdateGameRequest{Name: &name})
	require.NoError(t, err)

	games, err := store.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, games, 3)
	assert.Equal(t, []string{"g-1", "g-2", "g-3"}, []string{games[0].ID, games[1].ID, games[2].ID})
	assert.Equal(t, "Renamed", games[1].Name)
}

func TestGamesDeleteRemovesFromCache(t *testing.T) {
	client := api.NewMockAPI()
	client.ListGamesFunc = func(ctx context.Context) ([]api.Game, error) {
		return []api.Game{{ID: "g-1"}, {ID: "g-2"}}, nil
	}
	store := NewGames(client, metrics.NewMock())
	_, err := store.List(context.Background(), false)
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), "g-1"))

	games, err := store.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "g-2", games[0].ID)
}

func TestGamesDeleteFailureKeepsEntry(t *testing.T) {
	client := api.NewMockAPI()
	client.ListGamesFunc = func(ctx context.Context) ([]api.Game, error) {
		return []api.Game{{ID: "g-1"}}, nil
	}
	client.DeleteGameFunc = func(ctx context.Context, id string) error {
		return assert.AnError
	}
	store := NewGames(client, metrics.NewMock())
	_, err := store.List(context.Background(), false)
	require.NoError(t, err)

	require.Error(t, store.Delete(context.Background(), "g-1"))

	games, err := store.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, games, 1)
}

func TestGamesToggleStatusReconciles(t *testing.T) {
	client := api.NewMockAPI()
	client.ListGamesFunc = func(ctx context.Context) ([]api.Game, error) {
		return []api.Game{{ID: "g-1", IsActive: true}}, nil
	}
	client.ToggleGameStatusFunc = func(ctx context.Context, id string) (*api.Game, error) {
		return &api.Game{ID: id, IsActive: false}, nil
	}
	store := NewGames(client, metrics.NewMock())
	_, err := store.List(context.Background(), false)
	require.NoError(t, err)

	_, err = store.ToggleStatus(context.Background(), "g-1")
	require.NoError(t, err)

	assert.Empty(t, store.ActiveGames())
}

func TestGamesActiveFilter(t *testing.T) {
	client := api.NewMockAPI()
	client.ListGamesFunc = func(ctx context.Context) ([]api.Game, error) {
		return []api.Game{{ID: "g-1", IsActive: true}, {ID: "g-2"}, {ID: "g-3", IsActive: true}}, nil
	}
	store := NewGames(client, metrics.NewMock())
	_, err := store.List(context.Background(), false)
	require.NoError(t, err)

	active := store.ActiveGames()
	require.Len(t, active, 2)
	assert.Equal(t, "g-1", active[0].ID)
	assert.Equal(t, "g-3", active[1].ID)
}

func TestGamesSubscribersSeeEveryChange(t *testing.T) {
	client := api.NewMockAPI()
	client.ListGamesFunc = func(ctx context.Context) ([]api.Game, error) {
		return []api.Game{{ID: "g-1"}}, nil
	}
	client.CreateGameFunc = func(ctx context.Context, req api.CreateGameRequest) (*api.Game, error) {
		return &api.Game{ID: "g-2"}, nil
	}
	store := NewGames(client, metrics.NewMock())

	var snapshots [][]api.Game
	store.Subscribe(func(games []api.Game) {
		snapshots = append(snapshots, games)
	})

	_, err := store.List(context.Background(), false)
	require.NoError(t, err)
	_, err = store.Create(context.Background(), api.CreateGameRequest{Name: "Chess"})
	require.NoError(t, err)

	require.Len(t, snapshots, 2)
	assert.Len(t, snapshots[0], 1)
	assert.Len(t, snapshots[1], 2)
}

func TestGamesGetByIDBypassesCache(t *testing.T) {
	client := api.NewMockAPI()
	store := NewGames(client, metrics.NewMock())

	game, err := store.GetByID(context.Background(), "g-7")
	require.NoError(t, err)
	assert.Equal(t, "g-7", game.ID)

	_, err = store.GetByID(context.Background(), "g-7")
	require.NoError(t, err)
	assert.Equal(t, 2, client.CallCount("GetGame"))
}
