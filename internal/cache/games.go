package cache

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/brackup/brackup-cli/internal/api"
	"github.com/brackup/brackup-cli/internal/metrics"
)

// GamesStore mirrors the server's game collection.
type GamesStore struct {
	client  api.TournamentAPI
	metrics metrics.Metrics
	col     *collection[api.Game]
}

// NewGames creates a new games store.
func NewGames(client api.TournamentAPI, m metrics.Metrics) *GamesStore {
	return &GamesStore{
		client:  client,
		metrics: m,
		col:     newCollection(func(g api.Game) string { return g.ID }),
	}
}

// List returns the cached collection when it is non-empty and no refresh
// is forced; otherwise it fetches and replaces the whole collection.
func (s *GamesStore) List(ctx context.Context, forceRefresh bool) ([]api.Game, error) {
	if !forceRefresh && !s.col.empty() {
		s.metrics.IncCacheHits()
		return s.col.snapshot(), nil
	}
	s.metrics.IncCacheMisses()

	s.col.setLoading(true)
	defer s.col.setLoading(false)

	games, err := s.client.ListGames(ctx)
	if err != nil {
		log.Error("Failed to fetch games", "error", err)
		return nil, err
	}
	s.col.replace(games)
	return s.col.snapshot(), nil
}

// GetByID always fetches fresh from the server, bypassing the cache.
func (s *GamesStore) GetByID(ctx context.Context, id string) (*api.Game, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	game, err := s.client.GetGame(ctx, id)
	if err != nil {
		log.Error("Failed to fetch game", "gameID", id, "error", err)
		return nil, err
	}
	return game, nil
}

func (s *GamesStore) Create(ctx context.Context, req api.CreateGameRequest) (*api.Game, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	game, err := s.client.CreateGame(ctx, req)
	if err != nil {
		log.Error("Failed to create game", "error", err)
		return nil, err
	}
	s.col.add(*game)
	return game, nil
}

func (s *GamesStore) Update(ctx context.Context, id string, req api.UpdateGameRequest) (*api.Game, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	game, err := s.client.UpdateGame(ctx, id, req)
	if err != nil {
		log.Error("Failed to update game", "gameID", id, "error", err)
		return nil, err
	}
	s.col.reconcile(*game)
	return game, nil
}

func (s *GamesStore) Delete(ctx context.Context, id string) error {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	if err := s.client.DeleteGame(ctx, id); err != nil {
		log.Error("Failed to delete game", "gameID", id, "error", err)
		return err
	}
	s.col.remove(id)
	return nil
}

// ToggleStatus flips the game's active flag server-side and reconciles
// the returned entity.
func (s *GamesStore) ToggleStatus(ctx context.Context, id string) (*api.Game, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	game, err := s.client.ToggleGameStatus(ctx, id)
	if err != nil {
		log.Error("Failed to toggle game status", "gameID", id, "error", err)
		return nil, err
	}
	s.col.reconcile(*game)
	return game, nil
}

// ActiveGames returns the cached games currently flagged active.
func (s *GamesStore) ActiveGames() []api.Game {
	return s.col.filter(func(g api.Game) bool { return g.IsActive })
}

// IsLoading reports whether a network operation is in flight.
func (s *GamesStore) IsLoading() bool {
	return s.col.isLoading()
}

// Subscribe registers a synchronous callback for collection changes.
func (s *GamesStore) Subscribe(fn func([]api.Game)) {
	s.col.Subscribe(fn)
}
