package cache

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/brackup/brackup-cli/internal/api"
	"github.com/brackup/brackup-cli/internal/metrics"
)

// MatchesService is the read model for brackets and matches. Unlike the
// other stores it holds no collection: brackets belong to a tournament and
// every read fetches fresh, so only the loading flag is tracked.
type MatchesService struct {
	client  api.TournamentAPI
	metrics metrics.Metrics

	mu      sync.RWMutex
	loading bool
}

// NewMatches creates a new matches service.
func NewMatches(client api.TournamentAPI, m metrics.Metrics) *MatchesService {
	return &MatchesService{client: client, metrics: m}
}

// Brackets fetches the server-computed brackets for a tournament.
func (s *MatchesService) Brackets(ctx context.Context, tournamentID string) ([]api.Bracket, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	brackets, err := s.client.GetBrackets(ctx, tournamentID)
	if err != nil {
		log.Error("Failed to fetch brackets", "tournamentID", tournamentID, "error", err)
		return nil, err
	}
	return brackets, nil
}

// TournamentMatches fetches all matches of a tournament.
func (s *MatchesService) TournamentMatches(ctx context.Context, tournamentID string) ([]api.Match, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	matches, err := s.client.GetTournamentMatches(ctx, tournamentID)
	if err != nil {
		log.Error("Failed to fetch matches", "tournamentID", tournamentID, "error", err)
		return nil, err
	}
	return matches, nil
}

func (s *MatchesService) GetByID(ctx context.Context, id string) (*api.Match, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	match, err := s.client.GetMatch(ctx, id)
	if err != nil {
		log.Error("Failed to fetch match", "matchID", id, "error", err)
		return nil, err
	}
	return match, nil
}

// UpdateScore submits a score for a match. The winner, next-match
// propagation and status transitions stay server-side.
func (s *MatchesService) UpdateScore(ctx context.Context, id string, req api.UpdateScoreRequest) (*api.Match, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	match, err := s.client.UpdateMatchScore(ctx, id, req)
	if err != nil {
		log.Error("Failed to update match score", "matchID", id, "error", err)
		return nil, err
	}
	return match, nil
}

func (s *MatchesService) Start(ctx context.Context, id string) (*api.Match, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	match, err := s.client.StartMatch(ctx, id)
	if err != nil {
		log.Error("Failed to start match", "matchID", id, "error", err)
		return nil, err
	}
	return match, nil
}

func (s *MatchesService) Complete(ctx context.Context, id string) (*api.Match, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	match, err := s.client.CompleteMatch(ctx, id)
	if err != nil {
		log.Error("Failed to complete match", "matchID", id, "error", err)
		return nil, err
	}
	return match, nil
}

func (s *MatchesService) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *MatchesService) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
}
