package cache

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/brackup/brackup-cli/internal/api"
	"github.com/brackup/brackup-cli/internal/metrics"
)

// TournamentsStore mirrors the server's tournament collection and exposes
// the derived status views. Status transitions are entirely server-driven;
// the store only filters what the server last returned.
type TournamentsStore struct {
	client  api.TournamentAPI
	metrics metrics.Metrics
	col     *collection[api.Tournament]
}

// NewTournaments creates a new tournaments store.
func NewTournaments(client api.TournamentAPI, m metrics.Metrics) *TournamentsStore {
	return &TournamentsStore{
		client:  client,
		metrics: m,
		col:     newCollection(func(t api.Tournament) string { return t.ID }),
	}
}

func (s *TournamentsStore) List(ctx context.Context, forceRefresh bool) ([]api.Tournament, error) {
	if !forceRefresh && !s.col.empty() {
		s.metrics.IncCacheHits()
		return s.col.snapshot(), nil
	}
	s.metrics.IncCacheMisses()

	s.col.setLoading(true)
	defer s.col.setLoading(false)

	tournaments, err := s.client.ListTournaments(ctx)
	if err != nil {
		log.Error("Failed to fetch tournaments", "error", err)
		return nil, err
	}
	s.col.replace(tournaments)
	return s.col.snapshot(), nil
}

func (s *TournamentsStore) GetByID(ctx context.Context, id string) (*api.Tournament, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	tournament, err := s.client.GetTournament(ctx, id)
	if err != nil {
		log.Error("Failed to fetch tournament", "tournamentID", id, "error", err)
		return nil, err
	}
	return tournament, nil
}

func (s *TournamentsStore) Create(ctx context.Context, req api.CreateTournamentRequest) (*api.Tournament, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	tournament, err := s.client.CreateTournament(ctx, req)
	if err != nil {
		log.Error("Failed to create tournament", "error", err)
		return nil, err
	}
	s.col.add(*tournament)
	return tournament, nil
}

func (s *TournamentsStore) Update(ctx context.Context, id string, req api.UpdateTournamentRequest) (*api.Tournament, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	tournament, err := s.client.UpdateTournament(ctx, id, req)
	if err != nil {
		log.Error("Failed to update tournament", "tournamentID", id, "error", err)
		return nil, err
	}
	s.col.reconcile(*tournament)
	return tournament, nil
}

func (s *TournamentsStore) Delete(ctx context.Context, id string) error {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	if err := s.client.DeleteTournament(ctx, id); err != nil {
		log.Error("Failed to delete tournament", "tournamentID", id, "error", err)
		return err
	}
	s.col.remove(id)
	return nil
}

// Register enters the current user (optionally with a team) into a
// tournament. Participants are not part of the tournament collection, so
// nothing is reconciled.
func (s *TournamentsStore) Register(ctx context.Context, id string, req api.RegisterRequest) (*api.Participant, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	participant, err := s.client.RegisterForTournament(ctx, id, req)
	if err != nil {
		log.Error("Failed to register for tournament", "tournamentID", id, "error", err)
		return nil, err
	}
	return participant, nil
}

func (s *TournamentsStore) Participants(ctx context.Context, id string) ([]api.Participant, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	participants, err := s.client.GetParticipants(ctx, id)
	if err != nil {
		log.Error("Failed to fetch participants", "tournamentID", id, "error", err)
		return nil, err
	}
	return participants, nil
}

// Start asks the server to generate brackets and begin the tournament,
// then reconciles the updated entity.
func (s *TournamentsStore) Start(ctx context.Context, id string) (*api.Tournament, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	tournament, err := s.client.StartTournament(ctx, id)
	if err != nil {
		log.Error("Failed to start tournament", "tournamentID", id, "error", err)
		return nil, err
	}
	s.col.reconcile(*tournament)
	return tournament, nil
}

func (s *TournamentsStore) CheckIn(ctx context.Context, id string) (*api.Participant, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	participant, err := s.client.CheckIn(ctx, id)
	if err != nil {
		log.Error("Failed to check in", "tournamentID", id, "error", err)
		return nil, err
	}
	return participant, nil
}

// Active returns the cached tournaments open for registration or in play.
func (s *TournamentsStore) Active() []api.Tournament {
	return s.col.filter(func(t api.Tournament) bool {
		return t.Status == api.TournamentStatusRegistration || t.Status == api.TournamentStatusOngoing
	})
}

// Upcoming returns the cached tournaments still open for registration.
func (s *TournamentsStore) Upcoming() []api.Tournament {
	return s.col.filter(func(t api.Tournament) bool {
		return t.Status == api.TournamentStatusRegistration
	})
}

// Completed returns the cached tournaments that have finished.
func (s *TournamentsStore) Completed() []api.Tournament {
	return s.col.filter(func(t api.Tournament) bool {
		return t.Status == api.TournamentStatusCompleted
	})
}

func (s *TournamentsStore) IsLoading() bool {
	return s.col.isLoading()
}

func (s *TournamentsStore) Subscribe(fn func([]api.Tournament)) {
	s.col.Subscribe(fn)
}
