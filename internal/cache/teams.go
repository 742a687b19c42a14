package cache

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/brackup/brackup-cli/internal/api"
	"github.com/brackup/brackup-cli/internal/metrics"
)

// TeamsStore mirrors the server's team collection.
type TeamsStore struct {
	client  api.TournamentAPI
	metrics metrics.Metrics
	col     *collection[api.Team]
}

// NewTeams creates a new teams store.
func NewTeams(client api.TournamentAPI, m metrics.Metrics) *TeamsStore {
	return &TeamsStore{
		client:  client,
		metrics: m,
		col:     newCollection(func(t api.Team) string { return t.ID }),
	}
}

func (s *TeamsStore) List(ctx context.Context, forceRefresh bool) ([]api.Team, error) {
	if !forceRefresh && !s.col.empty() {
		s.metrics.IncCacheHits()
		return s.col.snapshot(), nil
	}
	s.metrics.IncCacheMisses()

	s.col.setLoading(true)
	defer s.col.setLoading(false)

	teams, err := s.client.ListTeams(ctx)
	if err != nil {
		log.Error("Failed to fetch teams", "error", err)
		return nil, err
	}
	s.col.replace(teams)
	return s.col.snapshot(), nil
}

func (s *TeamsStore) GetByID(ctx context.Context, id string) (*api.Team, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	team, err := s.client.GetTeam(ctx, id)
	if err != nil {
		log.Error("Failed to fetch team", "teamID", id, "error", err)
		return nil, err
	}
	return team, nil
}

func (s *TeamsStore) Create(ctx context.Context, req api.CreateTeamRequest) (*api.Team, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	team, err := s.client.CreateTeam(ctx, req)
	if err != nil {
		log.Error("Failed to create team", "error", err)
		return nil, err
	}
	s.col.add(*team)
	return team, nil
}

func (s *TeamsStore) Update(ctx context.Context, id string, req api.UpdateTeamRequest) (*api.Team, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	team, err := s.client.UpdateTeam(ctx, id, req)
	if err != nil {
		log.Error("Failed to update team", "teamID", id, "error", err)
		return nil, err
	}
	s.col.reconcile(*team)
	return team, nil
}

func (s *TeamsStore) Delete(ctx context.Context, id string) error {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	if err := s.client.DeleteTeam(ctx, id); err != nil {
		log.Error("Failed to delete team", "teamID", id, "error", err)
		return err
	}
	s.col.remove(id)
	return nil
}

// AddMember adds a user to the team and reconciles the returned entity.
func (s *TeamsStore) AddMember(ctx context.Context, teamID, userID string) (*api.Team, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	team, err := s.client.AddTeamMember(ctx, teamID, userID)
	if err != nil {
		log.Error("Failed to add team member", "teamID", teamID, "userID", userID, "error", err)
		return nil, err
	}
	s.col.reconcile(*team)
	return team, nil
}

// RemoveMember removes a user from the team and reconciles the returned
// entity.
func (s *TeamsStore) RemoveMember(ctx context.Context, teamID, userID string) (*api.Team, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	team, err := s.client.RemoveTeamMember(ctx, teamID, userID)
	if err != nil {
		log.Error("Failed to remove team member", "teamID", teamID, "userID", userID, "error", err)
		return nil, err
	}
	s.col.reconcile(*team)
	return team, nil
}

// TransferCaptaincy hands the captain role to another member and
// reconciles the returned entity.
func (s *TeamsStore) TransferCaptaincy(ctx context.Context, teamID, newCaptainID string) (*api.Team, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	team, err := s.client.TransferCaptaincy(ctx, teamID, newCaptainID)
	if err != nil {
		log.Error("Failed to transfer captaincy", "teamID", teamID, "error", err)
		return nil, err
	}
	s.col.reconcile(*team)
	return team, nil
}

// TeamsForGame returns the cached teams registered for a game.
func (s *TeamsStore) TeamsForGame(gameID string) []api.Team {
	return s.col.filter(func(t api.Team) bool { return t.GameID == gameID })
}

func (s *TeamsStore) IsLoading() bool {
	return s.col.isLoading()
}

func (s *TeamsStore) Subscribe(fn func([]api.Team)) {
	s.col.Subscribe(fn)
}
