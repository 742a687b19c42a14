package cache

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/brackup/brackup-cli/internal/api"
	"github.com/brackup/brackup-cli/internal/metrics"
)

// UsersStore mirrors the server's user collection. Roles are authoritative
// only as returned by the server; the store never computes or upgrades
// them.
type UsersStore struct {
	client  api.TournamentAPI
	metrics metrics.Metrics
	col     *collection[api.User]
}

// NewUsers creates a new users store.
func NewUsers(client api.TournamentAPI, m metrics.Metrics) *UsersStore {
	return &UsersStore{
		client:  client,
		metrics: m,
		col:     newCollection(func(u api.User) string { return u.ID }),
	}
}

func (s *UsersStore) List(ctx context.Context, forceRefresh bool) ([]api.User, error) {
	if !forceRefresh && !s.col.empty() {
		s.metrics.IncCacheHits()
		return s.col.snapshot(), nil
	}
	s.metrics.IncCacheMisses()

	s.col.setLoading(true)
	defer s.col.setLoading(false)

	users, err := s.client.ListUsers(ctx)
	if err != nil {
		log.Error("Failed to fetch users", "error", err)
		return nil, err
	}
	s.col.replace(users)
	return s.col.snapshot(), nil
}

func (s *UsersStore) GetByID(ctx context.Context, id string) (*api.User, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	user, err := s.client.GetUser(ctx, id)
	if err != nil {
		log.Error("Failed to fetch user", "userID", id, "error", err)
		return nil, err
	}
	return user, nil
}

func (s *UsersStore) Create(ctx context.Context, req api.CreateUserRequest) (*api.User, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	user, err := s.client.CreateUser(ctx, req)
	if err != nil {
		log.Error("Failed to create user", "error", err)
		return nil, err
	}
	s.col.add(*user)
	return user, nil
}

func (s *UsersStore) Update(ctx context.Context, id string, req api.UpdateUserRequest) (*api.User, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	user, err := s.client.UpdateUser(ctx, id, req)
	if err != nil {
		log.Error("Failed to update user", "userID", id, "error", err)
		return nil, err
	}
	s.col.reconcile(*user)
	return user, nil
}

func (s *UsersStore) Delete(ctx context.Context, id string) error {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	if err := s.client.DeleteUser(ctx, id); err != nil {
		log.Error("Failed to delete user", "userID", id, "error", err)
		return err
	}
	s.col.remove(id)
	return nil
}

// UpdateRole changes a user's role server-side and reconciles the
// returned entity.
func (s *UsersStore) UpdateRole(ctx context.Context, id string, role api.Role) (*api.User, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	user, err := s.client.UpdateUserRole(ctx, id, role)
	if err != nil {
		log.Error("Failed to update user role", "userID", id, "role", role, "error", err)
		return nil, err
	}
	s.col.reconcile(*user)
	return user, nil
}

// Stats fetches a user's aggregate tournament record. Never cached.
func (s *UsersStore) Stats(ctx context.Context, id string) (*api.UserStats, error) {
	s.col.setLoading(true)
	defer s.col.setLoading(false)

	stats, err := s.client.GetUserStats(ctx, id)
	if err != nil {
		log.Error("Failed to fetch user stats", "userID", id, "error", err)
		return nil, err
	}
	return stats, nil
}

func (s *UsersStore) IsLoading() bool {
	return s.col.isLoading()
}

func (s *UsersStore) Subscribe(fn func([]api.User)) {
	s.col.Subscribe(fn)
}
