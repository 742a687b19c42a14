package storage

import "github.com/brackup/brackup-cli/internal/api"

// Store is the client-side persistence layer: it holds the bearer token and
// a snapshot of the last verified user across process restarts.
// This allows for mock implementations to be used in tests.
type Store interface {
	Token() (string, error)
	SetToken(token string) error
	ClearToken() error
	Profile() (*api.User, error)
	SetProfile(user *api.User) error
	ClearProfile() error
}
