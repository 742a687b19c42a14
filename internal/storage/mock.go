package storage

import (
	"sync"

	"github.com/brackup/brackup-cli/internal/api"
)

// MockStore is an in-memory Store for tests. It is safe for concurrent use.
type MockStore struct {
	mu      sync.Mutex
	token   string
	profile *api.User

	// Optional error overrides per operation.
	TokenErr      error
	SetTokenErr   error
	ClearTokenErr error
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{}
}

var _ Store = (*MockStore)(nil)

func (m *MockStore) Token() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.TokenErr != nil {
		return "", m.TokenErr
	}
	return m.token, nil
}

func (m *MockStore) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetTokenErr != nil {
		return m.SetTokenErr
	}
	m.token = token
	return nil
}

func (m *MockStore) ClearToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearTokenErr != nil {
		return m.ClearTokenErr
	}
	m.token = ""
	return nil
}

func (m *MockStore) Profile() (*api.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.profile, nil
}

func (m *MockStore) SetProfile(user *api.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = user
	return nil
}

func (m *MockStore) ClearProfile() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profile = nil
	return nil
}
