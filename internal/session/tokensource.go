package session

import (
	"github.com/charmbracelet/log"

	"github.com/brackup/brackup-cli/internal/storage"
)

// TokenSource adapts the persisted store to the request pipeline's auth
// stage. The token is read from storage on every request, mirroring how
// the browser client reads localStorage per request.
type TokenSource struct {
	store storage.Store
}

// NewTokenSource creates a TokenSource over the given store.
func NewTokenSource(store storage.Store) *TokenSource {
	return &TokenSource{store: store}
}

func (t *TokenSource) Token() string {
	token, err := t.store.Token()
	if err != nil {
		log.Error("Failed to read token for request", "error", err)
		return ""
	}
	return token
}
