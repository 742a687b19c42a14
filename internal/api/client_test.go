package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brackup/brackup-cli/internal/metrics"
)

type staticTokens struct {
	token string
}

func (s *staticTokens) Token() string { return s.token }

type spyNavigator struct {
	redirects atomic.Int32
}

func (n *spyNavigator) RedirectToLogin() { n.redirects.Add(1) }

func TestClientAttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		fmt.Fprintln(w, `[]`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokens{token: "token-abc"}, &spyNavigator{}, metrics.NewMock())

	_, err := client.ListGames(context.Background())
	require.NoError(t, err)
}

func TestClientOmitsAuthorizationWhenNoToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		fmt.Fprintln(w, `[]`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokens{}, &spyNavigator{}, metrics.NewMock())

	_, err := client.ListGames(context.Background())
	require.NoError(t, err)
}

func TestClientRedirectsToLoginOn401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	nav := &spyNavigator{}
	client := NewClient(server.URL, &staticTokens{token: "expired"}, nav, metrics.NewMock())

	_, err := client.ListTournaments(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, MsgNotAuthenticated, apiErr.Message)
	assert.Equal(t, int32(1), nav.redirects.Load())
}

func TestClientDoesNotRedirectOnOtherFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	nav := &spyNavigator{}
	client := NewClient(server.URL, &staticTokens{token: "ok"}, nav, metrics.NewMock())

	_, err := client.GetTournament(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, MsgNotFound, apiErr.Message)
	assert.Equal(t, int32(0), nav.redirects.Load())
}

func TestClientNormalizesTransportFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // force a connection failure

	nav := &spyNavigator{}
	m := metrics.NewMock()
	client := NewClient(server.URL, &staticTokens{}, nav, m)

	_, err := client.ListGames(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.Contains(t, apiErr.Message, "Network error:")
	assert.Equal(t, int32(0), nav.redirects.Load())
	assert.Equal(t, 1, m.APIFailures())
}

func TestClientCountsRequestsAndFailures(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			fmt.Fprintln(w, `[]`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	m := metrics.NewMock()
	client := NewClient(server.URL, &staticTokens{}, &spyNavigator{}, m)

	_, err := client.ListGames(context.Background())
	require.NoError(t, err)
	_, err = client.ListGames(context.Background())
	require.Error(t, err)

	assert.Equal(t, 2, m.APIRequests())
	assert.Equal(t, 1, m.APIFailures())
}

func TestClientDecodesEntities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tournaments/t-1", r.URL.Path)
		fmt.Fprintln(w, `{"id":"t-1","name":"Summer Cup","status":"registration","format":"single_elimination","maxParticipants":16,"teamSize":1}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokens{token: "ok"}, &spyNavigator{}, metrics.NewMock())

	tournament, err := client.GetTournament(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, "t-1", tournament.ID)
	assert.Equal(t, "Summer Cup", tournament.Name)
	assert.Equal(t, TournamentStatusRegistration, tournament.Status)
	assert.Equal(t, FormatSingleElimination, tournament.Format)
}

func TestClientHandlesNoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokens{token: "ok"}, &spyNavigator{}, metrics.NewMock())

	require.NoError(t, client.DeleteGame(context.Background(), "g-1"))
}

func TestVerifyRejectsInvalidToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/verify", r.URL.Path)
		fmt.Fprintln(w, `{"valid":false,"error":"token expired"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokens{token: "stale"}, &spyNavigator{}, metrics.NewMock())

	user, err := client.Verify(context.Background())
	require.Error(t, err)
	assert.Nil(t, user)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "token expired", apiErr.Message)
}

func TestVerifyReturnsUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, `{"valid":true,"user":{"id":"u-1","discordUsername":"alice","role":"moderator"}}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, &staticTokens{token: "ok"}, &spyNavigator{}, metrics.NewMock())

	user, err := client.Verify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, "alice", user.DiscordUsername)
	assert.Equal(t, RoleModerator, user.Role)
}

func TestLoginURL(t *testing.T) {
	client := NewClient("https://api.example.test", &staticTokens{}, &spyNavigator{}, metrics.NewMock())

	assert.Equal(t, "https://api.example.test/auth/discord", client.LoginURL())
}
