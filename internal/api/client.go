package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/brackup/brackup-cli/internal/metrics"
)

// TokenSource supplies the bearer token attached to outgoing requests.
// An empty token means the request passes through unauthenticated.
type TokenSource interface {
	Token() string
}

// Navigator receives the single-shot redirect the pipeline performs when
// the server answers 401.
type Navigator interface {
	RedirectToLogin()
}

// Client is the typed client for the tournament platform API. Every call
// goes through two stages: the auth stage attaches the bearer token, and
// the error-normalization stage maps failures to *APIError. No retries are
// performed at this layer.
type Client struct {
	httpClient *http.Client
	BaseURL    string
	tokens     TokenSource
	nav        Navigator
	metrics    metrics.Metrics
}

// NewClient creates a new API client.
func NewClient(baseURL string, tokens TokenSource, nav Navigator, m metrics.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
		tokens:     tokens,
		nav:        nav,
		metrics:    m,
	}
}

// Ensure Client implements the TournamentAPI interface.
var _ TournamentAPI = (*Client)(nil)

// do executes a single request through the pipeline. A nil out skips
// response decoding.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	url := c.BaseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	// Auth stage: attach the bearer token when one is present.
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.metrics.IncAPIRequests()
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.IncAPIFailures()
		apiErr := normalizeTransport(err)
		log.Error("Request failed before reaching the server", "method", method, "path", path, "requestID", requestID, "error", err)
		return apiErr
	}
	defer resp.Body.Close()

	log.Debug("API request", "method", method, "path", path, "status", resp.StatusCode, "requestID", requestID, "duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode >= http.StatusBadRequest {
		c.metrics.IncAPIFailures()
		respBody, _ := io.ReadAll(resp.Body)
		apiErr := normalizeStatus(resp.StatusCode, respBody)
		if resp.StatusCode == http.StatusUnauthorized && c.nav != nil {
			c.nav.RedirectToLogin()
		}
		log.Error("Received error status from API", "method", method, "path", path, "status", resp.StatusCode, "requestID", requestID, "message", apiErr.Message)
		return apiErr
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// --- Auth ---

// LoginURL returns the identity-provider authorization entry point.
func (c *Client) LoginURL() string {
	return c.BaseURL + "/auth/discord"
}

// Verify checks the current token against the server and returns the
// verified user. Any failure, including a valid=false body, is an error.
func (c *Client) Verify(ctx context.Context) (*User, error) {
	var resp tokenVerifyResponse
	if err := c.do(ctx, http.MethodPost, "/auth/verify", struct{}{}, &resp); err != nil {
		return nil, err
	}
	if !resp.Valid || resp.User == nil {
		reason := "token rejected"
		if resp.Error != nil {
			reason = *resp.Error
		}
		return nil, &APIError{Status: http.StatusUnauthorized, Message: reason}
	}
	return resp.User, nil
}

// Me fetches the currently authenticated user.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout invalidates the session server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", struct{}{}, nil)
}

// --- Users ---

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPut, "/api/users/"+id, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil)
}

func (c *Client) UpdateUserRole(ctx context.Context, id string, role Role) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPatch, "/api/users/"+id+"/role", UpdateRoleRequest{Role: role}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserStats(ctx context.Context, id string) (*UserStats, error) {
	var stats UserStats
	if err := c.do(ctx, http.MethodGet, "/api/users/"+id+"/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// --- Games ---

func (c *Client) ListGames(ctx context.Context) ([]Game, error) {
	var games []Game
	if err := c.do(ctx, http.MethodGet, "/api/games", nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (c *Client) GetGame(ctx context.Context, id string) (*Game, error) {
	var game Game
	if err := c.do(ctx, http.MethodGet, "/api/games/"+id, nil, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (c *Client) CreateGame(ctx context.Context, req CreateGameRequest) (*Game, error) {
	var game Game
	if err := c.do(ctx, http.MethodPost, "/api/games", req, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (c *Client) UpdateGame(ctx context.Context, id string, req UpdateGameRequest) (*Game, error) {
	var game Game
	if err := c.do(ctx, http.MethodPut, "/api/games/"+id, req, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (c *Client) DeleteGame(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/games/"+id, nil, nil)
}

func (c *Client) ToggleGameStatus(ctx context.Context, id string) (*Game, error) {
	var game Game
	if err := c.do(ctx, http.MethodPatch, "/api/games/"+id+"/toggle-status", struct{}{}, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// --- Teams ---

func (c *Client) ListTeams(ctx context.Context) ([]Team, error) {
	var teams []Team
	if err := c.do(ctx, http.MethodGet, "/api/teams", nil, &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (c *Client) GetTeam(ctx context.Context, id string) (*Team, error) {
	var team Team
	if err := c.do(ctx, http.MethodGet, "/api/teams/"+id, nil, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *Client) CreateTeam(ctx context.Context, req CreateTeamRequest) (*Team, error) {
	var team Team
	if err := c.do(ctx, http.MethodPost, "/api/teams", req, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *Client) UpdateTeam(ctx context.Context, id string, req UpdateTeamRequest) (*Team, error) {
	var team Team
	if err := c.do(ctx, http.MethodPut, "/api/teams/"+id, req, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *Client) DeleteTeam(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/teams/"+id, nil, nil)
}

func (c *Client) AddTeamMember(ctx context.Context, teamID, userID string) (*Team, error) {
	var team Team
	if err := c.do(ctx, http.MethodPost, "/api/teams/"+teamID+"/members", AddMemberRequest{UserID: userID}, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *Client) RemoveTeamMember(ctx context.Context, teamID, userID string) (*Team, error) {
	var team Team
	if err := c.do(ctx, http.MethodDelete, "/api/teams/"+teamID+"/members/"+userID, nil, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *Client) TransferCaptaincy(ctx context.Context, teamID, newCaptainID string) (*Team, error) {
	var team Team
	if err := c.do(ctx, http.MethodPatch, "/api/teams/"+teamID+"/captain", TransferCaptaincyRequest{NewCaptainID: newCaptainID}, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// --- Tournaments ---

func (c *Client) ListTournaments(ctx context.Context) ([]Tournament, error) {
	var tournaments []Tournament
	if err := c.do(ctx, http.MethodGet, "/api/tournaments", nil, &tournaments); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (c *Client) GetTournament(ctx context.Context, id string) (*Tournament, error) {
	var tournament Tournament
	if err := c.do(ctx, http.MethodGet, "/api/tournaments/"+id, nil, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (c *Client) CreateTournament(ctx context.Context, req CreateTournamentRequest) (*Tournament, error) {
	var tournament Tournament
	if err := c.do(ctx, http.MethodPost, "/api/tournaments", req, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (c *Client) UpdateTournament(ctx context.Context, id string, req UpdateTournamentRequest) (*Tournament, error) {
	var tournament Tournament
	if err := c.do(ctx, http.MethodPut, "/api/tournaments/"+id, req, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (c *Client) DeleteTournament(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/tournaments/"+id, nil, nil)
}

func (c *Client) RegisterForTournament(ctx context.Context, id string, req RegisterRequest) (*Participant, error) {
	var participant Participant
	if err := c.do(ctx, http.MethodPost, "/api/tournaments/"+id+"/register", req, &participant); err != nil {
		return nil, err
	}
	return &participant, nil
}

func (c *Client) GetParticipants(ctx context.Context, id string) ([]Participant, error) {
	var participants []Participant
	if err := c.do(ctx, http.MethodGet, "/api/tournaments/"+id+"/participants", nil, &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

// StartTournament asks the server to generate brackets and begin play.
// Bracket generation is entirely server-side.
func (c *Client) StartTournament(ctx context.Context, id string) (*Tournament, error) {
	var tournament Tournament
	if err := c.do(ctx, http.MethodPost, "/api/tournaments/"+id+"/start", struct{}{}, &tournament); err != nil {
		return nil, err
	}
	return &tournament, nil
}

func (c *Client) CheckIn(ctx context.Context, id string) (*Participant, error) {
	var participant Participant
	if err := c.do(ctx, http.MethodPost, "/api/tournaments/"+id+"/checkin", struct{}{}, &participant); err != nil {
		return nil, err
	}
	return &participant, nil
}

// --- Brackets & matches ---

func (c *Client) GetBrackets(ctx context.Context, tournamentID string) ([]Bracket, error) {
	var brackets []Bracket
	if err := c.do(ctx, http.MethodGet, "/api/tournaments/"+tournamentID+"/brackets", nil, &brackets); err != nil {
		return nil, err
	}
	return brackets, nil
}

func (c *Client) GetTournamentMatches(ctx context.Context, tournamentID string) ([]Match, error) {
	var matches []Match
	if err := c.do(ctx, http.MethodGet, "/api/tournaments/"+tournamentID+"/matches", nil, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (c *Client) GetMatch(ctx context.Context, id string) (*Match, error) {
	var match Match
	if err := c.do(ctx, http.MethodGet, "/api/matches/"+id, nil, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (c *Client) UpdateMatchScore(ctx context.Context, id string, req UpdateScoreRequest) (*Match, error) {
	var match Match
	if err := c.do(ctx, http.MethodPatch, "/api/matches/"+id+"/score", req, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (c *Client) StartMatch(ctx context.Context, id string) (*Match, error) {
	var match Match
	if err := c.do(ctx, http.MethodPost, "/api/matches/"+id+"/start", struct{}{}, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (c *Client) CompleteMatch(ctx context.Context, id string) (*Match, error) {
	var match Match
	if err := c.do(ctx, http.MethodPost, "/api/matches/"+id+"/complete", struct{}{}, &match); err != nil {
		return nil, err
	}
	return &match, nil
}
