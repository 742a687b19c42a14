package api

import (
	"context"
	"sync"
)

// MockAPI is a mock implementation of the TournamentAPI interface for
// testing. It is safe for concurrent use. Each method delegates to its
// corresponding func field when set and records the call either way.
type MockAPI struct {
	mu sync.Mutex

	// Spies for method calls
	VerifyFunc                func(ctx context.Context) (*User, error)
	MeFunc                    func(ctx context.Context) (*User, error)
	LogoutFunc                func(ctx context.Context) error
	ListUsersFunc             func(ctx context.Context) ([]User, error)
	GetUserFunc               func(ctx context.Context, id string) (*User, error)
	CreateUserFunc            func(ctx context.Context, req CreateUserRequest) (*User, error)
	UpdateUserFunc            func(ctx context.Context, id string, req UpdateUserRequest) (*User, error)
	DeleteUserFunc            func(ctx context.Context, id string) error
	UpdateUserRoleFunc        func(ctx context.Context, id string, role Role) (*User, error)
	GetUserStatsFunc          func(ctx context.Context, id string) (*UserStats, error)
	ListGamesFunc             func(ctx context.Context) ([]Game, error)
	GetGameFunc               func(ctx context.Context, id string) (*Game, error)
	CreateGameFunc            func(ctx context.Context, req CreateGameRequest) (*Game, error)
	UpdateGameFunc            func(ctx context.Context, id string, req UpdateGameRequest) (*Game, error)
	DeleteGameFunc            func(ctx context.Context, id string) error
	ToggleGameStatusFunc      func(ctx context.Context, id string) (*Game, error)
	ListTeamsFunc             func(ctx context.Context) ([]Team, error)
	GetTeamFunc               func(ctx context.Context, id string) (*Team, error)
	CreateTeamFunc            func(ctx context.Context, req CreateTeamRequest) (*Team, error)
	UpdateTeamFunc            func(ctx context.Context, id string, req UpdateTeamRequest) (*Team, error)
	DeleteTeamFunc            func(ctx context.Context, id string) error
	AddTeamMemberFunc         func(ctx context.Context, teamID, userID string) (*Team, error)
	RemoveTeamMemberFunc      func(ctx context.Context, teamID, userID string) (*Team, error)
	TransferCaptaincyFunc     func(ctx context.Context, teamID, newCaptainID string) (*Team, error)
	ListTournamentsFunc       func(ctx context.Context) ([]Tournament, error)
	GetTournamentFunc         func(ctx context.Context, id string) (*Tournament, error)
	CreateTournamentFunc      func(ctx context.Context, req CreateTournamentRequest) (*Tournament, error)
	UpdateTournamentFunc      func(ctx context.Context, id string, req UpdateTournamentRequest) (*Tournament, error)
	DeleteTournamentFunc      func(ctx context.Context, id string) error
	RegisterForTournamentFunc func(ctx context.Context, id string, req RegisterRequest) (*Participant, error)
	GetParticipantsFunc       func(ctx context.Context, id string) ([]Participant, error)
	StartTournamentFunc       func(ctx context.Context, id string) (*Tournament, error)
	CheckInFunc               func(ctx context.Context, id string) (*Participant, error)
	GetBracketsFunc           func(ctx context.Context, tournamentID string) ([]Bracket, error)
	GetTournamentMatchesFunc  func(ctx context.Context, tournamentID string) ([]Match, error)
	GetMatchFunc              func(ctx context.Context, id string) (*Match, error)
	UpdateMatchScoreFunc      func(ctx context.Context, id string, req UpdateScoreRequest) (*Match, error)
	StartMatchFunc            func(ctx context.Context, id string) (*Match, error)
	CompleteMatchFunc         func(ctx context.Context, id string) (*Match, error)

	// Call records, by method name.
	Calls map[string]int
}

// NewMockAPI creates a new mock instance.
func NewMockAPI() *MockAPI {
	return &MockAPI{Calls: make(map[string]int)}
}

var _ TournamentAPI = (*MockAPI)(nil)

// Reset clears all call records.
func (m *MockAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = make(map[string]int)
}

// CallCount returns the number of recorded calls to a method.
func (m *MockAPI) CallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls[method]
}

func (m *MockAPI) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[method]++
}

func (m *MockAPI) LoginURL() string {
	m.record("LoginURL")
	return "https://auth.example.test/authorize"
}

func (m *MockAPI) Verify(ctx context.Context) (*User, error) {
	m.record("Verify")
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx)
	}
	return &User{}, nil
}

func (m *MockAPI) Me(ctx context.Context) (*User, error) {
	m.record("Me")
	if m.MeFunc != nil {
		return m.MeFunc(ctx)
	}
	return &User{}, nil
}

func (m *MockAPI) Logout(ctx context.Context) error {
	m.record("Logout")
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx)
	}
	return nil
}

func (m *MockAPI) ListUsers(ctx context.Context) ([]User, error) {
	m.record("ListUsers")
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return []User{}, nil
}

func (m *MockAPI) GetUser(ctx context.Context, id string) (*User, error) {
	m.record("GetUser")
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return &User{ID: id}, nil
}

func (m *MockAPI) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	m.record("CreateUser")
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, req)
	}
	return &User{}, nil
}

func (m *MockAPI) UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error) {
	m.record("UpdateUser")
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return &User{ID: id}, nil
}

func (m *MockAPI) DeleteUser(ctx context.Context, id string) error {
	m.record("DeleteUser")
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

func (m *MockAPI) UpdateUserRole(ctx context.Context, id string, role Role) (*User, error) {
	m.record("UpdateUserRole")
	if m.UpdateUserRoleFunc != nil {
		return m.UpdateUserRoleFunc(ctx, id, role)
	}
	return &User{ID: id, Role: role}, nil
}

func (m *MockAPI) GetUserStats(ctx context.Context, id string) (*UserStats, error) {
	m.record("GetUserStats")
	if m.GetUserStatsFunc != nil {
		return m.GetUserStatsFunc(ctx, id)
	}
	return &UserStats{}, nil
}

func (m *MockAPI) ListGames(ctx context.Context) ([]Game, error) {
	m.record("ListGames")
	if m.ListGamesFunc != nil {
		return m.ListGamesFunc(ctx)
	}
	return []Game{}, nil
}

func (m *MockAPI) GetGame(ctx context.Context, id string) (*Game, error) {
	m.record("GetGame")
	if m.GetGameFunc != nil {
		return m.GetGameFunc(ctx, id)
	}
	return &Game{ID: id}, nil
}

func (m *MockAPI) CreateGame(ctx context.Context, req CreateGameRequest) (*Game, error) {
	m.record("CreateGame")
	if m.CreateGameFunc != nil {
		return m.CreateGameFunc(ctx, req)
	}
	return &Game{Name: req.Name}, nil
}

func (m *MockAPI) UpdateGame(ctx context.Context, id string, req UpdateGameRequest) (*Game, error) {
	m.record("UpdateGame")
	if m.UpdateGameFunc != nil {
		return m.UpdateGameFunc(ctx, id, req)
	}
	return &Game{ID: id}, nil
}

func (m *MockAPI) DeleteGame(ctx context.Context, id string) error {
	m.record("DeleteGame")
	if m.DeleteGameFunc != nil {
		return m.DeleteGameFunc(ctx, id)
	}
	return nil
}

func (m *MockAPI) ToggleGameStatus(ctx context.Context, id string) (*Game, error) {
	m.record("ToggleGameStatus")
	if m.ToggleGameStatusFunc != nil {
		return m.ToggleGameStatusFunc(ctx, id)
	}
	return &Game{ID: id}, nil
}

func (m *MockAPI) ListTeams(ctx context.Context) ([]Team, error) {
	m.record("ListTeams")
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx)
	}
	return []Team{}, nil
}

func (m *MockAPI) GetTeam(ctx context.Context, id string) (*Team, error) {
	m.record("GetTeam")
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, id)
	}
	return &Team{ID: id}, nil
}

func (m *MockAPI) CreateTeam(ctx context.Context, req CreateTeamRequest) (*Team, error) {
	m.record("CreateTeam")
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, req)
	}
	return &Team{Name: req.Name}, nil
}

func (m *MockAPI) UpdateTeam(ctx context.Context, id string, req UpdateTeamRequest) (*Team, error) {
	m.record("UpdateTeam")
	if m.UpdateTeamFunc != nil {
		return m.UpdateTeamFunc(ctx, id, req)
	}
	return &Team{ID: id}, nil
}

func (m *MockAPI) DeleteTeam(ctx context.Context, id string) error {
	m.record("DeleteTeam")
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(ctx, id)
	}
	return nil
}

func (m *MockAPI) AddTeamMember(ctx context.Context, teamID, userID string) (*Team, error) {
	m.record("AddTeamMember")
	if m.AddTeamMemberFunc != nil {
		return m.AddTeamMemberFunc(ctx, teamID, userID)
	}
	return &Team{ID: teamID}, nil
}

func (m *MockAPI) RemoveTeamMember(ctx context.Context, teamID, userID string) (*Team, error) {
	m.record("RemoveTeamMember")
	if m.RemoveTeamMemberFunc != nil {
		return m.RemoveTeamMemberFunc(ctx, teamID, userID)
	}
	return &Team{ID: teamID}, nil
}

func (m *MockAPI) TransferCaptaincy(ctx context.Context, teamID, newCaptainID string) (*Team, error) {
	m.record("TransferCaptaincy")
	if m.TransferCaptaincyFunc != nil {
		return m.TransferCaptaincyFunc(ctx, teamID, newCaptainID)
	}
	return &Team{ID: teamID}, nil
}

func (m *MockAPI) ListTournaments(ctx context.Context) ([]Tournament, error) {
	m.record("ListTournaments")
	if m.ListTournamentsFunc != nil {
		return m.ListTournamentsFunc(ctx)
	}
	return []Tournament{}, nil
}

func (m *MockAPI) GetTournament(ctx context.Context, id string) (*Tournament, error) {
	m.record("GetTournament")
	if m.GetTournamentFunc != nil {
		return m.GetTournamentFunc(ctx, id)
	}
	return &Tournament{ID: id}, nil
}

func (m *MockAPI) CreateTournament(ctx context.Context, req CreateTournamentRequest) (*Tournament, error) {
	m.record("CreateTournament")
	if m.CreateTournamentFunc != nil {
		return m.CreateTournamentFunc(ctx, req)
	}
	return &Tournament{Name: req.Name}, nil
}

func (m *MockAPI) UpdateTournament(ctx context.Context, id string, req UpdateTournamentRequest) (*Tournament, error) {
	m.record("UpdateTournament")
	if m.UpdateTournamentFunc != nil {
		return m.UpdateTournamentFunc(ctx, id, req)
	}
	return &Tournament{ID: id}, nil
}

func (m *MockAPI) DeleteTournament(ctx context.Context, id string) error {
	m.record("DeleteTournament")
	if m.DeleteTournamentFunc != nil {
		return m.DeleteTournamentFunc(ctx, id)
	}
	return nil
}

func (m *MockAPI) RegisterForTournament(ctx context.Context, id string, req RegisterRequest) (*Participant, error) {
	m.record("RegisterForTournament")
	if m.RegisterForTournamentFunc != nil {
		return m.RegisterForTournamentFunc(ctx, id, req)
	}
	return &Participant{TournamentID: id}, nil
}

func (m *MockAPI) GetParticipants(ctx context.Context, id string) ([]Participant, error) {
	m.record("GetParticipants")
	if m.GetParticipantsFunc != nil {
		return m.GetParticipantsFunc(ctx, id)
	}
	return []Participant{}, nil
}

func (m *MockAPI) StartTournament(ctx context.Context, id string) (*Tournament, error) {
	m.record("StartTournament")
	if m.StartTournamentFunc != nil {
		return m.StartTournamentFunc(ctx, id)
	}
	return &Tournament{ID: id}, nil
}

func (m *MockAPI) CheckIn(ctx context.Context, id string) (*Participant, error) {
	m.record("CheckIn")
	if m.CheckInFunc != nil {
		return m.CheckInFunc(ctx, id)
	}
	return &Participant{TournamentID: id}, nil
}

func (m *MockAPI) GetBrackets(ctx context.Context, tournamentID string) ([]Bracket, error) {
	m.record("GetBrackets")
	if m.GetBracketsFunc != nil {
		return m.GetBracketsFunc(ctx, tournamentID)
	}
	return []Bracket{}, nil
}

func (m *MockAPI) GetTournamentMatches(ctx context.Context, tournamentID string) ([]Match, error) {
	m.record("GetTournamentMatches")
	if m.GetTournamentMatchesFunc != nil {
		return m.GetTournamentMatchesFunc(ctx, tournamentID)
	}
	return []Match{}, nil
}

func (m *MockAPI) GetMatch(ctx context.Context, id string) (*Match, error) {
	m.record("GetMatch")
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(ctx, id)
	}
	return &Match{ID: id}, nil
}

func (m *MockAPI) UpdateMatchScore(ctx context.Context, id string, req UpdateScoreRequest) (*Match, error) {
	m.record("UpdateMatchScore")
	if m.UpdateMatchScoreFunc != nil {
		return m.UpdateMatchScoreFunc(ctx, id, req)
	}
	return &Match{ID: id}, nil
}

func (m *MockAPI) StartMatch(ctx context.Context, id string) (*Match, error) {
	m.record("StartMatch")
	if m.StartMatchFunc != nil {
		return m.StartMatchFunc(ctx, id)
	}
	return &Match{ID: id}, nil
}

func (m *MockAPI) CompleteMatch(ctx context.Context, id string) (*Match, error) {
	m.record("CompleteMatch")
	if m.CompleteMatchFunc != nil {
		return m.CompleteMatchFunc(ctx, id)
	}
	return &Match{ID: id}, nil
}
