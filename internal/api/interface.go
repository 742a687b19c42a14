package api

import "context"

// TournamentAPI defines the interface for interacting with the tournament
// platform API. This allows for mock implementations to be used in tests.
type TournamentAPI interface {
	LoginURL() string
	Verify(ctx context.Context) (*User, error)
	Me(ctx context.Context) (*User, error)
	Logout(ctx context.Context) error

	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*User, error)
	UpdateUser(ctx context.Context, id string, req UpdateUserRequest) (*User, error)
	DeleteUser(ctx context.Context, id string) error
	UpdateUserRole(ctx context.Context, id string, role Role) (*User, error)
	GetUserStats(ctx context.Context, id string) (*UserStats, error)

	ListGames(ctx context.Context) ([]Game, error)
	GetGame(ctx context.Context, id string) (*Game, error)
	CreateGame(ctx context.Context, req CreateGameRequest) (*Game, error)
	UpdateGame(ctx context.Context, id string, req UpdateGameRequest) (*Game, error)
	DeleteGame(ctx context.Context, id string) error
	ToggleGameStatus(ctx context.Context, id string) (*Game, error)

	ListTeams(ctx context.Context) ([]Team, error)
	GetTeam(ctx context.Context, id string) (*Team, error)
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*Team, error)
	UpdateTeam(ctx context.Context, id string, req UpdateTeamRequest) (*Team, error)
	DeleteTeam(ctx context.Context, id string) error
	AddTeamMember(ctx context.Context, teamID, userID string) (*Team, error)
	RemoveTeamMember(ctx context.Context, teamID, userID string) (*Team, error)
	TransferCaptaincy(ctx context.Context, teamID, newCaptainID string) (*Team, error)

	ListTournaments(ctx context.Context) ([]Tournament, error)
	GetTournament(ctx context.Context, id string) (*Tournament, error)
	CreateTournament(ctx context.Context, req CreateTournamentRequest) (*Tournament, error)
	UpdateTournament(ctx context.Context, id string, req UpdateTournamentRequest) (*Tournament, error)
	DeleteTournament(ctx context.Context, id string) error
	RegisterForTournament(ctx context.Context, id string, req RegisterRequest) (*Participant, error)
	GetParticipants(ctx context.Context, id string) ([]Participant, error)
	StartTournament(ctx context.Context, id string) (*Tournament, error)
	CheckIn(ctx context.Context, id string) (*Participant, error)

	GetBrackets(ctx context.Context, tournamentID string) ([]Bracket, error)
	GetTournamentMatches(ctx context.Context, tournamentID string) ([]Match, error)
	GetMatch(ctx context.Context, id string) (*Match, error)
	UpdateMatchScore(ctx context.Context, id string, req UpdateScoreRequest) (*Match, error)
	StartMatch(ctx context.Context, id string) (*Match, error)
	CompleteMatch(ctx context.Context, id string) (*Match, error)
}
