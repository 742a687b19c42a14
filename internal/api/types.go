package api

// Role defines the closed set of user roles. The server is authoritative;
// the client never computes or upgrades a role.
type Role string

const (
	RolePlayer    Role = "player"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// User represents an authenticated identity as returned by the server.
type User struct {
	ID                   string  `json:"id" msgpack:"id"`
	DiscordID            string  `json:"discordId" msgpack:"discord_id"`
	DiscordUsername      string  `json:"discordUsername" msgpack:"discord_username"`
	DiscordDiscriminator *string `json:"discordDiscriminator" msgpack:"discord_discriminator"`
	DiscordAvatar        *string `json:"discordAvatar" msgpack:"discord_avatar"`
	Email                *string `json:"email" msgpack:"email"`
	Role                 Role    `json:"role" msgpack:"role"`
	CreatedAt            string  `json:"createdAt" msgpack:"created_at"`
	UpdatedAt            string  `json:"updatedAt" msgpack:"updated_at"`
	LastLogin            *string `json:"lastLogin" msgpack:"last_login"`
}

// UserStats holds a user's aggregate tournament record.
type UserStats struct {
	TotalTournaments int     `json:"totalTournaments"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	WinRate          float64 `json:"winRate"`
}

// UserSummary is the denormalized user embedded in other entities.
type UserSummary struct {
	ID              string  `json:"id"`
	DiscordUsername string  `json:"discordUsername"`
	DiscordAvatar   *string `json:"discordAvatar"`
}

// tokenVerifyResponse is the wire shape of POST /auth/verify.
type tokenVerifyResponse struct {
	Valid bool    `json:"valid"`
	User  *User   `json:"user"`
	Error *string `json:"error"`
}

// Game represents a playable game title.
type Game struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	IconURL     *string `json:"iconUrl"`
	TeamSize    int     `json:"teamSize"`
	Description *string `json:"description"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
}

// GameSummary is the denormalized game embedded in teams and tournaments.
type GameSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	IconURL *string `json:"iconUrl"`
}

// CreateGameRequest is the payload for creating a game.
type CreateGameRequest struct {
	Name        string  `json:"name"`
	TeamSize    int     `json:"teamSize"`
	IconURL     *string `json:"iconUrl,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateGameRequest is the partial payload for updating a game.
type UpdateGameRequest struct {
	Name        *string `json:"name,omitempty"`
	TeamSize    *int    `json:"teamSize,omitempty"`
	IconURL     *string `json:"iconUrl,omitempty"`
	Description *string `json:"description,omitempty"`
}

// TeamMemberRole defines a member's role inside a team.
type TeamMemberRole string

const (
	TeamMemberRoleCaptain    TeamMemberRole = "captain"
	TeamMemberRoleMember     TeamMemberRole = "member"
	TeamMemberRoleSubstitute TeamMemberRole = "substitute"
)

// TeamMember represents a user's membership in a team.
type TeamMember struct {
	ID       string         `json:"id"`
	TeamID   string         `json:"teamId"`
	UserID   string         `json:"userId"`
	Role     TeamMemberRole `json:"role"`
	JoinedAt string         `json:"joinedAt"`
	User     *UserSummary   `json:"user,omitempty"`
}

// Team represents a team registered on the platform.
type Team struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Tag       *string      `json:"tag"`
	LogoURL   *string      `json:"logoUrl"`
	CaptainID *string      `json:"captainId"`
	GameID    string       `json:"gameId"`
	CreatedAt string       `json:"createdAt"`
	UpdatedAt string       `json:"updatedAt"`
	Captain   *UserSummary `json:"captain,omitempty"`
	Game      *GameSummary `json:"game,omitempty"`
	Members   []TeamMember `json:"members,omitempty"`
}

// TeamSummary is the denormalized team embedded in tournament participants.
type TeamSummary struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Tag     *string `json:"tag"`
	LogoURL *string `json:"logoUrl"`
}

// CreateTeamRequest is the payload for creating a team.
type CreateTeamRequest struct {
	Name    string  `json:"name"`
	Tag     *string `json:"tag,omitempty"`
	LogoURL *string `json:"logoUrl,omitempty"`
	GameID  string  `json:"gameId"`
}

// UpdateTeamRequest is the partial payload for updating a team.
type UpdateTeamRequest struct {
	Name    *string `json:"name,omitempty"`
	Tag     *string `json:"tag,omitempty"`
	LogoURL *string `json:"logoUrl,omitempty"`
	GameID  *string `json:"gameId,omitempty"`
}

// AddMemberRequest adds a user to a team.
type AddMemberRequest struct {
	UserID string `json:"userId"`
}

// TransferCaptaincyRequest hands the captain role to another member.
type TransferCaptaincyRequest struct {
	NewCaptainID string `json:"newCaptainId"`
}

// TournamentFormat defines the competition format of a tournament.
type TournamentFormat string

const (
	FormatSingleElimination TournamentFormat = "single_elimination"
	FormatDoubleElimination TournamentFormat = "double_elimination"
	FormatRoundRobin        TournamentFormat = "round_robin"
	FormatSwiss             TournamentFormat = "swiss"
)

// TournamentStatus defines the lifecycle state of a tournament. Transitions
// are entirely server-driven.
type TournamentStatus string

const (
	TournamentStatusDraft        TournamentStatus = "draft"
	TournamentStatusRegistration TournamentStatus = "registration"
	TournamentStatusOngoing      TournamentStatus = "ongoing"
	TournamentStatusCompleted    TournamentStatus = "completed"
	TournamentStatusCancelled    TournamentStatus = "cancelled"
)

// ParticipantStatus defines the state of a tournament participant.
type ParticipantStatus string

const (
	ParticipantStatusPending      ParticipantStatus = "pending"
	ParticipantStatusConfirmed    ParticipantStatus = "confirmed"
	ParticipantStatusCheckedIn    ParticipantStatus = "checked_in"
	ParticipantStatusDisqualified ParticipantStatus = "disqualified"
	ParticipantStatusWithdrawn    ParticipantStatus = "withdrawn"
)

// Tournament represents a tournament with its denormalized game and creator.
type Tournament struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Slug              string           `json:"slug"`
	GameID            string           `json:"gameId"`
	Description       *string          `json:"description"`
	Rules             *string          `json:"rules"`
	Format            TournamentFormat `json:"format"`
	MaxParticipants   int              `json:"maxParticipants"`
	TeamSize          int              `json:"teamSize"`
	Status            TournamentStatus `json:"status"`
	PrizePool         *string          `json:"prizePool"`
	BannerURL         *string          `json:"bannerUrl"`
	RegistrationStart *string          `json:"registrationStart"`
	RegistrationEnd   *string          `json:"registrationEnd"`
	StartDate         *string          `json:"startDate"`
	EndDate           *string          `json:"endDate"`
	CreatedBy         *string          `json:"createdBy"`
	CreatedAt         string           `json:"createdAt"`
	UpdatedAt         string           `json:"updatedAt"`
	Game              *GameSummary     `json:"game,omitempty"`
	Creator           *UserSummary     `json:"creator,omitempty"`
	ParticipantCount  *int             `json:"participantCount,omitempty"`
}

// Participant represents an entry (user or team) in a tournament.
type Participant struct {
	ID           string            `json:"id"`
	TournamentID string            `json:"tournamentId"`
	UserID       *string           `json:"userId"`
	TeamID       *string           `json:"teamId"`
	Seed         *int              `json:"seed"`
	Status       ParticipantStatus `json:"status"`
	RegisteredAt string            `json:"registeredAt"`
	CheckedInAt  *string           `json:"checkedInAt"`
	User         *UserSummary      `json:"user,omitempty"`
	Team         *TeamSummary      `json:"team,omitempty"`
}

// CreateTournamentRequest is the payload for creating a tournament.
type CreateTournamentRequest struct {
	Name              string           `json:"name"`
	GameID            string           `json:"gameId"`
	Description       *string          `json:"description,omitempty"`
	Rules             *string          `json:"rules,omitempty"`
	Format            TournamentFormat `json:"format"`
	MaxParticipants   int              `json:"maxParticipants"`
	TeamSize          int              `json:"teamSize"`
	PrizePool         *string          `json:"prizePool,omitempty"`
	BannerURL         *string          `json:"bannerUrl,omitempty"`
	RegistrationStart *string          `json:"registrationStart,omitempty"`
	RegistrationEnd   *string          `json:"registrationEnd,omitempty"`
	StartDate         *string          `json:"startDate,omitempty"`
	EndDate           *string          `json:"endDate,omitempty"`
}

// UpdateTournamentRequest is the partial payload for updating a tournament.
type UpdateTournamentRequest struct {
	Name            *string           `json:"name,omitempty"`
	Description     *string           `json:"description,omitempty"`
	Rules           *string           `json:"rules,omitempty"`
	Format          *TournamentFormat `json:"format,omitempty"`
	MaxParticipants *int              `json:"maxParticipants,omitempty"`
	TeamSize        *int              `json:"teamSize,omitempty"`
	PrizePool       *string           `json:"prizePool,omitempty"`
	Status          *TournamentStatus `json:"status,omitempty"`
}

// RegisterRequest registers the current user (optionally with a team) for a
// tournament.
type RegisterRequest struct {
	TeamID *string `json:"teamId,omitempty"`
}

// MatchStatus defines the lifecycle state of a match.
type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusReady     MatchStatus = "ready"
	MatchStatusOngoing   MatchStatus = "ongoing"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusCancelled MatchStatus = "cancelled"
)

// BracketType defines the kind of bracket a match belongs to.
type BracketType string

const (
	BracketTypeWinner BracketType = "winner"
	BracketTypeLoser  BracketType = "loser"
	BracketTypeGroup  BracketType = "group"
)

// Match represents a single server-computed match. The client renders it
// and submits score updates; it never derives match state itself.
type Match struct {
	ID                string       `json:"id"`
	TournamentID      string       `json:"tournamentId"`
	BracketID         string       `json:"bracketId"`
	Round             int          `json:"round"`
	MatchNumber       int          `json:"matchNumber"`
	Participant1ID    *string      `json:"participant1Id"`
	Participant2ID    *string      `json:"participant2Id"`
	WinnerID          *string      `json:"winnerId"`
	ScoreParticipant1 int          `json:"scoreParticipant1"`
	ScoreParticipant2 int          `json:"scoreParticipant2"`
	BestOf            int          `json:"bestOf"`
	Status            MatchStatus  `json:"status"`
	NextMatchID       *string      `json:"nextMatchId"`
	LoserNextMatchID  *string      `json:"loserNextMatchId"`
	ScheduledAt       *string      `json:"scheduledAt"`
	StartedAt         *string      `json:"startedAt"`
	CompletedAt       *string      `json:"completedAt"`
	CreatedAt         string       `json:"createdAt"`
	UpdatedAt         string       `json:"updatedAt"`
	Participant1      *Participant `json:"participant1,omitempty"`
	Participant2      *Participant `json:"participant2,omitempty"`
	Winner            *Participant `json:"winner,omitempty"`
}

// Bracket groups matches into rounds. Computed server-side; rendered, not
// computed, client-side.
type Bracket struct {
	ID           string       `json:"id"`
	TournamentID string       `json:"tournamentId"`
	Type         *BracketType `json:"type"`
	Name         *string      `json:"name"`
	RoundCount   int          `json:"roundCount"`
	CreatedAt    string       `json:"createdAt"`
	Matches      []Match      `json:"matches,omitempty"`
}

// UpdateScoreRequest submits a score for a match.
type UpdateScoreRequest struct {
	ScoreParticipant1 int     `json:"scoreParticipant1"`
	ScoreParticipant2 int     `json:"scoreParticipant2"`
	WinnerID          *string `json:"winnerId,omitempty"`
}

// CreateUserRequest is the payload for creating a user record. Admin only
// on the server; ordinary accounts are created by the identity provider
// callback.
type CreateUserRequest struct {
	DiscordID       string  `json:"discordId"`
	DiscordUsername string  `json:"discordUsername"`
	Email           *string `json:"email,omitempty"`
	Role            *Role   `json:"role,omitempty"`
}

// UpdateUserRequest is the partial payload for updating a user profile.
type UpdateUserRequest struct {
	Email           *string `json:"email,omitempty"`
	DiscordUsername *string `json:"discordUsername,omitempty"`
}

// UpdateRoleRequest changes a user's role. Admin only on the server.
type UpdateRoleRequest struct {
	Role Role `json:"role"`
}

// Round is a bracket round with its matches, ordered by match number.
type Round struct {
	Number  int
	Matches []Match
}
