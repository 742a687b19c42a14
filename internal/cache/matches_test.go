package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brackup/brackup-cli/internal/api"
	"github.com/brackup/brackup-cli/internal/metrics"
)

func TestMatchesBracketsAlwaysFetch(t *testing.T) {
	client := api.NewMockAPI()
	client.GetBracketsFunc = func(ctx context.Context, tournamentID string) ([]api.Bracket, error) {
		return []api.Bracket{{ID: "b-1", TournamentID: tournamentID, RoundCount: 3}}, nil
	}
	svc := NewMatches(client, metrics.NewMock())

	brackets, err := svc.Brackets(context.Background(), "t-1")
	require.NoError(t, err)
	require.Len(t, brackets, 1)
	assert.Equal(t, "t-1", brackets[0].TournamentID)

	// No collection backs this service, so every read hits the network.
	_, err = svc.Brackets(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, 2, client.CallCount("GetBrackets"))
}

func TestMatchesUpdateScore(t *testing.T) {
	client := api.NewMockAPI()
	client.UpdateMatchScoreFunc = func(ctx context.Context, id string, req api.UpdateScoreRequest) (*api.Match, error) {
		return &api.Match{
			ID:                id,
			ScoreParticipant1: req.ScoreParticipant1,
			ScoreParticipant2: req.ScoreParticipant2,
			WinnerID:          req.WinnerID,
			Status:            api.MatchStatusCompleted,
		}, nil
	}
	svc := NewMatches(client, metrics.NewMock())

	winner := "p-1"
	match, err := svc.UpdateScore(context.Background(), "m-1", api.UpdateScoreRequest{
		ScoreParticipant1: 2,
		ScoreParticipant2: 1,
		WinnerID:          &winner,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, match.ScoreParticipant1)
	assert.Equal(t, 1, match.ScoreParticipant2)
	require.NotNil(t, match.WinnerID)
	assert.Equal(t, "p-1", *match.WinnerID)
}

func TestMatchesErrorPropagates(t *testing.T) {
	client := api.NewMockAPI()
	client.GetMatchFunc = func(ctx context.Context, id string) (*api.Match, error) {
		return nil, assert.AnError
	}
	svc := NewMatches(client, metrics.NewMock())

	_, err := svc.GetByID(context.Background(), "m-1")
	require.Error(t, err)
	assert.False(t, svc.IsLoading())
}

func TestMatchesLifecycleCalls(t *testing.T) {
	client := api.NewMockAPI()
	svc := NewMatches(client, metrics.NewMock())

	_, err := svc.Start(context.Background(), "m-1")
	require.NoError(t, err)
	_, err = svc.Complete(context.Background(), "m-1")
	require.NoError(t, err)
	_, err = svc.TournamentMatches(context.Background(), "t-1")
	require.NoError(t, err)

	assert.Equal(t, 1, client.CallCount("StartMatch"))
	assert.Equal(t, 1, client.CallCount("CompleteMatch"))
	assert.Equal(t, 1, client.CallCount("GetTournamentMatches"))
}
