package tournament

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTournament(t *testing.T, repo TournamentRepository, id, name string) *Tournament {
	t.Helper()
	tr := &Tournament{TournamentID: id, TournamentName: name, RewardAmount: 10, Currency: "EUR"}
	require.NoError(t, repo.Save(context.Background(), tr))
	return tr
}

func TestTournamentRepositoryFindMissing(t *testing.T) {
	repo := NewTournamentRepository(newTestDB(t))

	found, err := repo.FindByTournamentID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestPlayerRepositoryFindMissing(t *testing.T) {
	repo := NewPlayerRepository(newTestDB(t))

	found, err := repo.FindByPlayerID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestTournamentRepositorySaveUpdatesInPlace(t *testing.T) {
	repo := NewTournamentRepository(newTestDB(t))
	ctx := context.Background()

	tr := seedTournament(t, repo, "t-1", "NPL")
	key := tr.ID
	require.NotZero(t, key)

	tr.RewardAmount = 99
	require.NoError(t, repo.Save(ctx, tr))
	assert.Equal(t, key, tr.ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	found, err := repo.FindByTournamentID(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, 99, found.RewardAmount)
}

func TestTournamentRepositoryDuplicateName(t *testing.T) {
	repo := NewTournamentRepository(newTestDB(t))
	seedTournament(t, repo, "t-1", "NPL")

	err := repo.Save(context.Background(), &Tournament{TournamentID: "t-2", TournamentName: "NPL", RewardAmount: 1, Currency: "EUR"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestTournamentRepositoryPlayerLinks(t *testing.T) {
	db := newTestDB(t)
	tournaments := NewTournamentRepository(db)
	players := NewPlayerRepository(db)
	ctx := context.Background()

	npl := seedTournament(t, tournaments, "t-1", "NPL")
	ipl := seedTournament(t, tournaments, "t-2", "IPL")

	ada := &Player{PlayerID: "p-1", PlayerName: "Ada"}
	require.NoError(t, players.Save(ctx, ada))
	require.NoError(t, tournaments.AddPlayer(ctx, npl, ada))
	require.NoError(t, tournaments.AddPlayer(ctx, ipl, ada))

	all, err := tournaments.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Len(t, all[0].Players, 1)
	assert.Len(t, all[1].Players, 1)

	require.NoError(t, tournaments.RemovePlayer(ctx, npl, ada))

	found, err := tournaments.FindByTournamentID(ctx, "t-1")
	require.NoError(t, err)
	assert.Empty(t, found.Players)

	found, err = tournaments.FindByTournamentID(ctx, "t-2")
	require.NoError(t, err)
	require.Len(t, found.Players, 1)
	assert.Equal(t, "p-1", found.Players[0].PlayerID)
}

func TestTournamentRepositoryDeleteOnlyTargetsOne(t *testing.T) {
	db := newTestDB(t)
	tournaments := NewTournamentRepository(db)
	players := NewPlayerRepository(db)
	ctx := context.Background()

	npl := seedTournament(t, tournaments, "t-1", "NPL")
	ipl := seedTournament(t, tournaments, "t-2", "IPL")
	ada := &Player{PlayerID: "p-1", PlayerName: "Ada"}
	require.NoError(t, players.Save(ctx, ada))
	require.NoError(t, tournaments.AddPlayer(ctx, npl, ada))
	require.NoError(t, tournaments.AddPlayer(ctx, ipl, ada))

	require.NoError(t, tournaments.DeleteByTournamentID(ctx, "t-1"))

	count, err := tournaments.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	found, err := tournaments.FindByTournamentID(ctx, "t-2")
	require.NoError(t, err)
	assert.Len(t, found.Players, 1)

	playerCount, err := players.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, playerCount)
}

func TestWithTransactionRollsBack(t *testing.T) {
	db := newTestDB(t)
	tournaments := NewTournamentRepository(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tournaments.WithTransaction(ctx, func(tx TournamentRepository, players PlayerRepository) error {
		seedTournament(t, tx, "t-1", "NPL")
		require.NoError(t, players.Save(ctx, &Player{PlayerID: "p-1", PlayerName: "Ada"}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := tournaments.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	playerCount, err := NewPlayerRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, playerCount)
}
