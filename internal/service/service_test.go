package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/courtrank/ratingengine/internal/domain"
	"github.com/courtrank/ratingengine/internal/rules"
)

type fakeStore struct {
	players map[int64]*domain.Player
	results map[int64][]domain.MatchResult

	loadPlayersErr error

	savedSingles bool
	savedDoubles bool
	savedSubs    bool
	zeroedIDs    []int64
}

func (f *fakeStore) LoadPlayers(context.Context) (map[int64]*domain.Player, error) {
	if f.loadPlayersErr != nil {
		return nil, f.loadPlayersErr
	}
	return f.players, nil
}

func (f *fakeStore) LoadResults(context.Context, domain.RatingType, time.Time) (map[int64][]domain.MatchResult, error) {
	return f.results, nil
}

func (f *fakeStore) SaveSinglesRatings(context.Context, map[int64]*domain.Player) error {
	f.savedSingles = true
	return nil
}

func (f *fakeStore) SaveDoublesRatings(context.Context, map[int64]*domain.Player) error {
	f.savedDoubles = true
	return nil
}

func (f *fakeStore) SaveSubRatings(context.Context, map[int64]*domain.Player) error {
	f.savedSubs = true
	return nil
}

func (f *fakeStore) ZeroSinglesRatings(_ context.Context, ids []int64) error {
	f.zeroedIDs = ids
	return nil
}

func (f *fakeStore) ZeroDoublesRatings(_ context.Context, ids []int64) error {
	f.zeroedIDs = ids
	return nil
}

type fakeJobs struct {
	created  []domain.RatingJob
	statuses []string
	closedAs string
}

func (f *fakeJobs) CreateJob(_ context.Context, job domain.RatingJob) error {
	f.created = append(f.created, job)
	return nil
}

func (f *fakeJobs) UpdateJobStatus(_ context.Context, _ uuid.UUID, status string) error {
	f.statuses = append(f.statuses, status)
	return nil
}

func (f *fakeJobs) CloseJob(_ context.Context, _ uuid.UUID, status string, _ time.Time) error {
	f.closedAs = status
	return nil
}

func quietLog() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func singlesPlayer(id int64) *domain.Player {
	return &domain.Player{
		ID:     id,
		Gender: domain.GenderMale,
		Rating: &domain.RatingState{PlayerID: id, Rating: 5, Reliability: 10},
	}
}

func singlesResult(id, winner, loser int64) domain.MatchResult {
	return domain.MatchResult{
		ID:         id,
		Winner1:    winner,
		Loser1:     loser,
		Date:       time.Now().AddDate(0, 0, -30),
		WinnerSets: [5]int{6, 6},
		LoserSets:  [5]int{3, 3},
	}
}

// fixture: players 1-4 chained together plus an isolated pair 5-6 that
// ends up below the disconnected-pool threshold.
func snapshot() (map[int64]*domain.Player, map[int64][]domain.MatchResult) {
	players := make(map[int64]*domain.Player)
	for id := int64(1); id <= 6; id++ {
		players[id] = singlesPlayer(id)
	}
	chain := []domain.MatchResult{
		singlesResult(1, 1, 2),
		singlesResult(2, 2, 3),
		singlesResult(3, 3, 4),
	}
	isolated := singlesResult(4, 5, 6)
	results := map[int64][]domain.MatchResult{
		1: {chain[0]},
		2: {chain[0], chain[1]},
		3: {chain[1], chain[2]},
		4: {chain[2]},
		5: {isolated},
		6: {isolated},
	}
	return players, results
}

func TestUpdateSinglesRatings(t *testing.T) {
	players, results := snapshot()
	store := &fakeStore{players: players, results: results}
	jobs := &fakeJobs{}
	svc := New(store, jobs, rules.Config{
		Singles: rules.Default(domain.RatingSingles),
		Doubles: rules.Default(domain.RatingDoubles),
	}, 2, quietLog())

	require.NoError(t, svc.UpdateSinglesRatings(context.Background()))

	require.Equal(t, []string{
		domain.StatusLoadingPlayers,
		domain.StatusLoadingResults,
		"Running calculations - Iteration 1",
		"Running calculations - Iteration 2",
		domain.StatusCompetitiveness,
		domain.StatusCorrecting,
		domain.StatusSavingSubRatings,
		domain.StatusSavingRatings,
		domain.StatusDisconnectedPools,
	}, jobs.statuses)

	require.Len(t, jobs.created, 1)
	require.Equal(t, domain.RatingSingles, jobs.created[0].Type)
	require.Equal(t, domain.StatusCompleted, jobs.closedAs)

	require.True(t, store.savedSingles)
	require.True(t, store.savedSubs)
	require.False(t, store.savedDoubles)
	require.Equal(t, []int64{5, 6}, store.zeroedIDs)

	require.Greater(t, players[1].Rating.Rating, 0.0)
}

func TestUpdateDoublesRatingsSavesDoubles(t *testing.T) {
	players, _ := snapshot()
	for _, p := range players {
		p.Rating.FinalRating = 5
	}
	r := domain.MatchResult{
		ID:         1,
		Winner1:    1,
		Winner2:    2,
		Loser1:     3,
		Loser2:     4,
		Date:       time.Now().AddDate(0, 0, -30),
		WinnerSets: [5]int{6, 6},
		LoserSets:  [5]int{3, 3},
	}
	results := map[int64][]domain.MatchResult{1: {r}, 2: {r}, 3: {r}, 4: {r}}
	store := &fakeStore{players: players, results: results}
	jobs := &fakeJobs{}
	svc := New(store, jobs, rules.Config{
		Singles: rules.Default(domain.RatingSingles),
		Doubles: rules.Default(domain.RatingDoubles),
	}, 1, quietLog())

	require.NoError(t, svc.UpdateDoublesRatings(context.Background()))

	require.True(t, store.savedDoubles)
	require.False(t, store.savedSingles)
	require.Equal(t, domain.StatusCompleted, jobs.closedAs)
	require.Greater(t, players[1].Rating.DoublesRating, 0.0)
}

func TestUpdateClosesJobAsFailed(t *testing.T) {
	store := &fakeStore{loadPlayersErr: errors.New("db gone")}
	jobs := &fakeJobs{}
	svc := New(store, jobs, rules.Config{
		Singles: rules.Default(domain.RatingSingles),
		Doubles: rules.Default(domain.RatingDoubles),
	}, 1, quietLog())

	require.Error(t, svc.UpdateSinglesRatings(context.Background()))
	require.Equal(t, domain.StatusFailed, jobs.closedAs)
}
