package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/courtrank/ratingengine/internal/domain"
)

// RatingStore loads the calculation snapshot and writes the published
// ratings back.
type RatingStore interface {
	// LoadPlayers returns the whole player pool keyed by id, each with its
	// rating state and third-party rankings attached.
	LoadPlayers(ctx context.Context) (map[int64]*domain.Player, error)

	// LoadResults returns the results dated after the threshold, grouped
	// by participant. A doubles result appears under all four players.
	LoadResults(ctx context.Context, t domain.RatingType, threshold time.Time) (map[int64][]domain.MatchResult, error)

	SaveSinglesRatings(ctx context.Context, players map[int64]*domain.Player) error
	SaveDoublesRatings(ctx context.Context, players map[int64]*domain.Player) error
	SaveSubRatings(ctx context.Context, players map[int64]*domain.Player) error

	// ZeroSinglesRatings and ZeroDoublesRatings clear the ratings of
	// players stranded in disconnected pools, in batches.
	ZeroSinglesRatings(ctx context.Context, playerIDs []int64) error
	ZeroDoublesRatings(ctx context.Context, playerIDs []int64) error
}

// JobStore tracks rating runs.
type JobStore interface {
	CreateJob(ctx context.Context, job domain.RatingJob) error
	UpdateJobStatus(ctx context.Context, id uuid.UUID, status string) error
	CloseJob(ctx context.Context, id uuid.UUID, status string, endTime time.Time) error
}
