package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status strings a rating run reports at each phase transition. The job
// tracking collaborator observes these verbatim.
const (
	StatusNotStarted        = "Not started"
	StatusLoadingPlayers    = "Loading players..."
	StatusLoadingResults    = "Loading results..."
	StatusCompetitiveness   = "Calculating competitiveness..."
	StatusCorrecting        = "Correcting players..."
	StatusSavingSubRatings  = "Saving sub ratings..."
	StatusSavingRatings     = "Saving ratings..."
	StatusDisconnectedPools = "Checking for disconnected pools..."
	StatusCompleted         = "Completed"
	StatusFailed            = "Failed"
	StatusIterationFmt      = "Running calculations - Iteration %d"
)

type RatingJob struct {
	ID        uuid.UUID
	Type      RatingType
	StartTime time.Time
	EndTime   *time.Time
	Status    string
}
