package rating

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/courtrank/ratingengine/internal/domain"
)

// StatusSink receives the run's phase transitions. The job-tracking
// collaborator implements it; tests use an in-memory recorder.
type StatusSink interface {
	UpdateJobStatus(ctx context.Context, id uuid.UUID, status string) error
}

// Run carries the identity and reporting channel of one rating run
// through the engine, replacing any engine-level mutable status.
type Run struct {
	ID   uuid.UUID
	Type domain.RatingType
	Log  *logrus.Entry

	sink   StatusSink
	status string
}

func NewRun(id uuid.UUID, t domain.RatingType, sink StatusSink, log *logrus.Entry) *Run {
	return &Run{
		ID:     id,
		Type:   t,
		Log:    log,
		sink:   sink,
		status: domain.StatusNotStarted,
	}
}

// SetPhase records a phase transition with the job tracker. A failure to
// record is fatal to the run; the caller aborts.
func (r *Run) SetPhase(ctx context.Context, status string) error {
	r.status = status
	r.Log.Info(status)
	return r.sink.UpdateJobStatus(ctx, r.ID, status)
}

// Status is the most recently recorded phase.
func (r *Run) Status() string {
	return r.status
}
