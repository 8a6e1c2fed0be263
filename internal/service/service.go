// Package service orchestrates rating runs: job bookkeeping, snapshot
// loading, engine iterations, persistence and disconnected-pool cleanup.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/courtrank/ratingengine/internal/domain"
	"github.com/courtrank/ratingengine/internal/graph"
	"github.com/courtrank/ratingengine/internal/rating"
	"github.com/courtrank/ratingengine/internal/rules"
	"github.com/courtrank/ratingengine/internal/storage"
)

// resultWindowMonths is how far back eligible results reach.
const resultWindowMonths = 12

type Service struct {
	store      storage.RatingStore
	jobs       storage.JobStore
	rules      rules.Config
	iterations int
	log        *logrus.Logger
}

func New(store storage.RatingStore, jobs storage.JobStore, ruleCfg rules.Config, iterations int, log *logrus.Logger) *Service {
	return &Service{
		store:      store,
		jobs:       jobs,
		rules:      ruleCfg,
		iterations: iterations,
		log:        log,
	}
}

func (s *Service) UpdateSinglesRatings(ctx context.Context) error {
	return s.update(ctx, domain.RatingSingles)
}

func (s *Service) UpdateDoublesRatings(ctx context.Context) error {
	return s.update(ctx, domain.RatingDoubles)
}

func (s *Service) update(ctx context.Context, t domain.RatingType) (err error) {
	rule := s.rules.Singles
	if t == domain.RatingDoubles {
		rule = s.rules.Doubles
	}
	rule.ResultThreshold = time.Now().AddDate(0, -resultWindowMonths, 0)

	job := domain.RatingJob{
		ID:        uuid.New(),
		Type:      t,
		StartTime: time.Now(),
		Status:    domain.StatusNotStarted,
	}
	if err := s.jobs.CreateJob(ctx, job); err != nil {
		return fmt.Errorf("create job: %w", err)
	}
	log := s.log.WithFields(logrus.Fields{
		"module": "service",
		"job":    job.ID,
		"type":   t,
	})
	run := rating.NewRun(job.ID, t, s.jobs, log)
	defer func() {
		status := domain.StatusCompleted
		if err != nil {
			status = domain.StatusFailed
			log.WithError(err).Error("rating run failed")
		}
		// The run context may already be canceled; the job row still has
		// to be closed.
		if closeErr := s.jobs.CloseJob(context.Background(), job.ID, status, time.Now()); closeErr != nil {
			log.WithError(closeErr).Error("close job")
		}
	}()

	if err = run.SetPhase(ctx, domain.StatusLoadingPlayers); err != nil {
		return err
	}
	players, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return fmt.Errorf("load players: %w", err)
	}
	if err = run.SetPhase(ctx, domain.StatusLoadingResults); err != nil {
		return err
	}
	results, err := s.store.LoadResults(ctx, t, rule.ResultThreshold)
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}
	log.WithFields(logrus.Fields{
		"players":      len(players),
		"participants": len(results),
	}).Info("snapshot loaded")

	if t == domain.RatingSingles {
		err = s.runSingles(ctx, run, rule, players, results)
	} else {
		err = s.runDoubles(ctx, run, rule, players, results)
	}
	if err != nil {
		return err
	}

	if err = run.SetPhase(ctx, domain.StatusDisconnectedPools); err != nil {
		return err
	}
	stranded := graph.DisconnectedPools(results, rule.DisconnectedPoolThreshold)
	if len(stranded) > 0 {
		log.WithField("players", len(stranded)).Info("clearing ratings of disconnected pools")
		if t == domain.RatingSingles {
			err = s.store.ZeroSinglesRatings(ctx, stranded)
		} else {
			err = s.store.ZeroDoublesRatings(ctx, stranded)
		}
		if err != nil {
			return fmt.Errorf("zero disconnected pools: %w", err)
		}
	}
	return nil
}

func (s *Service) runSingles(ctx context.Context, run *rating.Run, rule rules.Set, players map[int64]*domain.Player, results map[int64][]domain.MatchResult) error {
	engine := rating.NewSingles(rule, run.Log)
	for i := 1; i <= s.iterations; i++ {
		if err := run.SetPhase(ctx, fmt.Sprintf(domain.StatusIterationFmt, i)); err != nil {
			return err
		}
		if err := engine.Iterate(players, results); err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}
	}
	if err := run.SetPhase(ctx, domain.StatusCompetitiveness); err != nil {
		return err
	}
	if err := engine.Competitiveness(players, results); err != nil {
		return fmt.Errorf("competitiveness: %w", err)
	}
	if err := run.SetPhase(ctx, domain.StatusCorrecting); err != nil {
		return err
	}
	engine.Normalize(players, results)
	if err := run.SetPhase(ctx, domain.StatusSavingSubRatings); err != nil {
		return err
	}
	if err := s.store.SaveSubRatings(ctx, players); err != nil {
		return fmt.Errorf("save sub ratings: %w", err)
	}
	if err := run.SetPhase(ctx, domain.StatusSavingRatings); err != nil {
		return err
	}
	if err := s.store.SaveSinglesRatings(ctx, players); err != nil {
		return fmt.Errorf("save ratings: %w", err)
	}
	return nil
}

func (s *Service) runDoubles(ctx context.Context, run *rating.Run, rule rules.Set, players map[int64]*domain.Player, results map[int64][]domain.MatchResult) error {
	engine := rating.NewDoubles(rule, run.Log)
	for i := 1; i <= s.iterations; i++ {
		if err := run.SetPhase(ctx, fmt.Sprintf(domain.StatusIterationFmt, i)); err != nil {
			return err
		}
		if err := engine.Iterate(players, results); err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}
	}
	if err := run.SetPhase(ctx, domain.StatusCompetitiveness); err != nil {
		return err
	}
	engine.Competitiveness(players, results)
	if err := run.SetPhase(ctx, domain.StatusCorrecting); err != nil {
		return err
	}
	engine.Normalize(players, results)
	if err := run.SetPhase(ctx, domain.StatusSavingRatings); err != nil {
		return err
	}
	if err := s.store.SaveDoublesRatings(ctx, players); err != nil {
		return fmt.Errorf("save ratings: %w", err)
	}
	return nil
}
