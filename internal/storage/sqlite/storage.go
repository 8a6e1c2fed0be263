package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/courtrank/ratingengine/gen/model"
	"github.com/courtrank/ratingengine/gen/table"
	"github.com/courtrank/ratingengine/internal/domain"
	"github.com/courtrank/ratingengine/internal/storage"
)

// zeroBatchSize bounds the IN list of one disconnected-pool update.
const zeroBatchSize = 2000

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.RatingStore = (*Storage)(nil)
var _ storage.JobStore = (*Storage)(nil)

func New(db *sql.DB, log *logrus.Logger) *Storage {
	return &Storage{
		db:  db,
		log: log.WithField("module", "storage"),
	}
}

func (s *Storage) LoadPlayers(ctx context.Context) (map[int64]*domain.Player, error) {
	var rows []struct {
		model.Players
		Rankings []model.ThirdPartyRankings
		Rating   model.PlayerRatings
	}
	err := table.Players.
		SELECT(
			table.Players.AllColumns,
			table.ThirdPartyRankings.AllColumns,
			table.PlayerRatings.AllColumns,
		).
		FROM(table.Players.
			LEFT_JOIN(table.ThirdPartyRankings, table.ThirdPartyRankings.PlayerID.EQ(table.Players.ID)).
			LEFT_JOIN(table.PlayerRatings, table.PlayerRatings.PlayerID.EQ(table.Players.ID)),
		).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, err
	}
	players := make(map[int64]*domain.Player, len(rows))
	for _, row := range rows {
		p := convertPlayerToDomain(row.Players, row.Rankings, row.Rating)
		p.Rating.PlayerID = p.ID
		players[p.ID] = p
	}
	return players, nil
}

func (s *Storage) LoadResults(ctx context.Context, t domain.RatingType, threshold time.Time) (map[int64][]domain.MatchResult, error) {
	teamFilter := table.Results.Winner2ID.IS_NULL()
	if t == domain.RatingDoubles {
		teamFilter = table.Results.Winner2ID.IS_NOT_NULL()
	}
	var rows []model.Results
	err := table.Results.
		SELECT(table.Results.AllColumns).
		FROM(table.Results).
		WHERE(teamFilter).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, err
	}
	resultsByPlayer := make(map[int64][]domain.MatchResult)
	for _, row := range rows {
		r := convertResultToDomain(row)
		if !r.Date.After(threshold) {
			continue
		}
		for _, id := range []int64{r.Winner1, r.Winner2, r.Loser1, r.Loser2} {
			if id == 0 {
				continue
			}
			resultsByPlayer[id] = append(resultsByPlayer[id], r)
		}
	}
	return resultsByPlayer, nil
}

func (s *Storage) SaveSinglesRatings(ctx context.Context, players map[int64]*domain.Player) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, p := range players {
		st := p.Rating
		active := st.ActiveSinglesResults
		m := model.PlayerRatings{
			Rating:               st.Rating,
			RatingReliability:    st.Reliability,
			ActualRating:         st.ActualRating,
			FinalRating:          st.FinalRating,
			CompetitiveMatchPct:  st.CompetitiveMatchPct,
			RoutineMatchPct:      st.RoutineMatchPct,
			DecisiveMatchPct:     st.DecisiveMatchPct,
			ActiveSinglesResults: &active,
		}
		_, err = table.PlayerRatings.
			UPDATE(
				table.PlayerRatings.Rating,
				table.PlayerRatings.RatingReliability,
				table.PlayerRatings.ActualRating,
				table.PlayerRatings.FinalRating,
				table.PlayerRatings.CompetitiveMatchPct,
				table.PlayerRatings.RoutineMatchPct,
				table.PlayerRatings.DecisiveMatchPct,
				table.PlayerRatings.ActiveSinglesResults,
			).
			MODEL(m).
			WHERE(table.PlayerRatings.PlayerID.EQ(sqlite.Int(p.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SaveDoublesRatings writes every doubles field of a player's row in one
// statement.
func (s *Storage) SaveDoublesRatings(ctx context.Context, players map[int64]*domain.Player) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, p := range players {
		st := p.Rating
		active := st.ActiveDoublesResults
		m := model.PlayerRatings{
			DoublesRating:              st.DoublesRating,
			DoublesReliability:         st.DoublesReliability,
			FinalDoublesRating:         st.FinalDoublesRating,
			DoublesBenchmarkRating:     st.DoublesBenchmarkRating,
			CompetitiveMatchPctDoubles: st.CompetitiveMatchPctDoubles,
			ActiveDoublesResults:       &active,
		}
		_, err = table.PlayerRatings.
			UPDATE(
				table.PlayerRatings.DoublesRating,
				table.PlayerRatings.DoublesReliability,
				table.PlayerRatings.FinalDoublesRating,
				table.PlayerRatings.DoublesBenchmarkRating,
				table.PlayerRatings.CompetitiveMatchPctDoubles,
				table.PlayerRatings.ActiveDoublesResults,
			).
			MODEL(m).
			WHERE(table.PlayerRatings.PlayerID.EQ(sqlite.Int(p.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// SaveSubRatings replaces each elite player's sub-rating row.
func (s *Storage) SaveSubRatings(ctx context.Context, players map[int64]*domain.Player) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	for _, p := range players {
		if p.Rating.SubRatings == nil {
			continue
		}
		_, err = table.SubRatings.
			DELETE().
			WHERE(table.SubRatings.PlayerRatingID.EQ(sqlite.Int(p.Rating.ID))).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
		_, err = table.SubRatings.
			INSERT(table.SubRatings.MutableColumns).
			MODEL(convertSubRatingsFromDomain(p.Rating.SubRatings)).
			ExecContext(ctx, tx)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (s *Storage) ZeroSinglesRatings(ctx context.Context, playerIDs []int64) error {
	return s.zeroRatings(ctx, playerIDs,
		[]sqlite.Column{
			table.PlayerRatings.Rating,
			table.PlayerRatings.RatingReliability,
			table.PlayerRatings.ActualRating,
			table.PlayerRatings.FinalRating,
		})
}

func (s *Storage) ZeroDoublesRatings(ctx context.Context, playerIDs []int64) error {
	return s.zeroRatings(ctx, playerIDs,
		[]sqlite.Column{
			table.PlayerRatings.DoublesRating,
			table.PlayerRatings.DoublesReliability,
			table.PlayerRatings.FinalDoublesRating,
		})
}

func (s *Storage) zeroRatings(ctx context.Context, playerIDs []int64, columns []sqlite.Column) error {
	for start := 0; start < len(playerIDs); start += zeroBatchSize {
		end := start + zeroBatchSize
		if end > len(playerIDs) {
			end = len(playerIDs)
		}
		batch := playerIDs[start:end]
		ids := make([]sqlite.Expression, 0, len(batch))
		for _, id := range batch {
			ids = append(ids, sqlite.Int(id))
		}
		zeros := make([]interface{}, 0, len(columns))
		for range columns {
			zeros = append(zeros, sqlite.Float(0))
		}
		cols := make(sqlite.ColumnList, 0, len(columns))
		cols = append(cols, columns...)
		_, err := table.PlayerRatings.
			UPDATE(cols).
			SET(zeros[0], zeros[1:]...).
			WHERE(table.PlayerRatings.PlayerID.IN(ids...)).
			ExecContext(ctx, s.db)
		if err != nil {
			return err
		}
		s.log.WithField("players", len(batch)).Info("cleared ratings of disconnected pool batch")
	}
	return nil
}

func (s *Storage) CreateJob(ctx context.Context, job domain.RatingJob) error {
	m := model.RatingJobs{
		ID:        job.ID.String(),
		JobType:   string(job.Type),
		StartTime: job.StartTime,
		EndTime:   job.EndTime,
		Status:    job.Status,
	}
	_, err := table.RatingJobs.
		INSERT(table.RatingJobs.AllColumns).
		MODEL(m).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) UpdateJobStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := table.RatingJobs.
		UPDATE(table.RatingJobs.Status).
		SET(sqlite.String(status)).
		WHERE(table.RatingJobs.ID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, s.db)
	return err
}

func (s *Storage) CloseJob(ctx context.Context, id uuid.UUID, status string, endTime time.Time) error {
	m := model.RatingJobs{
		Status:  status,
		EndTime: &endTime,
	}
	_, err := table.RatingJobs.
		UPDATE(table.RatingJobs.Status, table.RatingJobs.EndTime).
		MODEL(m).
		WHERE(table.RatingJobs.ID.EQ(sqlite.String(id.String()))).
		ExecContext(ctx, s.db)
	return err
}
