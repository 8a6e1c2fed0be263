package domain

import (
	"errors"
	"time"
)

var ErrNotAParticipant = errors.New("player does not match any participant in this result")

type Surface string

const (
	SurfaceHard      Surface = "hard"
	SurfaceClay      Surface = "clay"
	SurfaceGrass     Surface = "grass"
	SurfaceSynthetic Surface = "synthetic"
	SurfaceOther     Surface = "other"
	SurfaceUnknown   Surface = "unknown"
)

type MatchFormat int

const (
	MiniSet MatchFormat = iota
	EightGameProSet
	BestOfThreeSets
	OneSet
	BestOfFiveSets
)

func (f MatchFormat) String() string {
	switch f {
	case MiniSet:
		return "mini set"
	case EightGameProSet:
		return "8-game pro set"
	case BestOfThreeSets:
		return "best of 3"
	case OneSet:
		return "one set"
	case BestOfFiveSets:
		return "best of 5"
	}
	return "unknown"
}

// Loser game counts a match format requires before the loser is considered
// to have made it competitive.
const (
	competitiveThresholdSix      = 4
	competitiveThresholdEight    = 5
	competitiveThresholdTwelve   = 7
	competitiveThresholdEighteen = 12
)

// MatchResult is one recorded match. Winner2/Loser2 are zero for singles.
// Everything below the stored fields is derived, never persisted.
type MatchResult struct {
	ID       int64
	Winner1  int64
	Winner2  int64
	Loser1   int64
	Loser2   int64
	TeamType string

	Date    time.Time
	Surface Surface

	IsMastersOrGrandslam bool
	DataImportType       int64
	DataImportSubType    string
	Competitiveness      string

	DNF           bool
	CompletedSets int

	WinnerSets [5]int
	LoserSets  [5]int
}

const collegeImportType = 6

func (r *MatchResult) IsCollegeMatch() bool {
	return r.DataImportType == collegeImportType
}

func (r *MatchResult) IsCompetitiveLabel() bool {
	return r.Competitiveness == "Competitive" || r.Competitiveness == "competitive"
}

// WinnerGameCount credits the winner with 2 games when the third set is a
// match tiebreak (e.g. 6-3, 4-6, 1-0).
func (r *MatchResult) WinnerGameCount() int {
	third := r.WinnerSets[2]
	if third == 1 {
		third = 2
	}
	return r.WinnerSets[0] + r.WinnerSets[1] + third + r.WinnerSets[3] + r.WinnerSets[4]
}

func (r *MatchResult) LoserGameCount() int {
	total := 0
	for _, g := range r.LoserSets {
		total += g
	}
	return total
}

// PercentOfGamesWon is the fraction of total games taken by the side the
// given player was on.
func (r *MatchResult) PercentOfGamesWon(playerID int64) (float64, error) {
	total := float64(r.WinnerGameCount() + r.LoserGameCount())
	if playerID == r.Winner1 || (r.Winner2 != 0 && playerID == r.Winner2) {
		return float64(r.WinnerGameCount()) / total, nil
	}
	if playerID == r.Loser1 || (r.Loser2 != 0 && playerID == r.Loser2) {
		return float64(r.LoserGameCount()) / total, nil
	}
	return 0, ErrNotAParticipant
}

// Opponent returns the singles opponent of the given player.
func (r *MatchResult) Opponent(playerID int64) int64 {
	if r.Winner1 == playerID {
		return r.Loser1
	}
	return r.Winner1
}

// ScoreIsValid requires at least one side to have reached 4 games in the
// first set, or in the second set when one was played.
func (r *MatchResult) ScoreIsValid() bool {
	if r.WinnerSets[0] < 4 && r.LoserSets[0] < 4 {
		return false
	}
	if r.WinnerSets[1] < 4 && r.LoserSets[1] < 4 && r.WinnerSets[1] > 0 &&
		r.LoserSets[1] > 0 && r.WinnerGameCount() < 4 && r.LoserGameCount() < 4 {
		return false
	}
	return true
}

// Format derives the match format from the set scores.
func (r *MatchResult) Format() MatchFormat {
	if r.WinnerSets[0] > 7 {
		return EightGameProSet
	}
	if r.WinnerSets[0] < 6 && r.LoserSets[0] < 6 {
		return MiniSet
	}
	if r.WinnerSets[1] <= 0 && r.LoserSets[1] <= 0 {
		return OneSet
	}
	if r.WinnerSets[3] > 0 || r.LoserSets[3] > 0 ||
		(r.WinnerSets[0] > r.LoserSets[0] && r.WinnerSets[1] > r.LoserSets[1] && r.WinnerSets[2] > r.LoserSets[2]) {
		return BestOfFiveSets
	}
	return BestOfThreeSets
}

// IsCompetitive reports whether the loser reached the competitive game
// threshold for the match format.
func (r *MatchResult) IsCompetitive() bool {
	loserGames := r.LoserGameCount()
	switch r.Format() {
	case MiniSet, EightGameProSet:
		return loserGames >= competitiveThresholdEight
	case BestOfThreeSets:
		return loserGames >= competitiveThresholdTwelve
	case OneSet:
		return loserGames >= competitiveThresholdSix
	case BestOfFiveSets:
		return loserGames >= competitiveThresholdEighteen
	}
	return false
}

// SetCount is the number of sets the winner put games on the board in.
func (r *MatchResult) SetCount() int {
	n := 0
	for _, s := range r.WinnerSets {
		if s != 0 {
			n++
		}
	}
	return n
}
