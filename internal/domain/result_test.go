package domain

import (
	"errors"
	"testing"
)

func result(winnerSets, loserSets [5]int) MatchResult {
	return MatchResult{
		ID:         1,
		Winner1:    10,
		Loser1:     20,
		WinnerSets: winnerSets,
		LoserSets:  loserSets,
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		winner [5]int
		loser  [5]int
		want   MatchFormat
	}{
		{
			name:   "best of three",
			winner: [5]int{6, 6},
			loser:  [5]int{3, 4},
			want:   BestOfThreeSets,
		},
		{
			name:   "best of three with decider",
			winner: [5]int{6, 4, 6},
			loser:  [5]int{3, 6, 2},
			want:   BestOfThreeSets,
		},
		{
			name:   "one set",
			winner: [5]int{6},
			loser:  [5]int{4},
			want:   OneSet,
		},
		{
			name:   "eight game pro set",
			winner: [5]int{8},
			loser:  [5]int{5},
			want:   EightGameProSet,
		},
		{
			name:   "mini set",
			winner: [5]int{4},
			loser:  [5]int{2},
			want:   MiniSet,
		},
		{
			name:   "best of five by fourth set",
			winner: [5]int{6, 4, 6, 6},
			loser:  [5]int{4, 6, 3, 4},
			want:   BestOfFiveSets,
		},
		{
			name:   "best of five straight sets",
			winner: [5]int{6, 6, 6},
			loser:  [5]int{4, 3, 2},
			want:   BestOfFiveSets,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := result(tt.winner, tt.loser)
			if got := r.Format(); got != tt.want {
				t.Errorf("Format() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWinnerGameCountTiebreakCredit(t *testing.T) {
	r := result([5]int{6, 4, 1}, [5]int{3, 6, 0})
	if got := r.WinnerGameCount(); got != 12 {
		t.Errorf("WinnerGameCount() = %d, want 12", got)
	}
	if got := r.LoserGameCount(); got != 9 {
		t.Errorf("LoserGameCount() = %d, want 9", got)
	}
}

func TestPercentOfGamesWon(t *testing.T) {
	r := result([5]int{6, 6}, [5]int{3, 3})
	winnerPct, err := r.PercentOfGamesWon(10)
	if err != nil {
		t.Fatal(err)
	}
	if winnerPct != 12.0/18.0 {
		t.Errorf("winner pct = %v, want %v", winnerPct, 12.0/18.0)
	}
	loserPct, err := r.PercentOfGamesWon(20)
	if err != nil {
		t.Fatal(err)
	}
	if loserPct != 6.0/18.0 {
		t.Errorf("loser pct = %v, want %v", loserPct, 6.0/18.0)
	}
	_, err = r.PercentOfGamesWon(99)
	if !errors.Is(err, ErrNotAParticipant) {
		t.Errorf("err = %v, want ErrNotAParticipant", err)
	}
}

func TestScoreIsValid(t *testing.T) {
	tests := []struct {
		name   string
		winner [5]int
		loser  [5]int
		want   bool
	}{
		{
			name:   "regular set",
			winner: [5]int{6, 6},
			loser:  [5]int{4, 4},
			want:   true,
		},
		{
			name:   "first set too short",
			winner: [5]int{2},
			loser:  [5]int{1},
			want:   false,
		},
		{
			name:   "loser reached four",
			winner: [5]int{2},
			loser:  [5]int{4},
			want:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := result(tt.winner, tt.loser)
			if got := r.ScoreIsValid(); got != tt.want {
				t.Errorf("ScoreIsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCompetitive(t *testing.T) {
	tests := []struct {
		name   string
		winner [5]int
		loser  [5]int
		want   bool
	}{
		{
			name:   "competitive best of three",
			winner: [5]int{6, 6},
			loser:  [5]int{4, 3},
			want:   true,
		},
		{
			name:   "routine best of three",
			winner: [5]int{6, 6},
			loser:  [5]int{2, 1},
			want:   false,
		},
		{
			name:   "competitive one set",
			winner: [5]int{6},
			loser:  [5]int{4},
			want:   true,
		},
		{
			name:   "decisive one set",
			winner: [5]int{6},
			loser:  [5]int{1},
			want:   false,
		},
		{
			name:   "competitive pro set",
			winner: [5]int{8},
			loser:  [5]int{6},
			want:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := result(tt.winner, tt.loser)
			if got := r.IsCompetitive(); got != tt.want {
				t.Errorf("IsCompetitive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOpponent(t *testing.T) {
	r := result([5]int{6, 6}, [5]int{1, 2})
	if got := r.Opponent(10); got != 20 {
		t.Errorf("Opponent(winner) = %d, want 20", got)
	}
	if got := r.Opponent(20); got != 10 {
		t.Errorf("Opponent(loser) = %d, want 10", got)
	}
}

func TestSetCount(t *testing.T) {
	r := result([5]int{6, 4, 6}, [5]int{3, 6, 2})
	if got := r.SetCount(); got != 3 {
		t.Errorf("SetCount() = %d, want 3", got)
	}
}

func TestIsElite(t *testing.T) {
	p := Player{Rankings: []ThirdPartyRanking{{Source: "ATP", Type: "Singles", Rank: 699}}}
	if !p.IsElite() {
		t.Error("top ATP singles rank should be elite")
	}
	p.Rankings[0].Rank = 701
	if p.IsElite() {
		t.Error("rank past the cutoff should not be elite")
	}
	p.Rankings[0].Rank = 5
	p.Rankings[0].Type = "Doubles"
	if p.IsElite() {
		t.Error("doubles ranking should not count")
	}
}
