package domain

type Gender string

const (
	GenderMale   Gender = "m"
	GenderFemale Gender = "f"
)

type RatingType string

const (
	RatingSingles RatingType = "singles"
	RatingDoubles RatingType = "doubles"
)

// ThirdPartyRanking is an external tour ranking attached to a player,
// used only to decide whether the player is in the elite band.
type ThirdPartyRanking struct {
	Source string
	Type   string
	Rank   int
}

type Player struct {
	ID          int64
	DisplayName string
	Gender      Gender
	CountryID   int64
	CollegeID   int64
	Rankings    []ThirdPartyRanking
	Rating      *RatingState
}

const eliteRankCutoff = 700

// IsElite reports whether the player holds a current ATP or WTA singles
// ranking inside the top band that earns sub-rating computation.
func (p *Player) IsElite() bool {
	for _, r := range p.Rankings {
		if (r.Source == "ATP" || r.Source == "WTA") && r.Type == "Singles" && r.Rank <= eliteRankCutoff {
			return true
		}
	}
	return false
}

func (p *Player) IsCollege() bool {
	return p.CollegeID > 0
}
