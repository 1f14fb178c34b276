package domain

// Rank is shared by a member's role and a room's required permission.
type Rank string

const (
	RankCreator Rank = "creator"
	RankMember  Rank = "member"
)

// Level orders ranks; unknown ranks sit below every valid one.
func (r Rank) Level() int {
	switch r {
	case RankCreator:
		return 2
	case RankMember:
		return 1
	}
	return 0
}

func (r Rank) Valid() bool { return r.Level() > 0 }
