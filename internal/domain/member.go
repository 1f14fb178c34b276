package domain

// Member is a connection's participation in exactly one room.
// Role is fixed when the member is created.
type Member struct {
	SessionID SessionID `json:"session_id"`
	Name      string    `json:"name"`
	Role      Rank      `json:"role"`
}

func NewMember(sid SessionID, name string) Member {
	return Member{SessionID: sid, Name: name, Role: RankMember}
}
