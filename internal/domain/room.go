// Package domain contains listening-room entities and the pure rules over
// them. No transport, locking or logging here.
package domain

type (
	RoomID    string
	SessionID string
)

// Room is one listening session. Members keep join order.
type Room struct {
	ID      RoomID    `json:"id"`
	Name    string    `json:"name"`
	Creator SessionID `json:"creator"`
	// Permission is the minimum rank required to manage queue and playback.
	// It is not the rank of any particular member.
	Permission    Rank          `json:"permission"`
	Members       []Member      `json:"members"`
	Queue         []QueueItem   `json:"queue"`
	FocusedItem   int           `json:"focused_item"`
	PlaybackState PlaybackState `json:"playback_state"`
}

// NewRoom builds a room whose only member is its creator.
func NewRoom(id RoomID, name string, creator Member) *Room {
	creator.Role = RankCreator
	return &Room{
		ID:            id,
		Name:          name,
		Creator:       creator.SessionID,
		Permission:    RankCreator,
		Members:       []Member{creator},
		Queue:         []QueueItem{},
		FocusedItem:   0,
		PlaybackState: StateFinished,
	}
}

func (r *Room) MemberIndex(sid SessionID) int {
	for i, m := range r.Members {
		if m.SessionID == sid {
			return i
		}
	}
	return -1
}

func (r *Room) Member(sid SessionID) (Member, bool) {
	if i := r.MemberIndex(sid); i >= 0 {
		return r.Members[i], true
	}
	return Member{}, false
}

func (r *Room) AddMember(m Member) {
	r.Members = append(r.Members, m)
}

// RemoveMember drops the member and keeps the order of the others.
func (r *Room) RemoveMember(sid SessionID) (Member, bool) {
	i := r.MemberIndex(sid)
	if i < 0 {
		return Member{}, false
	}
	removed := r.Members[i]
	r.Members = append(r.Members[:i], r.Members[i+1:]...)
	return removed, true
}

func (r *Room) Empty() bool { return len(r.Members) == 0 }

// Snapshot returns a deep copy safe to hand out of the store.
func (r *Room) Snapshot() Room {
	out := *r
	out.Members = append(make([]Member, 0, len(r.Members)), r.Members...)
	out.Queue = append(make([]QueueItem, 0, len(r.Queue)), r.Queue...)
	return out
}
