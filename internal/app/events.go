package app

import "github.com/dkeye/Roombox/internal/domain"

// Outbound event names.
const (
	EventRoomsList         = "rooms_list"
	EventRoomHosted        = "room_hosted"
	EventJoinedRoom        = "joined_room"
	EventMemberJoined      = "member_joined"
	EventMemberRemoved     = "member_removed"
	EventDeletedRoom       = "deleted_room"
	EventLeftRoom          = "left_room"
	EventPermissionChanged = "permission_set_changed"
	EventSongAddedToQueue  = "song_added_to_queue"
	EventSongAddedToNext   = "song_added_to_next"
	EventPlaybackState     = "playback_state"
	EventPong              = "pong"
)

type RoomsListEvent struct {
	Type  string        `json:"type"`
	Rooms []domain.Room `json:"rooms"`
}

type RoomEvent struct {
	Type string      `json:"type"`
	Room domain.Room `json:"room"`
}

type MemberEvent struct {
	Type   string        `json:"type"`
	Member domain.Member `json:"member"`
}

type RoomDeletedEvent struct {
	Type string        `json:"type"`
	Room domain.RoomID `json:"room"`
}

type PermissionEvent struct {
	Type       string      `json:"type"`
	Permission domain.Rank `json:"permission"`
}

type SongAddedEvent struct {
	Type string           `json:"type"`
	Item domain.QueueItem `json:"item"`
}

type SongAddedNextEvent struct {
	Type  string           `json:"type"`
	Item  domain.QueueItem `json:"item"`
	Index int              `json:"index"`
}

type PlaybackEvent struct {
	Type  string               `json:"type"`
	Index int                  `json:"index"`
	State domain.PlaybackState `json:"state"`
}

// AckEvent carries nothing but its type.
type AckEvent struct {
	Type string `json:"type"`
}

type ErrorEvent struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
}
