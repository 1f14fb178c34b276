package core

import "github.com/dkeye/Roombox/internal/domain"

// PublishResult reports delivery stats of one broadcast.
type PublishResult struct {
	SendTo  int
	Dropped []SessionID
}

// RoomInfo is a read-only summary for listing APIs.
type RoomInfo struct {
	ID          domain.RoomID `json:"id"`
	Name        string        `json:"name"`
	MemberCount int           `json:"member_count"`
	QueueLength int           `json:"queue_length"`
}
