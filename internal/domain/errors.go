package domain

import "errors"

var (
	// membership
	ErrAlreadyInRoom = errors.New("already in a room")
	ErrRoomNotFound  = errors.New("room not found")
	ErrNotInRoom     = errors.New("not in a room")

	// authorization
	ErrNoPermission   = errors.New("no permission to manage room")
	ErrNotRoomCreator = errors.New("not the room creator")

	// validation
	ErrInvalidPermission    = errors.New("invalid permission")
	ErrInvalidAddition      = errors.New("invalid queue item")
	ErrInvalidItem          = errors.New("no item at index")
	ErrInvalidPlaybackState = errors.New("invalid playback state")

	// capacity
	ErrRoomCodesExhausted = errors.New("no free room codes")
)
