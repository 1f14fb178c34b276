package signal

import (
	"errors"

	"github.com/dkeye/Roombox/internal/domain"
)

var (
	ErrBadPayload     = errors.New("bad payload")
	ErrRateLimited    = errors.New("rate limited")
	ErrUnknownRequest = errors.New("unknown request")
)

var errorEvents = []struct {
	err   error
	event string
}{
	{domain.ErrAlreadyInRoom, "error:already_in_room"},
	{domain.ErrRoomNotFound, "error:invalid_room_code"},
	{domain.ErrNotInRoom, "error:not_in_a_room"},
	{domain.ErrNoPermission, "error:no_permission_to_manage"},
	{domain.ErrNotRoomCreator, "error:not_room_creator"},
	{domain.ErrInvalidPermission, "error:invalid_permission"},
	{domain.ErrInvalidAddition, "error:invalid_addition"},
	{domain.ErrInvalidItem, "error:invalid_item"},
	{domain.ErrInvalidPlaybackState, "error:invalid_playback_state"},
	{domain.ErrRoomCodesExhausted, "error:no_free_room_code"},
	{ErrBadPayload, "error:bad_payload"},
	{ErrRateLimited, "error:rate_limited"},
	{ErrUnknownRequest, "error:unknown_request"},
}

func errorEvent(err error) string {
	for _, e := range errorEvents {
		if errors.Is(err, e.err) {
			return e.event
		}
	}
	return "error:internal"
}
