package app

import (
	"github.com/dkeye/Roombox/internal/core"
	"github.com/dkeye/Roombox/internal/domain"
	"github.com/rs/zerolog/log"
)

// SetPlaybackState overwrites the state with no transition check.
func (s *Store) SetPlaybackState(sid core.SessionID, state domain.PlaybackState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.managedRoom(sid)
	if err != nil {
		return err
	}
	if !state.Valid() {
		return domain.ErrInvalidPlaybackState
	}

	room.PlaybackState = state
	s.out.Broadcast(room, PlaybackEvent{Type: EventPlaybackState, Index: room.FocusedItem, State: state})

	log.Debug().Str("module", "app.playback").Str("room", string(room.ID)).Str("state", string(state)).Msg("playback state")
	return nil
}
