package app

import (
	"fmt"

	"github.com/dkeye/Roombox/internal/core"
	"github.com/dkeye/Roombox/internal/domain"
	"github.com/rs/zerolog/log"
)

// Queue operations check the rank gate, then the payload, then mutate.
// A rejected request leaves the room exactly as it was.

func (s *Store) AddToQueue(sid core.SessionID, item domain.QueueItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.managedRoom(sid)
	if err != nil {
		return err
	}
	if err := s.validateItem(item); err != nil {
		return err
	}

	room.Queue = append(room.Queue, item)
	s.out.Broadcast(room, SongAddedEvent{Type: EventSongAddedToQueue, Item: item})

	log.Info().Str("module", "app.queue").Str("room", string(room.ID)).Str("item", item.ID).Int("length", len(room.Queue)).Msg("song added")
	return nil
}

func (s *Store) AddPlayNext(sid core.SessionID, item domain.QueueItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.managedRoom(sid)
	if err != nil {
		return err
	}
	if err := s.validateItem(item); err != nil {
		return err
	}

	s.insertNext(room, item)
	return nil
}

func (s *Store) AddPlayNextAndPlay(sid core.SessionID, item domain.QueueItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.managedRoom(sid)
	if err != nil {
		return err
	}
	if err := s.validateItem(item); err != nil {
		return err
	}

	idx := s.insertNext(room, item)
	s.focus(room, idx)
	return nil
}

func (s *Store) PlaySong(sid core.SessionID, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.managedRoom(sid)
	if err != nil {
		return err
	}
	if _, ok := domain.ItemAt(room.Queue, index); !ok {
		return domain.ErrInvalidItem
	}

	s.focus(room, index)
	return nil
}

// insertNext places item right after the focused one and announces it.
// Duplicates are allowed.
func (s *Store) insertNext(room *domain.Room, item domain.QueueItem) int {
	idx := domain.InsertionIndex(room.FocusedItem, len(room.Queue))
	room.Queue = domain.InsertAt(room.Queue, idx, item)
	s.out.Broadcast(room, SongAddedNextEvent{Type: EventSongAddedToNext, Item: item, Index: idx})

	log.Info().Str("module", "app.queue").Str("room", string(room.ID)).Str("item", item.ID).Int("index", idx).Msg("song added next")
	return idx
}

// focus moves the focus index as given, without normalising negatives.
func (s *Store) focus(room *domain.Room, index int) {
	room.FocusedItem = index
	room.PlaybackState = domain.StateLoading
	s.out.Broadcast(room, PlaybackEvent{Type: EventPlaybackState, Index: index, State: room.PlaybackState})

	log.Info().Str("module", "app.queue").Str("room", string(room.ID)).Int("index", index).Msg("focus changed")
}

func (s *Store) validateItem(item domain.QueueItem) error {
	if err := s.validate.Struct(item); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidAddition, err)
	}
	return nil
}
