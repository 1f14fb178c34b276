package app

import (
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/dkeye/Roombox/internal/core"
	"github.com/dkeye/Roombox/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

const DefaultRoomCodeLength = 6

// Store owns every live room. Each exported operation holds mu from lookup
// to broadcast, so requests never interleave their mutations.
type Store struct {
	mu     sync.Mutex
	rooms  map[domain.RoomID]*domain.Room
	byConn map[core.SessionID]domain.RoomID

	out        Notifier
	gate       Gate
	names      NameGenerator
	validate   *validator.Validate
	metrics    *Metrics
	codeLength int
}

type StoreOption func(*Store)

func WithGate(g Gate) StoreOption { return func(s *Store) { s.gate = g } }

func WithNames(n NameGenerator) StoreOption { return func(s *Store) { s.names = n } }

func WithMetrics(m *Metrics) StoreOption { return func(s *Store) { s.metrics = m } }

func WithCodeLength(n int) StoreOption {
	return func(s *Store) {
		if n > 0 {
			s.codeLength = n
		}
	}
}

func NewStore(out Notifier, opts ...StoreOption) *Store {
	s := &Store{
		rooms:      make(map[domain.RoomID]*domain.Room),
		byConn:     make(map[core.SessionID]domain.RoomID),
		out:        out,
		gate:       RankGate{},
		names:      FakeNames{},
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		codeLength: DefaultRoomCodeLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LeaveResult describes a completed leave.
type LeaveResult struct {
	Room        domain.RoomID
	Member      domain.Member
	RoomDeleted bool
}

func (s *Store) Create(sid core.SessionID) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byConn[sid]; ok {
		return domain.Room{}, domain.ErrAlreadyInRoom
	}
	// The draw below only ends once a free code exists.
	if len(s.rooms) >= codeSpace(s.codeLength) {
		return domain.Room{}, domain.ErrRoomCodesExhausted
	}

	code := s.names.RoomCode(s.codeLength)
	for s.rooms[code] != nil {
		code = s.names.RoomCode(s.codeLength)
	}

	creator := domain.Member{SessionID: sid, Name: s.names.MemberName()}
	room := domain.NewRoom(code, s.names.RoomName(), creator)
	s.rooms[code] = room
	s.byConn[sid] = code
	s.updateGauges()

	snap := room.Snapshot()
	s.reply(sid, RoomEvent{Type: EventRoomHosted, Room: snap})

	log.Info().Str("module", "app.store").Str("sid", string(sid)).Str("room", string(code)).Str("name", room.Name).Msg("room created")
	return snap, nil
}

func (s *Store) Join(sid core.SessionID, code domain.RoomID) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[code]
	if !ok {
		return domain.Room{}, domain.ErrRoomNotFound
	}
	if _, ok := s.byConn[sid]; ok {
		return domain.Room{}, domain.ErrAlreadyInRoom
	}

	member := domain.NewMember(sid, s.names.MemberName())
	// The newcomer is not a member yet, so it gets its state from the ack only.
	s.out.Broadcast(room, MemberEvent{Type: EventMemberJoined, Member: member})
	room.AddMember(member)
	s.byConn[sid] = code
	s.updateGauges()

	snap := room.Snapshot()
	s.reply(sid, RoomEvent{Type: EventJoinedRoom, Room: snap})

	log.Info().Str("module", "app.store").Str("sid", string(sid)).Str("room", string(code)).Str("name", member.Name).Msg("member joined")
	return snap, nil
}

// Leave serves both an explicit leave and disconnect cleanup. The leaver is
// told about a deleted room and then gets left_room; on disconnect both
// replies simply go nowhere.
func (s *Store) Leave(sid core.SessionID) (LeaveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.roomOf(sid)
	if !ok {
		return LeaveResult{}, domain.ErrNotInRoom
	}

	removed, _ := room.RemoveMember(sid)
	delete(s.byConn, sid)
	s.out.Broadcast(room, MemberEvent{Type: EventMemberRemoved, Member: removed})

	res := LeaveResult{Room: room.ID, Member: removed}
	if room.Empty() {
		delete(s.rooms, room.ID)
		res.RoomDeleted = true
		s.reply(sid, RoomDeletedEvent{Type: EventDeletedRoom, Room: room.ID})
		log.Info().Str("module", "app.store").Str("room", string(room.ID)).Msg("room deleted")
	}
	s.updateGauges()
	s.reply(sid, AckEvent{Type: EventLeftRoom})

	log.Info().Str("module", "app.store").Str("sid", string(sid)).Str("room", string(room.ID)).Msg("member left")
	return res, nil
}

func (s *Store) ChangePermission(sid core.SessionID, rank domain.Rank) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.roomOf(sid)
	if !ok {
		return domain.ErrNotInRoom
	}
	if err := s.gate.CanChangePermission(room, sid); err != nil {
		return err
	}
	if !rank.Valid() {
		return domain.ErrInvalidPermission
	}

	room.Permission = rank
	s.out.Broadcast(room, PermissionEvent{Type: EventPermissionChanged, Permission: rank})

	log.Info().Str("module", "app.store").Str("room", string(room.ID)).Str("permission", string(rank)).Msg("permission changed")
	return nil
}

// CheckManage runs the membership and rank checks of a queue or playback
// request without touching the room.
func (s *Store) CheckManage(sid core.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.managedRoom(sid)
	return err
}

// CheckOwner runs the membership and ownership checks of a permission change.
func (s *Store) CheckOwner(sid core.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.roomOf(sid)
	if !ok {
		return domain.ErrNotInRoom
	}
	return s.gate.CanChangePermission(room, sid)
}

// Whois reports sid's member record and room in one read.
func (s *Store) Whois(sid core.SessionID) (domain.Member, domain.RoomID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.roomOf(sid)
	if !ok {
		return domain.Member{}, "", false
	}
	m, ok := room.Member(sid)
	return m, room.ID, ok
}

// Welcome sends the whole registry to a newly connected session and to
// nobody else.
func (s *Store) Welcome(sid core.SessionID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reply(sid, RoomsListEvent{Type: EventRoomsList, Rooms: s.list()})
}

// List returns a snapshot of every live room ordered by code.
func (s *Store) List() []domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list()
}

func (s *Store) list() []domain.Room {
	out := make([]domain.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r.Snapshot())
	}
	slices.SortFunc(out, func(a, b domain.Room) int {
		return strings.Compare(string(a.ID), string(b.ID))
	})
	return out
}

func (s *Store) Summaries() []core.RoomInfo {
	rooms := s.List()
	out := make([]core.RoomInfo, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, core.RoomInfo{
			ID:          r.ID,
			Name:        r.Name,
			MemberCount: len(r.Members),
			QueueLength: len(r.Queue),
		})
	}
	return out
}

// Room returns a snapshot of one room.
func (s *Store) Room(code domain.RoomID) (domain.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[code]
	if !ok {
		return domain.Room{}, false
	}
	return r.Snapshot(), true
}

// RoomOf reports the code of the room sid belongs to.
func (s *Store) RoomOf(sid core.SessionID) (domain.RoomID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.byConn[sid]
	return code, ok
}

func (s *Store) roomOf(sid core.SessionID) (*domain.Room, bool) {
	code, ok := s.byConn[sid]
	if !ok {
		return nil, false
	}
	room, ok := s.rooms[code]
	return room, ok
}

// managedRoom resolves the requester's room and applies the rank gate.
func (s *Store) managedRoom(sid core.SessionID) (*domain.Room, error) {
	room, ok := s.roomOf(sid)
	if !ok {
		return nil, domain.ErrNotInRoom
	}
	actor, _ := room.Member(sid)
	if err := s.gate.CanManage(room, actor); err != nil {
		return nil, err
	}
	return room, nil
}

// reply answers the requester while the lock is still held, so the answer is
// queued ahead of any later broadcast. A gone connection is not an error.
func (s *Store) reply(sid core.SessionID, event any) {
	if err := s.out.Send(sid, event); err != nil {
		log.Debug().Err(err).Str("module", "app.store").Str("sid", string(sid)).Msg("reply not delivered")
	}
}

func (s *Store) updateGauges() {
	s.metrics.SetRooms(len(s.rooms))
	s.metrics.SetMembers(len(s.byConn))
}

// codeSpace is how many distinct codes of length n exist.
func codeSpace(n int) int {
	if n >= 18 {
		return math.MaxInt
	}
	space := 1
	for range n {
		space *= 10
	}
	return space
}
