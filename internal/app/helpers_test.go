package app

import (
	"errors"
	"sync"

	"github.com/dkeye/Roombox/internal/core"
	"github.com/dkeye/Roombox/internal/domain"
)

type delivery struct {
	To    []core.SessionID
	Event any
}

// recorder is a Notifier that remembers who would have received what.
type recorder struct {
	mu         sync.Mutex
	broadcasts []delivery
	replies    map[core.SessionID][]any
}

func newRecorder() *recorder {
	return &recorder{replies: make(map[core.SessionID][]any)}
}

func (r *recorder) Broadcast(room *domain.Room, event any) core.PublishResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	to := make([]core.SessionID, 0, len(room.Members))
	for _, m := range room.Members {
		to = append(to, m.SessionID)
	}
	r.broadcasts = append(r.broadcasts, delivery{To: to, Event: event})
	return core.PublishResult{SendTo: len(to)}
}

func (r *recorder) Send(sid core.SessionID, event any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies[sid] = append(r.replies[sid], event)
	return nil
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.broadcasts = nil
	r.replies = make(map[core.SessionID][]any)
}

// seqNames hands out room codes in order, wrapping around.
type seqNames struct {
	codes []domain.RoomID
	n     int
}

func (s *seqNames) RoomName() string   { return "red" }
func (s *seqNames) MemberName() string { return "calm-red-fox" }

func (s *seqNames) RoomCode(int) domain.RoomID {
	c := s.codes[s.n%len(s.codes)]
	s.n++
	return c
}

// fakeConn is a SignalConnection that collects frames.
type fakeConn struct {
	mu     sync.Mutex
	frames []core.Frame
	closed bool
}

func (c *fakeConn) TrySend(f core.Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.New("closed")
	}
	c.frames = append(c.frames, f)
	return nil
}

func (c *fakeConn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *fakeConn) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.frames)
}

func newTestStore(codes ...domain.RoomID) (*Store, *recorder) {
	if len(codes) == 0 {
		codes = []domain.RoomID{"111111", "222222", "333333", "444444"}
	}
	rec := newRecorder()
	return NewStore(rec, WithNames(&seqNames{codes: codes})), rec
}
