package app

import (
	"context"
	"sync"

	"github.com/dkeye/Roombox/internal/core"
	"github.com/rs/zerolog/log"
)

type sessionEntry struct {
	Client string
	Signal core.SignalConnection
	Cancel context.CancelFunc
}

// Registry maps live session IDs to their signal connections.
// Room membership lives in Store; this only knows who is reachable.
type Registry struct {
	mu       sync.RWMutex
	sessions map[core.SessionID]*sessionEntry
	metrics  *Metrics
}

func NewRegistry(metrics *Metrics) *Registry {
	return &Registry{
		sessions: make(map[core.SessionID]*sessionEntry),
		metrics:  metrics,
	}
}

func (r *Registry) BindSignal(
	sid core.SessionID,
	client string,
	conn core.SignalConnection,
	cancel context.CancelFunc,
) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sid] = &sessionEntry{Client: client, Signal: conn, Cancel: cancel}
	r.metrics.SetConnections(len(r.sessions))
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Str("client", client).Msg("bound signal")
}

func (r *Registry) GetSignal(sid core.SessionID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[sid]; ok {
		return e.Signal, true
	}
	return nil, false
}

func (r *Registry) Unbind(sid core.SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sid)
	r.metrics.SetConnections(len(r.sessions))
	log.Info().Str("module", "app.registry").Str("sid", string(sid)).Msg("unbind session")
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// CancelAll is used on shutdown.
func (r *Registry) CancelAll() {
	r.mu.RLock()
	cancels := make([]context.CancelFunc, 0, len(r.sessions))
	for _, e := range r.sessions {
		if e.Cancel != nil {
			cancels = append(cancels, e.Cancel)
		}
	}
	r.mu.RUnlock()
	for _, cancel := range cancels {
		cancel()
	}
}
