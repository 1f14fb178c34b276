package app

import (
	"encoding/json"
	"errors"

	"github.com/dkeye/Roombox/internal/core"
	"github.com/dkeye/Roombox/internal/domain"
	"github.com/rs/zerolog/log"
)

var ErrNotConnected = errors.New("session not connected")

// Notifier is how the store talks to connections: Broadcast fans an event
// out to every current member of a room, Send answers a single session.
type Notifier interface {
	Broadcast(room *domain.Room, event any) core.PublishResult
	Send(sid core.SessionID, event any) error
}

// Dispatcher addresses members one by one through the Registry, so the
// recipient list is whatever room.Members holds at the moment of the call.
type Dispatcher struct {
	Registry *Registry
	Metrics  *Metrics
}

func NewDispatcher(reg *Registry, metrics *Metrics) *Dispatcher {
	return &Dispatcher{Registry: reg, Metrics: metrics}
}

func (d *Dispatcher) Broadcast(room *domain.Room, event any) core.PublishResult {
	res := core.PublishResult{}
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("module", "app.dispatcher").Msg("broadcast marshal")
		return res
	}
	for _, m := range room.Members {
		if err := d.send(m.SessionID, data); err != nil {
			res.Dropped = append(res.Dropped, m.SessionID)
			continue
		}
		res.SendTo++
	}
	d.Metrics.AddDropped(len(res.Dropped))
	log.Debug().Str("module", "app.dispatcher").Str("room", string(room.ID)).Int("sent_to", res.SendTo).Int("dropped", len(res.Dropped)).Msg("broadcast result")
	return res
}

// Send delivers one event to a single session.
func (d *Dispatcher) Send(sid core.SessionID, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := d.send(sid, data); err != nil {
		d.Metrics.AddDropped(1)
		return err
	}
	return nil
}

func (d *Dispatcher) send(sid core.SessionID, data core.Frame) error {
	conn, ok := d.Registry.GetSignal(sid)
	if !ok {
		return ErrNotConnected
	}
	return conn.TrySend(data)
}
