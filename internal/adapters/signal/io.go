package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dkeye/Roombox/internal/app"
	"github.com/dkeye/Roombox/internal/core"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Inbound request types.
const (
	ReqCreateRoom          = "create_room"
	ReqJoinRoom            = "join_room"
	ReqLeaveRoom           = "leave_room"
	ReqChangePermission    = "change_room_permission"
	ReqAddToQueue          = "add_to_queue"
	ReqAddPlayNext         = "add_play_next"
	ReqAddPlayNextAndPlay  = "add_play_next_and_play"
	ReqPlaySong            = "play_song"
	ReqPlaybackStateChange = "playback_state_change"
	ReqPing                = "ping"
	ReqWhoAmI              = "whoami"
)

var knownRequests = map[string]bool{
	ReqCreateRoom: true, ReqJoinRoom: true, ReqLeaveRoom: true, ReqChangePermission: true,
	ReqAddToQueue: true, ReqAddPlayNext: true, ReqAddPlayNextAndPlay: true, ReqPlaySong: true,
	ReqPlaybackStateChange: true, ReqPing: true, ReqWhoAmI: true,
}

// metricKind keeps client-chosen type strings out of metric labels.
func metricKind(t string) string {
	if knownRequests[t] {
		return t
	}
	return "unknown"
}

const writeWait = 5 * time.Second

func (ctl *SignalWSController) writePump(ctx context.Context, c *wsSignalConn) {
	ticker := time.NewTicker(ctl.opts.PingPeriod)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Msg("writePump ctx done")
			return
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump ping")
				return
			}
		case data, ok := <-c.send:
			if !ok {
				log.Warn().Str("module", "signal").Msg("writePump channel closed")
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		}
	}
}

func (ctl *SignalWSController) readPump(ctx context.Context, cancel context.CancelFunc, sid core.SessionID, c *wsSignalConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump closing")
		cancel()
		ctl.onDisconnect(sid)
		c.Close()
	}()

	pongWait := ctl.opts.PingPeriod * 10 / 9
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("readPump ctx done")
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Error().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("readPump read error")
				}
				return
			}
			ctl.handleSignal(sid, c, data)
		}
	}
}

func (ctl *SignalWSController) handleSignal(sid core.SessionID, c *wsSignalConn, data []byte) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad json")
		ctl.sendError(c, "", ErrBadPayload)
		return
	}

	if ctl.Limiter != nil && !ctl.Limiter.Allow(sid) {
		ctl.sendError(c, metricKind(env.Type), ErrRateLimited)
		return
	}
	ctl.Metrics.Request(metricKind(env.Type))

	switch env.Type {
	case ReqCreateRoom:
		ctl.handleCreate(sid, c)
	case ReqJoinRoom:
		ctl.handleJoin(sid, c, data)
	case ReqLeaveRoom:
		ctl.handleLeave(sid, c)
	case ReqChangePermission:
		ctl.handleChangePermission(sid, c, data)
	case ReqAddToQueue:
		ctl.handleAddToQueue(sid, c, data)
	case ReqAddPlayNext:
		ctl.handleAddPlayNext(sid, c, data)
	case ReqAddPlayNextAndPlay:
		ctl.handleAddPlayNextAndPlay(sid, c, data)
	case ReqPlaySong:
		ctl.handlePlaySong(sid, c, data)
	case ReqPlaybackStateChange:
		ctl.handlePlaybackState(sid, c, data)
	case ReqPing:
		ctl.handlePing(c)
	case ReqWhoAmI:
		ctl.handleWhoAmI(sid, c)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown signal")
		ctl.sendError(c, "unknown", ErrUnknownRequest)
	}
}

func (ctl *SignalWSController) sendJSON(c core.SignalConnection, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("sendJSON marshal")
		return
	}
	_ = c.TrySend(b)
}

// sendError acknowledges a rejected request to the requester only.
func (ctl *SignalWSController) sendError(c core.SignalConnection, kind string, err error) {
	event := errorEvent(err)
	ctl.Metrics.Rejected(kind, event)
	log.Debug().Err(err).Str("module", "signal").Str("type", kind).Str("event", event).Msg("request rejected")
	ctl.sendJSON(c, app.ErrorEvent{Type: event})
}
