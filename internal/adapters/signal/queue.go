package signal

import (
	"encoding/json"
	"fmt"

	"github.com/dkeye/Roombox/internal/core"
	"github.com/dkeye/Roombox/internal/domain"
	"github.com/rs/zerolog/log"
)

type itemPayload struct {
	Type string           `json:"type"`
	Item domain.QueueItem `json:"item"`
}

// rejectPayload answers a request whose fields did not decode. Membership
// and rank are still reported ahead of the payload.
func (ctl *SignalWSController) rejectPayload(
	sid core.SessionID,
	conn *wsSignalConn,
	kind string,
	check func(core.SessionID) error,
	invalid error,
	cause error,
) {
	log.Warn().Err(cause).Str("module", "signal").Str("sid", string(sid)).Str("type", kind).Msg("bad payload")
	if err := check(sid); err != nil {
		ctl.sendError(conn, kind, err)
		return
	}
	ctl.sendError(conn, kind, fmt.Errorf("%w: %v", invalid, cause))
}

// decodeItem leaves a missing item zero-valued; the store rejects it after
// the permission check.
func (ctl *SignalWSController) decodeItem(sid core.SessionID, conn *wsSignalConn, kind string, data []byte) (domain.QueueItem, bool) {
	var p itemPayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.rejectPayload(sid, conn, kind, ctl.Store.CheckManage, domain.ErrInvalidAddition, err)
		return domain.QueueItem{}, false
	}
	return p.Item, true
}

func (ctl *SignalWSController) handleAddToQueue(sid core.SessionID, conn *wsSignalConn, data []byte) {
	item, ok := ctl.decodeItem(sid, conn, ReqAddToQueue, data)
	if !ok {
		return
	}
	if err := ctl.Store.AddToQueue(sid, item); err != nil {
		ctl.sendError(conn, ReqAddToQueue, err)
	}
}

func (ctl *SignalWSController) handleAddPlayNext(sid core.SessionID, conn *wsSignalConn, data []byte) {
	item, ok := ctl.decodeItem(sid, conn, ReqAddPlayNext, data)
	if !ok {
		return
	}
	if err := ctl.Store.AddPlayNext(sid, item); err != nil {
		ctl.sendError(conn, ReqAddPlayNext, err)
	}
}

func (ctl *SignalWSController) handleAddPlayNextAndPlay(sid core.SessionID, conn *wsSignalConn, data []byte) {
	item, ok := ctl.decodeItem(sid, conn, ReqAddPlayNextAndPlay, data)
	if !ok {
		return
	}
	if err := ctl.Store.AddPlayNextAndPlay(sid, item); err != nil {
		ctl.sendError(conn, ReqAddPlayNextAndPlay, err)
	}
}

func (ctl *SignalWSController) handlePlaySong(sid core.SessionID, conn *wsSignalConn, data []byte) {
	type playPayload struct {
		Type  string `json:"type"`
		Index int    `json:"index"`
	}
	var p playPayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.rejectPayload(sid, conn, ReqPlaySong, ctl.Store.CheckManage, domain.ErrInvalidItem, err)
		return
	}
	if err := ctl.Store.PlaySong(sid, p.Index); err != nil {
		ctl.sendError(conn, ReqPlaySong, err)
	}
}

func (ctl *SignalWSController) handlePlaybackState(sid core.SessionID, conn *wsSignalConn, data []byte) {
	type statePayload struct {
		Type  string               `json:"type"`
		State domain.PlaybackState `json:"state"`
	}
	var p statePayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.rejectPayload(sid, conn, ReqPlaybackStateChange, ctl.Store.CheckManage, domain.ErrInvalidPlaybackState, err)
		return
	}
	if err := ctl.Store.SetPlaybackState(sid, p.State); err != nil {
		ctl.sendError(conn, ReqPlaybackStateChange, err)
	}
}
