package signal

import (
	"encoding/json"

	"github.com/dkeye/Roombox/internal/core"
	"github.com/dkeye/Roombox/internal/domain"
	"github.com/rs/zerolog/log"
)

// Successful room requests are answered by the store itself; only
// rejections are sent from here.

func (ctl *SignalWSController) handleCreate(
	sid core.SessionID,
	conn *wsSignalConn,
) {
	if _, err := ctl.Store.Create(sid); err != nil {
		ctl.sendError(conn, ReqCreateRoom, err)
	}
}

func (ctl *SignalWSController) handleJoin(
	sid core.SessionID,
	conn *wsSignalConn,
	data []byte,
) {
	type joinPayload struct {
		Type string `json:"type"`
		Room string `json:"room"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Msg("bad join payload")
		ctl.sendError(conn, ReqJoinRoom, ErrBadPayload)
		return
	}

	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room_id", p.Room).Msg("join")
	if _, err := ctl.Store.Join(sid, domain.RoomID(p.Room)); err != nil {
		ctl.sendError(conn, ReqJoinRoom, err)
	}
}

// handleLeave: выход из текущей комнаты, соединение при этом не рвётся.
func (ctl *SignalWSController) handleLeave(
	sid core.SessionID,
	conn *wsSignalConn,
) {
	log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("leave")
	if _, err := ctl.Store.Leave(sid); err != nil {
		ctl.sendError(conn, ReqLeaveRoom, err)
	}
}

func (ctl *SignalWSController) handleChangePermission(
	sid core.SessionID,
	conn *wsSignalConn,
	data []byte,
) {
	type permissionPayload struct {
		Type       string      `json:"type"`
		Permission domain.Rank `json:"permission"`
	}
	var p permissionPayload
	if err := json.Unmarshal(data, &p); err != nil {
		ctl.rejectPayload(sid, conn, ReqChangePermission, ctl.Store.CheckOwner, domain.ErrInvalidPermission, err)
		return
	}
	if err := ctl.Store.ChangePermission(sid, p.Permission); err != nil {
		ctl.sendError(conn, ReqChangePermission, err)
	}
}
