package signal

import (
	"github.com/dkeye/Roombox/internal/core"
	"github.com/dkeye/Roombox/internal/domain"
)

func (ctl *SignalWSController) handleWhoAmI(
	sid core.SessionID,
	conn *wsSignalConn,
) {
	resp := struct {
		Type string         `json:"type"`
		SID  core.SessionID `json:"session_id"`
		Name string         `json:"name,omitempty"`
		Role domain.Rank    `json:"role,omitempty"`
		Room domain.RoomID  `json:"room,omitempty"`
	}{
		Type: "whoami",
		SID:  sid,
	}
	if m, roomID, ok := ctl.Store.Whois(sid); ok {
		resp.Name = m.Name
		resp.Role = m.Role
		resp.Room = roomID
	}
	ctl.sendJSON(conn, resp)
}
