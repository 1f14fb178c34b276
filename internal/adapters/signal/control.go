package signal

import "github.com/dkeye/Roombox/internal/app"

func (ctl *SignalWSController) handlePing(
	conn *wsSignalConn,
) {
	ctl.sendJSON(conn, app.AckEvent{Type: app.EventPong})
}
