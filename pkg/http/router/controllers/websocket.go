package controllers

import (
	"net/http"
	"time"

	"github.com/gobwas/ws"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

func (api *maxCutAPI) graspProgress(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	conn, _, hs, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		// UpgradeHTTP already answered the client
		api.log.Info("upgrade error", zap.Error(err), zap.String("remote_addr", r.RemoteAddr))
		return
	}
	// the connection outlives the http.Server read/write timeouts
	_ = conn.SetDeadline(time.Time{})

	api.log.Info("established websocket connection", zap.String("remote_addr", conn.RemoteAddr().String()),
		zap.String("protocol", hs.Protocol))

	session := api.hub.Register(conn, api.maxBodyBytes)
	defer api.hub.Remove(session)

	if err := session.Solve(r.Context(), api.maxCutService); err != nil {
		api.log.Info("websocket session ended", zap.Error(err))
	}
}
