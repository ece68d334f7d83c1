package conn

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/edudata/scorecard/internal/query"
	"github.com/edudata/scorecard/pkg"
	"github.com/gorilla/websocket"
)

// Actions the live-query channel understands. The browser client
// keeps one socket open while the user types and tags each message
// with a request id to pair responses.
type RequestAction string

const (
	RequestActionSearch RequestAction = "searchSchools"
	RequestActionMajors RequestAction = "schoolMajors"
)

type WsRequest struct {
	Action RequestAction `json:"action"`
	ReqId  int           `json:"__scd_client_req_id__"`
}

var Upgrader = websocket.Upgrader{
	WriteBufferSize: 1024 * 10,
	ReadBufferSize:  1024 * 10,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func ActionHandler(service *query.Service, action RequestAction, raw []byte) Response {
	switch action {
	case RequestActionSearch:
		return SearchReqHandler(service, raw)
	case RequestActionMajors:
		return MajorsReqHandler(service, raw)
	}
	return NewErrorResponse(http.StatusBadRequest, fmt.Sprintf("unknown action %s", action))
}

func (app *App) HandleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := Upgrader.Upgrade(w, r, nil)
	if err != nil {
		pkg.ErrorLog("ws upgrade error", err)
		return
	}
	defer conn.Close()
	defer pkg.InfoLog("live connection closed from", conn.RemoteAddr())

	for {
		_, buf, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				pkg.ErrorLog("ws read error", err)
			}
			return
		}

		var req WsRequest
		if err := json.Unmarshal(buf, &req); err != nil {
			pkg.ErrorLog("parsing request", err)
			continue
		}

		res := ActionHandler(app.Service, req.Action, buf)
		res.ReqId = req.ReqId

		if err := conn.WriteJSON(res); err != nil {
			pkg.ErrorLog("writing response", err)
			return
		}
	}
}
