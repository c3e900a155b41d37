package api

import (
	"context"
	"encoding/json"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/saeidalz13/battlesquares/db/sqlc"
	mb "github.com/saeidalz13/battlesquares/models/battlesquares"
	mc "github.com/saeidalz13/battlesquares/models/connection"
)

// A snapshot of a full game fits in a few kilobytes.
const maxWsMessageSize = 64 << 10

var upgrader = websocket.Upgrader{
	// decisions are tiny request/response pairs
	HandshakeTimeout: time.Second * 5,
	ReadBufferSize:   2048,
	WriteBufferSize:  2048,
	CheckOrigin:      func(r *http.Request) bool { return true },
}

// RequestProcessor serves the streaming decide endpoint. Every
// connection is a session that can send any number of decide,
// corner or check requests.
type RequestProcessor struct {
	sessionManager mc.SessionManager
	analytics      *sqlc.AnalyticsManager
}

func NewRequestProcessor(sessionManager mc.SessionManager, analytics *sqlc.AnalyticsManager) RequestProcessor {
	return RequestProcessor{
		sessionManager: sessionManager,
		analytics:      analytics,
	}
}

func (rp RequestProcessor) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	conn.SetReadLimit(maxWsMessageSize)

	log.Println("a new connection established\tRemote Addr: ", conn.RemoteAddr().String())
	rp.processSessionRequests(rp.sessionManager.GenerateNewSession(conn), clientIp(r))
}

func (rp RequestProcessor) processSessionRequests(session *mc.Session, ip net.IP) {
	sessionId := session.Id()

	defer func() {
		if session.Conn() != nil {
			session.Conn().Close()
		}
		rp.sessionManager.TerminateSession(sessionId)
	}()

	resp := mc.NewMessage[mc.RespSessionId](mc.CodeSessionID)
	resp.AddPayload(mc.RespSessionId{SessionID: sessionId})
	if err := rp.sessionManager.WriteToSessionConn(session, resp, mc.MessageTypeJSON); err != nil {
		return
	}

sessionLoop:
	for {
		_, payload, err := rp.sessionManager.ReadFromSessionConn(session)
		if err != nil {
			break sessionLoop
		}

		var signal mc.Signal
		if err := json.Unmarshal(payload, &signal); err != nil {
			msg := mc.NewMessage[mc.NoPayload](mc.CodeSignalAbsent)
			msg.AddError("incoming req payload must contain 'code' field", "")
			if err = rp.sessionManager.WriteToSessionConn(session, msg, mc.MessageTypeJSON); err != nil {
				break sessionLoop
			}
			continue sessionLoop
		}

		var respMsg interface{}
		switch signal.Code {
		case mc.CodeDecide:
			rp.analytics.Record(context.Background(), sqlc.EndpointDecide, ip)
			respMsg = handleDecide(payload)

		case mc.CodeCorner:
			rp.analytics.Record(context.Background(), sqlc.EndpointCorner, ip)
			respMsg = handleCorner(payload)

		case mc.CodeCheck:
			rp.analytics.Record(context.Background(), sqlc.EndpointCheck, ip)
			respMsg = handleCheck(payload)

		default:
			respInvalidSignal := mc.NewMessage[mc.NoPayload](mc.CodeInvalidSignal)
			respInvalidSignal.AddError("", "invalid code in the incoming payload")
			respMsg = respInvalidSignal
		}

		if err := rp.sessionManager.WriteToSessionConn(session, respMsg, mc.MessageTypeJSON); err != nil {
			break sessionLoop
		}
	}
}

func handleDecide(payload []byte) mc.Message[mc.RespDecide] {
	respMsg := mc.NewMessage[mc.RespDecide](mc.CodeDecide)

	var req mc.Message[mc.ReqDecide]
	if err := json.Unmarshal(payload, &req); err != nil {
		respMsg.AddError(err.Error(), "invalid decide payload")
		return respMsg
	}

	action, err := mb.Decide(req.Payload.Snapshot, req.Payload.SelfId)
	if err != nil {
		respMsg.AddError(err.Error(), "failed to decide")
		return respMsg
	}

	respMsg.AddPayload(mc.RespDecide{Action: action.Code(), Name: action.String()})
	return respMsg
}

func handleCorner(payload []byte) mc.Message[mc.RespCorner] {
	respMsg := mc.NewMessage[mc.RespCorner](mc.CodeCorner)

	var req mc.Message[mc.ReqCoordinates]
	if err := json.Unmarshal(payload, &req); err != nil {
		respMsg.AddError(err.Error(), "invalid corner payload")
		return respMsg
	}

	inCorner, direction, err := mb.NearestCorner(req.Payload.Player, req.Payload.Players)
	if err != nil {
		respMsg.AddError(err.Error(), "invalid player position or grid size")
		return respMsg
	}

	respMsg.AddPayload(mc.RespCorner{IsInCorner: inCorner, Direction: direction})
	return respMsg
}

func handleCheck(payload []byte) mc.Message[[]string] {
	respMsg := mc.NewMessage[[]string](mc.CodeCheck)

	var req mc.Message[mc.ReqCoordinates]
	if err := json.Unmarshal(payload, &req); err != nil {
		respMsg.AddError(err.Error(), "invalid check payload")
		return respMsg
	}

	codes := []string{}
	if action, found := mb.LineOfFire(req.Payload.Player, req.Payload.Enemies); found {
		codes = append(codes, action.Code())
	}
	respMsg.AddPayload(codes)
	return respMsg
}
