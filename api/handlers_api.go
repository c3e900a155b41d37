package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/saeidalz13/battlesquares/db/sqlc"
	mb "github.com/saeidalz13/battlesquares/models/battlesquares"
	mc "github.com/saeidalz13/battlesquares/models/connection"
)

const maxRequestBodyBytes = 1 << 16

// HandleCorner answers `true` when the player already stands in a
// corner and the direction toward the nearest corner otherwise.
func (s *Server) HandleCorner(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCoordinates(w, r)
	if !ok {
		return
	}
	s.analytics.Record(r.Context(), sqlc.EndpointCorner, clientIp(r))

	inCorner, direction, err := mb.NearestCorner(req.Player, req.Players)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error(), "invalid player position or grid size")
		return
	}

	if inCorner {
		writeJSON(w, http.StatusOK, true)
		return
	}
	writeJSON(w, http.StatusOK, mc.RespCorner{IsInCorner: false, Direction: direction})
}

// HandleCheck answers with the fire code toward the first enemy
// sharing the player's row or column, or an empty list.
func (s *Server) HandleCheck(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCoordinates(w, r)
	if !ok {
		return
	}
	s.analytics.Record(r.Context(), sqlc.EndpointCheck, clientIp(r))

	codes := []string{}
	if action, found := mb.LineOfFire(req.Player, req.Enemies); found {
		codes = append(codes, action.Code())
	}
	writeJSON(w, http.StatusOK, codes)
}

func decodeCoordinates(w http.ResponseWriter, r *http.Request) (mc.ReqCoordinates, bool) {
	var req mc.ReqCoordinates

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("failed to decode coordinates request\tremote: %s\terr: %v", r.RemoteAddr, err)
		writeJSONError(w, http.StatusBadRequest, err.Error(), "request body must be a coordinates json")
		return mc.ReqCoordinates{}, false
	}
	return req, true
}
