package api

import (
	"encoding/json"
	"log"
	"net/http"

	mc "github.com/saeidalz13/battlesquares/models/connection"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("failed to write json response:", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, errorDetails, message string) {
	writeJSON(w, status, mc.NewRespErr(errorDetails, message))
}
