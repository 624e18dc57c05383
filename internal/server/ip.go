package server

import (
	"encoding/json"
	"net/http"
)

func (h *handlers) getLatestIP(w http.ResponseWriter, r *http.Request) {
	record, err := h.db.ReadLatest(r.Context())
	if err != nil {
		h.logger.Error(err.Error())
		httpError(w, http.StatusInternalServerError, "")
		return
	}

	if record == nil {
		httpError(w, http.StatusNotFound, "no public IP address recorded yet")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	err = json.NewEncoder(w).Encode(record)
	if err != nil {
		h.logger.Error(err.Error())
	}
}

type versionJSONWrapper struct {
	Version string `json:"version"`
}

func (h *handlers) getVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(versionJSONWrapper{Version: h.version})
	if err != nil {
		h.logger.Error(err.Error())
	}
}
