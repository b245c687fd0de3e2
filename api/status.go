package api

import (
	"net/http"
	"time"
)

type getStatusResponse struct {
	Version    string     `json:"version"`
	Uptime     string     `json:"uptime"`
	LastScanAt *time.Time `json:"lastScanAt,omitempty"`
}

func (a *Api) handleGetStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := &getStatusResponse{
			Version: a.version,
			Uptime:  time.Since(a.started).String(),
		}

		if snapshot := a.reporter.LastScan(); snapshot != nil {
			res.LastScanAt = &snapshot.Taken
		}

		a.jsonResponse(w, res, http.StatusOK)
	}
}
