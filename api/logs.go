package api

import (
	"net/http"
	"time"
)

type logEntryResponse struct {
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}

func (a *Api) handleGetLogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := a.tail.Entries()

		res := make([]logEntryResponse, 0, len(entries))
		for _, entry := range entries {
			res = append(res, logEntryResponse{
				Time:    entry.Time,
				Level:   entry.Level,
				Message: entry.Message,
			})
		}

		a.jsonResponse(w, res, http.StatusOK)
	}
}
