package api

import (
	"net/http"

	"github.com/codeplox-dev/wifiscand/scan"
	"github.com/codeplox-dev/wifiscand/scanner"
)

type postScanResponse struct {
	Success   bool              `json:"success"`
	ErrorCode int32             `json:"errorCode"`
	Networks  []networkResponse `json:"networks"`
}

// handlePostScan runs a scan on demand and waits for its outcome. The
// request queues behind the periodic cycle when one is running.
func (a *Api) handlePostScan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var result scan.Result

		err := a.requester.Request(&result, a.timeout)
		if err == scanner.ErrTimeout {
			a.jsonError(w, "scan timed out", http.StatusGatewayTimeout)
			return
		}
		if err != nil {
			a.jsonError(w, err.Error(), http.StatusServiceUnavailable)
			return
		}

		a.jsonResponse(w, &postScanResponse{
			Success:   result.Success,
			ErrorCode: result.ErrorCode,
			Networks:  networksResponse(result.APs()),
		}, http.StatusOK)
	}
}
