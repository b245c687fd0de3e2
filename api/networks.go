package api

import (
	"net/http"
	"time"

	"github.com/codeplox-dev/wifiscand/scan"
)

type networkResponse struct {
	Ssid    string `json:"ssid"`
	Bssid   string `json:"bssid"`
	Rssi    int16  `json:"rssi"`
	Channel uint8  `json:"channel"`
	Auth    string `json:"auth"`
}

type getNetworksResponse struct {
	Taken     time.Time         `json:"taken"`
	Success   bool              `json:"success"`
	ErrorCode int32             `json:"errorCode"`
	Networks  []networkResponse `json:"networks"`
}

func networksResponse(aps []scan.AP) []networkResponse {
	networks := make([]networkResponse, 0, len(aps))

	for _, ap := range aps {
		networks = append(networks, networkResponse{
			Ssid:    ap.SSID,
			Bssid:   ap.BSSID.String(),
			Rssi:    ap.RSSI,
			Channel: ap.Channel,
			Auth:    ap.Auth.String(),
		})
	}

	return networks
}

func (a *Api) handleGetNetworks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := a.reporter.LastScan()
		if snapshot == nil {
			a.jsonError(w, "no scan has completed yet", http.StatusNotFound)
			return
		}

		a.jsonResponse(w, &getNetworksResponse{
			Taken:     snapshot.Taken,
			Success:   snapshot.Success,
			ErrorCode: snapshot.ErrorCode,
			Networks:  networksResponse(snapshot.Networks),
		}, http.StatusOK)
	}
}
