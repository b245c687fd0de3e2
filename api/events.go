package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type scanEvent struct {
	Taken     time.Time         `json:"taken"`
	Success   bool              `json:"success"`
	ErrorCode int32             `json:"errorCode"`
	Networks  []networkResponse `json:"networks"`
}

// handleGetScanEvents streams a JSON event per completed scan over a
// websocket until the peer goes away.
func (a *Api) handleGetScanEvents() http.HandlerFunc {
	upgrader := &websocket.Upgrader{}

	return func(w http.ResponseWriter, r *http.Request) {
		client := a.reporter.SubscribeScans()
		defer client.Cancel()

		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			a.jsonError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer c.Close()

		// read pump, drains pongs and notices closure
		readDone := make(chan struct{})

		go func() {
			defer close(readDone)

			c.SetReadLimit(512)
			c.SetReadDeadline(time.Now().Add(60 * time.Second))
			c.SetPongHandler(func(string) error {
				c.SetReadDeadline(time.Now().Add(60 * time.Second))
				return nil
			})

			for {
				_, _, err := c.ReadMessage()
				if err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
						a.log.Errorf("unexpected websocket closure: %v", err)
					}
					break
				}
			}
		}()

		ticker := time.NewTicker(54 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case snapshot := <-client.Scans:
				c.SetWriteDeadline(time.Now().Add(10 * time.Second))

				err := c.WriteJSON(&scanEvent{
					Taken:     snapshot.Taken,
					Success:   snapshot.Success,
					ErrorCode: snapshot.ErrorCode,
					Networks:  networksResponse(snapshot.Networks),
				})
				if err != nil {
					return
				}
			case <-ticker.C:
				c.SetWriteDeadline(time.Now().Add(10 * time.Second))

				if err := c.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-readDone:
				return
			}
		}
	}
}
