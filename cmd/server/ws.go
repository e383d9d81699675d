package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/user/money-smart-kids/internal/state"
	"github.com/user/money-smart-kids/internal/types"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	writeWait      = 10 * time.Second
	sendBufferSize = 16
)

// serveStateSocket upgrades the connection and streams a full state
// snapshot to the client after every committed action, starting with the
// current one. A slow client has its oldest queued snapshot dropped;
// only the latest state matters.
func serveStateSocket(w http.ResponseWriter, r *http.Request, store *state.Store, logger *zap.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Failed to upgrade websocket connection", zap.Error(err))
		return
	}

	send := make(chan []byte, sendBufferSize)
	done := make(chan struct{})

	enqueue := func(st types.AppState) {
		data, err := json.Marshal(st)
		if err != nil {
			logger.Error("Failed to marshal state snapshot", zap.Error(err))
			return
		}
		for {
			select {
			case <-done:
				return
			case send <- data:
				return
			default:
			}
			select {
			case <-send:
			default:
			}
		}
	}

	enqueue(store.State())
	unsubscribe := store.Subscribe(enqueue)

	// Writer pump
	go func() {
		defer conn.Close()
		for {
			select {
			case data := <-send:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	// Reader pump, only used to detect the client going away
	go func() {
		defer func() {
			unsubscribe()
			close(done)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
