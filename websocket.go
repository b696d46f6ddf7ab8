package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Demo API, any origin may connect.
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsSessionTransport sends session messages over a WebSocket connection.
// Only the session goroutine calls Send, so writes are never concurrent.
type wsSessionTransport struct {
	conn *websocket.Conn
}

func (t *wsSessionTransport) Send(msg any) error {
	return t.conn.WriteJSON(msg)
}

// handleLiveMatch runs a full match simulation over a bidirectional
// WebSocket. Inbound frames are forwarded to the session's control channel;
// a read failure means the client is gone and cancels the simulation.
func (s *Server) handleLiveMatch(w http.ResponseWriter, r *http.Request) {
	cfg, cfgErr := parseSessionConfig(r.URL.Query())
	s.applySessionDefaults(&cfg)

	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("💔 WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	if cfgErr != nil {
		if writeErr := conn.WriteJSON(ErrorMessage{Type: "error", Code: "invalid_config", Message: cfgErr.Error()}); writeErr != nil {
			log.Printf("💔 WebSocket could not report invalid config: %v", writeErr)
		}
		return
	}

	sessionID := uuid.NewString()[:8]
	session, err := NewMatchSession(sessionID, cfg, &wsSessionTransport{conn: conn})
	if err != nil {
		if writeErr := conn.WriteJSON(ErrorMessage{Type: "error", Code: "invalid_config", Message: err.Error()}); writeErr != nil {
			log.Printf("💔 WebSocket session %s could not report invalid config: %v", sessionID, writeErr)
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), MaxSessionDuration)
	defer cancel()

	go func() {
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				cancel()
				return
			}
			select {
			case session.Control <- data:
			case <-ctx.Done():
				return
			}
		}
	}()

	if err := session.Run(ctx); err != nil {
		return
	}

	deadline := time.Now().Add(time.Second)
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "full time"), deadline)
}

// handleWSTest echoes every message back, for checking connectivity.
func (s *Server) handleWSTest(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("💔 WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	conn.WriteJSON(map[string]any{
		"type":     "welcome",
		"message":  "Welcome to the Lassoverse API WebSocket test! Send any message and I'll echo it back.",
		"ted_says": "Hey there, friend! This WebSocket connection is working smoother than a fresh jar of peanut butter!",
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		conn.WriteJSON(map[string]any{
			"type":     "echo",
			"message":  string(data),
			"ted_says": "I heard you loud and clear, partner!",
		})
	}
}
