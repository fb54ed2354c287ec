package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"roomNest/internal/services"
)

const (
	wsReadLimit     = 4 << 10 // questions are short
	wsReadDeadline  = 120 * time.Second
	wsWriteDeadline = 5 * time.Second
	wsPingInterval  = 15 * time.Second
)

type assistantQuestion struct {
	Question string `json:"question"`
}

type assistantReply struct {
	Type string `json:"type"` // "answer" or "error"
	services.AskResult
	Error string `json:"error,omitempty"`
}

func (app *application) wsUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			if len(app.cfg.CORS.AllowedOrigins) == 0 {
				return true
			}
			for _, allowed := range app.cfg.CORS.AllowedOrigins {
				if strings.EqualFold(origin, allowed) {
					return true
				}
			}
			return false
		},
	}
}

// handleAssistantWS runs the support-bot chat over one websocket. One frame
// in ({"question": ...}), one frame out; the connection stays open for the
// whole chat session and is kept alive with pings.
func (app *application) handleAssistantWS(w http.ResponseWriter, r *http.Request) {
	upgrader := app.wsUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Printf("assistant ws upgrade: %v", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(wsReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(wsPingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		var q assistantQuestion
		if err := conn.ReadJSON(&q); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				app.errorLog.Printf("assistant ws read: %v", err)
			}
			return
		}

		var reply assistantReply
		if strings.TrimSpace(q.Question) == "" {
			reply = assistantReply{Type: "error", Error: "question is empty"}
		} else {
			reply = assistantReply{Type: "answer", AskResult: app.assistant.Ask(q.Question)}
		}

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
		if err := conn.WriteJSON(reply); err != nil {
			app.errorLog.Printf("assistant ws write: %v", err)
			return
		}
	}
}
