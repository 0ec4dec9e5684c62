package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/kijvolley/tournament-tracker/live"
	"github.com/kijvolley/tournament-tracker/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production the Origin header should be checked against the
		// deployed frontend domain.
		return true
	},
}

type WebSocketHandler struct {
	hub         *live.Hub
	teamService services.TeamService
	gameService services.GameService
}

func NewWebSocketHandler(hub *live.Hub, teamService services.TeamService, gameService services.GameService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		teamService: teamService,
		gameService: gameService,
	}
}

// ServeWs upgrades a viewer connection, registers it with the hub and sends
// the full current snapshot. Registration happens before the snapshot is
// read: a mutation committing while the snapshot loads either shows up in
// the snapshot or reaches the viewer as a later event, never neither. A
// reconnecting viewer goes through the exact same path; there is no resume
// state.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied to the client, just log.
		log.Printf("Failed to upgrade viewer connection: %v", err)
		return
	}

	client := live.NewClient(h.hub, conn)
	h.hub.Register <- client

	payload, err := h.snapshot(r.Context())
	if err != nil {
		log.Printf("Failed to load viewer snapshot: %v", err)
		h.hub.Unregister <- client
		conn.Close()
		return
	}
	client.Enqueue(payload)

	go client.WritePump()
	go client.ReadPump()
}

func (h *WebSocketHandler) snapshot(ctx context.Context) ([]byte, error) {
	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		return nil, err
	}
	games, err := h.gameService.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	return json.Marshal(live.SnapshotEvent{Type: live.EventInit, Teams: teams, Games: games})
}
