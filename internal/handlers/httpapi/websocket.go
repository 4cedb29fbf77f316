package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"onemorning/internal/models"
	gameRepo "onemorning/internal/repositories/game"
	gameService "onemorning/internal/services/game"
)

const (
	// writeWait bounds a single websocket write
	writeWait = 10 * time.Second

	// pongWait is how long a client may stay silent before we drop it
	pongWait = 60 * time.Second

	// pingPeriod must be shorter than pongWait
	pingPeriod = 50 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Identity is proven by the token, not the Origin header
	CheckOrigin: func(r *http.Request) bool { return true },
}

// subscribeGame upgrades the request to a websocket and streams the viewer's
// sanitized snapshot of the game every time the shared record changes. Each
// subscriber gets their own view: two clients watching the same game receive
// different payloads.
func (h *Handler) subscribeGame(c *gin.Context) {
	gameID := c.Param("id")
	viewerID := c.GetString(ctxPlayerID)

	// Reject unknown games before upgrading
	current, err := h.gameService.GetGame(c.Request.Context(), &gameService.GetGameInput{GameID: gameID})
	if err != nil {
		h.writeError(c, err)
		return
	}

	sub, err := h.gameRepo.SubscribeGame(c.Request.Context(), &gameRepo.SubscribeGameInput{GameID: gameID})
	if err != nil {
		h.writeError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		sub.Close()
		h.logger.Warn("websocket upgrade failed", zap.String("gameID", gameID), zap.Error(err))
		return
	}

	h.logger.Info("websocket subscribed",
		zap.String("gameID", gameID),
		zap.String("playerID", viewerID))

	go h.readPump(conn, sub)
	h.writePump(conn, sub, current.Game, viewerID)
}

// subscribeOpenGames streams the lobby list: the full set of joinable games,
// resent whenever any game is created, filled, started or deleted
func (h *Handler) subscribeOpenGames(c *gin.Context) {
	viewerID := c.GetString(ctxPlayerID)

	current, err := h.gameService.ListOpenGames(c.Request.Context(), &gameService.ListOpenGamesInput{})
	if err != nil {
		h.writeError(c, err)
		return
	}

	sub, err := h.gameRepo.SubscribeWaitingGames(c.Request.Context(), &gameRepo.SubscribeWaitingGamesInput{})
	if err != nil {
		h.writeError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		sub.Close()
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	go func() {
		defer sub.Close()
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer func() {
		sub.Close()
		_ = conn.Close()
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	write := func(games []*models.Game) bool {
		views := make([]*gameView, 0, len(games))
		for _, g := range games {
			views = append(views, snapshotFor(g, viewerID))
		}
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(views) == nil
	}

	if !write(current.Games) {
		return
	}

	for {
		select {
		case games, ok := <-sub.C:
			if !ok {
				return
			}
			if !write(games) {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames and tears the subscription down when the
// client goes away. All game commands arrive over plain HTTP; the socket is
// a one-way feed.
func (h *Handler) readPump(conn *websocket.Conn, sub *gameRepo.Subscription) {
	defer sub.Close()

	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump pushes the initial snapshot and then one snapshot per update
// until the subscription or the connection closes
func (h *Handler) writePump(conn *websocket.Conn, sub *gameRepo.Subscription, initial *models.Game, viewerID string) {
	defer func() {
		sub.Close()
		_ = conn.Close()
	}()

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	write := func(payload *gameView) bool {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(payload) == nil
	}

	if !write(snapshotFor(initial, viewerID)) {
		return
	}

	for {
		select {
		case g, ok := <-sub.C:
			if !ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "game deleted"))
				return
			}
			if !write(snapshotFor(g, viewerID)) {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
