package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lumenhq/lumen/internal/domain/mirror"
	"github.com/lumenhq/lumen/internal/infrastructure/pubsub"
	"github.com/lumenhq/lumen/internal/shared/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

// VersionSubscriber hands out config version event streams.
type VersionSubscriber interface {
	Subscribe() (<-chan pubsub.VersionEvent, func())
}

// VersionStreamHandler pushes the config version to displays over a websocket.
type VersionStreamHandler struct {
	service  mirrorService
	hub      VersionSubscriber
	upgrader websocket.Upgrader
	logger   logger.Interface
}

func NewVersionStreamHandler(service mirrorService, hub VersionSubscriber, allowedOrigins []string, log logger.Interface) *VersionStreamHandler {
	return &VersionStreamHandler{
		service: service,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: log,
	}
}

// Stream sends {version, updatedAt} on connect and after every change.
// @Summary Config version stream
// @Tags mirror
// @Produce json
// @Success 101 {object} mirror.VersionView
// @Router /api/config-version/stream [get]
func (h *VersionStreamHandler) Stream(c *gin.Context) {
	events, cancel := h.hub.Subscribe()
	defer cancel()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warnw("failed to upgrade version stream", "error", err, "ip", c.ClientIP())
		return
	}
	defer conn.Close()

	h.logger.Debugw("version stream connected", "ip", c.ClientIP())

	if err := h.write(conn, h.service.GetConfigVersion(c.Request.Context())); err != nil {
		return
	}

	done := make(chan struct{})
	go h.readPump(conn, done)

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			updatedAt := ev.UpdatedAt.UTC()
			if err := h.write(conn, mirror.VersionView{Version: ev.Version, UpdatedAt: &updatedAt}); err != nil {
				h.logger.Debugw("version stream write failed", "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		}
	}
}

func (h *VersionStreamHandler) write(conn *websocket.Conn, view mirror.VersionView) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(view)
}

// readPump discards client frames and closes done when the peer goes away.
func (h *VersionStreamHandler) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debugw("version stream closed", "error", err)
			}
			return
		}
	}
}

// originChecker accepts same-host requests, requests without an Origin
// (the kiosk agent) and whitelisted origins.
func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return origin == "http://"+r.Host || origin == "https://"+r.Host
	}
}
