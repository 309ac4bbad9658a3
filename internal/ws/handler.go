package ws

import (
	"log"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"breneo/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

// DefaultMaxConnsPerUser bounds open notification sockets per account.
const DefaultMaxConnsPerUser = 5

type Handler struct {
	hub      *Hub
	logger   *log.Logger
	origins  []string
	maxConns int
	upgrader websocket.Upgrader
}

type HandlerOption func(*Handler)

// WithAllowedOrigins restricts the Origin header to the given hosts. With no
// hosts every origin is accepted.
func WithAllowedOrigins(hosts ...string) HandlerOption {
	return func(h *Handler) {
		for _, o := range hosts {
			if o = strings.ToLower(strings.TrimSpace(o)); o != "" {
				h.origins = append(h.origins, o)
			}
		}
	}
}

func WithMaxConnsPerUser(n int) HandlerOption {
	return func(h *Handler) { h.maxConns = n }
}

func NewHandler(hub *Hub, logger *log.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{hub: hub, logger: logger, maxConns: DefaultMaxConnsPerUser}
	for _, o := range opts {
		o(h)
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// HandleNotificationsWS upgrades an authenticated request and subscribes the
// connection to the caller's job-match notifications.
func (h *Handler) HandleNotificationsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	if h.maxConns > 0 && h.hub.UserClientCount(userID) >= h.maxConns {
		return middleware.NewAppError(fiber.StatusTooManyRequests, "Too many notification connections", nil, nil)
	}

	upgrade := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.logf("WS upgrade error | user_id=%s error=%v", userID, err)
			return
		}

		client := NewClient(h.hub, conn, userID)
		h.hub.Register(client)
		go client.WritePump()
		go client.ReadPump()
	})
	return upgrade(c)
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	if len(h.origins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		// non-browser clients
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return slices.Contains(h.origins, strings.ToLower(u.Host))
}

func (h *Handler) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}
