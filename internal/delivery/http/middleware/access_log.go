package middleware

import (
	"log"
	"slices"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	HeaderRequestID    = "X-Request-ID"
	CtxRequestIDKey    = "request_id"
	maxRequestIDLength = 128
)

type AccessLogMiddleware struct {
	logger *log.Logger
	skip   []string
	slow   time.Duration
}

type AccessLogOption func(*AccessLogMiddleware)

// WithSkipPaths suppresses lines for exact path matches. The request id is
// still assigned.
func WithSkipPaths(paths ...string) AccessLogOption {
	return func(m *AccessLogMiddleware) { m.skip = append(m.skip, paths...) }
}

// WithSlowThreshold tags requests slower than d with slow=true.
func WithSlowThreshold(d time.Duration) AccessLogOption {
	return func(m *AccessLogMiddleware) { m.slow = d }
}

func NewAccessLogMiddleware(logger *log.Logger, opts ...AccessLogOption) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	m := &AccessLogMiddleware{logger: logger}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := RequestIDFrom(c.Get(HeaderRequestID))
		c.Set(HeaderRequestID, rid)
		c.Locals(CtxRequestIDKey, rid)

		err := c.Next()

		if slices.Contains(m.skip, c.Path()) {
			return err
		}

		dur := time.Since(start)
		userID := "-"
		if id, ok := c.Locals(CtxUserIDKey).(uuid.UUID); ok {
			userID = id.String()
		}

		m.logger.Printf(
			"HTTP access | rid=%s user_id=%s ip=%s method=%s path=%s status=%d latency=%s resp_bytes=%d slow=%t ua=%q",
			rid, userID, c.IP(), c.Method(), c.OriginalURL(), c.Response().StatusCode(), dur,
			len(c.Response().Body()), m.slow > 0 && dur > m.slow, c.Get(fiber.HeaderUserAgent),
		)
		return err
	}
}

// RequestIDFrom keeps a client supplied id when it is short printable ASCII
// and mints a new one otherwise.
func RequestIDFrom(header string) string {
	if header == "" || len(header) > maxRequestIDLength {
		return uuid.NewString()
	}
	for i := 0; i < len(header); i++ {
		if header[i] < 0x21 || header[i] > 0x7e {
			return uuid.NewString()
		}
	}
	return header
}

func requestID(c fiber.Ctx) string {
	if rid, ok := c.Locals(CtxRequestIDKey).(string); ok {
		return rid
	}
	return "-"
}
