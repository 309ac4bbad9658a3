package middleware

import (
	"context"
	"errors"
	"log"

	"breneo/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// StatusClientClosedRequest is logged when the caller went away first.
const StatusClientClosedRequest = 499

// AppError carries the status, message and data a handler wants rendered.
// Cause is logged for 5xx and never shown to clients.
type AppError struct {
	StatusCode int
	Message    string
	Data       any
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

// Middleware renders handler errors and recovered panics as the standard
// envelope.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("HTTP panic | rid=%s method=%s path=%s panic=%v", requestID(c), c.Method(), c.Path(), r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		if err = c.Next(); err == nil {
			return nil
		}

		out := normalizeError(err)
		if out.status >= fiber.StatusInternalServerError {
			m.logger.Printf("HTTP error | rid=%s method=%s path=%s status=%d error=%v", requestID(c), c.Method(), c.Path(), out.status, err)
		}
		if out.status == StatusClientClosedRequest {
			c.Status(out.status)
			return nil
		}
		return response.Error(c, out.status, out.message, out.data)
	}
}

type rendered struct {
	status  int
	message string
	data    any
}

func normalizeError(err error) rendered {
	internal := rendered{status: fiber.StatusInternalServerError, message: response.MessageInternalServerError}

	var (
		appErr   *AppError
		fiberErr *fiber.Error
	)
	switch {
	case err == nil:
		return internal
	case errors.As(err, &appErr):
		if appErr.StatusCode <= 0 || appErr.StatusCode >= fiber.StatusInternalServerError {
			return internal
		}
		return rendered{status: appErr.StatusCode, message: orDefault(appErr.Message, appErr.StatusCode), data: appErr.Data}
	case errors.As(err, &fiberErr):
		if fiberErr.Code <= 0 || fiberErr.Code >= fiber.StatusInternalServerError {
			if fiberErr.Code == fiber.StatusServiceUnavailable {
				return rendered{status: fiberErr.Code, message: orDefault("", fiberErr.Code)}
			}
			return internal
		}
		return rendered{status: fiberErr.Code, message: orDefault(fiberErr.Message, fiberErr.Code)}
	case errors.Is(err, context.DeadlineExceeded):
		return rendered{status: fiber.StatusGatewayTimeout, message: response.MessageTimeout}
	case errors.Is(err, context.Canceled):
		return rendered{status: StatusClientClosedRequest}
	}
	return internal
}

func orDefault(msg string, status int) string {
	if msg == "" {
		return response.DefaultMessage(status)
	}
	return msg
}
