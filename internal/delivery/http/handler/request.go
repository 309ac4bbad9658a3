package handler

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"breneo/internal/delivery/http/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindBody decodes the JSON body into out and runs its validate tags.
// Undecodable bodies are 400; rule violations are 422 with the failing
// field names in data.
func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fieldPath(fe)] = fe.Tag()
			}
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", fields, err)
		}
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	return nil
}

// fieldPath drops the struct name from the namespace: "Req.user_skills[0]"
// becomes "user_skills[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func currentUserID(c fiber.Ctx) (uuid.UUID, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	return userID, nil
}

func parseUUIDParam(c fiber.Ctx, key, notFound string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(key)))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusNotFound, notFound, nil, err)
	}
	return id, nil
}

// page is a limit/offset window read from the query string.
type page struct {
	Limit  int
	Offset int
}

// pageQuery reads ?limit and ?offset. A missing, malformed or non-positive
// limit falls back to def; limits above limitCap are capped.
func pageQuery(c fiber.Ctx, def, limitCap int) page {
	p := page{Limit: fiber.Query(c, "limit", def), Offset: fiber.Query(c, "offset", 0)}
	switch {
	case p.Limit < 1:
		p.Limit = def
	case p.Limit > limitCap:
		p.Limit = limitCap
	}
	p.Offset = clamp(p.Offset, 0, math.MaxInt32)
	return p
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
