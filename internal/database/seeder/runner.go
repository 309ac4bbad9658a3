package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"breneo/internal/database"
)

// Runner executes seeders in order and stops at the first failure.
type Runner struct {
	Seeders []Seeder
	Logger  *log.Logger
}

// Result records one completed seeder.
type Result struct {
	Name     string
	Duration time.Duration
}

func (r Runner) Run(ctx context.Context, db database.DB) ([]Result, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}

	out := make([]Result, 0, len(r.Seeders))
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return out, err
		}

		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			r.logf("Seeder | failed | name=%s error=%v", s.Name(), err)
			return out, fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		res := Result{Name: s.Name(), Duration: time.Since(start)}
		out = append(out, res)
		r.logf("Seeder | done | name=%s took=%s", res.Name, res.Duration.Round(time.Millisecond))
	}
	return out, nil
}

func (r Runner) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}
