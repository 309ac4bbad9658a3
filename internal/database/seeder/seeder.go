package seeder

import (
	"context"
	"fmt"
	"strings"

	"breneo/internal/database"
)

// Seeder loads demo data. Rows are keyed by stable ids so running a seeder
// twice leaves the table unchanged.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// ByName picks seeders from all in the order names are given. An empty
// names list selects everything.
func ByName(all []Seeder, names ...string) ([]Seeder, error) {
	if len(names) == 0 {
		return all, nil
	}
	index := make(map[string]Seeder, len(all))
	for _, s := range all {
		index[s.Name()] = s
	}

	out := make([]Seeder, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		s, ok := index[n]
		if !ok {
			return nil, fmt.Errorf("unknown seeder %q", n)
		}
		out = append(out, s)
	}
	return out, nil
}
