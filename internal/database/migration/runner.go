// Package migration applies the versioned SQL files under migrations/.
package migration

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"breneo/internal/database"
)

var (
	ErrNoSource         = errors.New("no migration source")
	ErrChecksumMismatch = errors.New("migration checksum mismatch")
	// ErrUnknownVersion means the database carries a version no file
	// describes, usually a binary older than the schema.
	ErrUnknownVersion = errors.New("migration applied but missing from source")
)

// Runner applies files named V<version>__<name>.sql in version order. Files
// are read from Dir when set, otherwise from FS. Each file runs in its own
// transaction under a transaction-scoped advisory lock, so concurrent
// runners serialize and a failed file leaves earlier ones applied.
type Runner struct {
	Dir    string
	FS     fs.FS
	Logger *log.Logger

	now func() time.Time
}

type Migration struct {
	Version  int64
	Name     string
	Filename string
	SQL      string
	Checksum string
}

// State is one row of Status.
type State struct {
	Migration
	AppliedAt time.Time
}

func (s State) Applied() bool { return !s.AppliedAt.IsZero() }

const lockKey = 483920117

var fileRe = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)

// Run applies every pending migration and returns how many it applied.
func (r Runner) Run(ctx context.Context, db database.DB) (int, error) {
	if db == nil {
		return 0, errors.New("nil db")
	}

	migs, err := r.load()
	if err != nil || len(migs) == 0 {
		return 0, err
	}

	if _, err := db.Exec(ctx, createTableSQL); err != nil {
		return 0, fmt.Errorf("schema_migrations: %w", err)
	}

	applied := 0
	for _, m := range migs {
		ok, err := r.applyOne(ctx, db, m)
		if err != nil {
			return applied, err
		}
		if ok {
			applied++
			r.logf("Migration | applied | version=%d name=%s", m.Version, m.Name)
		}
	}
	return applied, nil
}

// Status lists every known migration with its applied time, oldest first. It
// reports checksum drift and versions the source no longer has.
func (r Runner) Status(ctx context.Context, db database.DB) ([]State, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}

	migs, err := r.load()
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(ctx, createTableSQL); err != nil {
		return nil, fmt.Errorf("schema_migrations: %w", err)
	}
	applied, err := loadApplied(ctx, db)
	if err != nil {
		return nil, err
	}
	return plan(migs, applied)
}

type appliedRow struct {
	Checksum  string
	AppliedAt time.Time
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	checksum TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// applyOne reports false when m was already applied. The applied set is read
// again under the lock so a concurrent runner's work is seen.
func (r Runner) applyOne(ctx context.Context, db database.DB, m Migration) (bool, error) {
	done := false
	err := database.WithTx(ctx, db, func(q database.Querier) error {
		if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(lockKey)); err != nil {
			return fmt.Errorf("advisory lock: %w", err)
		}

		var checksum string
		err := q.QueryRow(ctx, `SELECT checksum FROM schema_migrations WHERE version = $1`, m.Version).Scan(&checksum)
		switch {
		case err == nil:
			if checksum != m.Checksum {
				return fmt.Errorf("%w: version=%d name=%s", ErrChecksumMismatch, m.Version, m.Name)
			}
			return nil
		case !errors.Is(err, database.ErrNoRows):
			return err
		}

		if _, err := q.Exec(ctx, m.SQL); err != nil {
			return fmt.Errorf("apply migration failed: version=%d file=%s: %w", m.Version, m.Filename, err)
		}
		if _, err := q.Exec(ctx,
			`INSERT INTO schema_migrations (version, name, checksum, applied_at) VALUES ($1, $2, $3, $4)`,
			m.Version, m.Name, m.Checksum, r.clock().UTC(),
		); err != nil {
			return err
		}
		done = true
		return nil
	})
	return done, err
}

func loadApplied(ctx context.Context, q database.Querier) (map[int64]appliedRow, error) {
	rows, err := q.Query(ctx, `SELECT version, checksum, applied_at FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]appliedRow{}
	for rows.Next() {
		var (
			v   int64
			row appliedRow
		)
		if err := rows.Scan(&v, &row.Checksum, &row.AppliedAt); err != nil {
			return nil, err
		}
		out[v] = row
	}
	return out, rows.Err()
}

// plan merges source files with the applied rows.
func plan(migs []Migration, applied map[int64]appliedRow) ([]State, error) {
	out := make([]State, 0, len(migs))
	seen := make(map[int64]bool, len(migs))
	for _, m := range migs {
		seen[m.Version] = true
		st := State{Migration: m}
		if a, ok := applied[m.Version]; ok {
			if a.Checksum != m.Checksum {
				return nil, fmt.Errorf("%w: version=%d name=%s", ErrChecksumMismatch, m.Version, m.Name)
			}
			st.AppliedAt = a.AppliedAt
		}
		out = append(out, st)
	}

	var unknown []int64
	for v := range applied {
		if !seen[v] {
			unknown = append(unknown, v)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return out, fmt.Errorf("%w: versions=%v", ErrUnknownVersion, unknown)
	}
	return out, nil
}

func (r Runner) load() ([]Migration, error) {
	src, err := r.source()
	if err != nil {
		return nil, err
	}
	return loadMigrations(src)
}

func (r Runner) source() (fs.FS, error) {
	if strings.TrimSpace(r.Dir) != "" {
		return os.DirFS(r.Dir), nil
	}
	if r.FS != nil {
		return r.FS, nil
	}
	return nil, ErrNoSource
}

func (r Runner) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r Runner) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

func loadMigrations(src fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(src, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var migs []Migration
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m, ok, err := parseFile(src, e.Name())
		if err != nil {
			return nil, err
		}
		if ok {
			migs = append(migs, m)
		}
	}

	slices.SortFunc(migs, func(a, b Migration) int {
		switch {
		case a.Version < b.Version:
			return -1
		case a.Version > b.Version:
			return 1
		}
		return 0
	})
	for i := 1; i < len(migs); i++ {
		if migs[i].Version == migs[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version: %d (%s, %s)", migs[i].Version, migs[i-1].Filename, migs[i].Filename)
		}
	}
	return migs, nil
}

// parseFile reports false for names that are not migrations.
func parseFile(src fs.FS, name string) (Migration, bool, error) {
	parts := fileRe.FindStringSubmatch(name)
	if parts == nil {
		return Migration{}, false, nil
	}
	v, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || v <= 0 {
		return Migration{}, false, fmt.Errorf("invalid migration version: %s", name)
	}

	b, err := fs.ReadFile(src, name)
	if err != nil {
		return Migration{}, false, err
	}
	text := strings.TrimSpace(string(b))
	if text == "" {
		return Migration{}, false, fmt.Errorf("empty migration file: %s", name)
	}

	sum := sha256.Sum256([]byte(text))
	return Migration{
		Version:  v,
		Name:     parts[2],
		Filename: name,
		SQL:      text,
		Checksum: hex.EncodeToString(sum[:]),
	}, true, nil
}
