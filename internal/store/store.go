// Package store persists the party plan in a local SQLite key-value table.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/theirongolddev/partyplan/internal/model"
	"github.com/theirongolddev/partyplan/internal/templates"

	"github.com/mitchellh/hashstructure/v2"
	_ "modernc.org/sqlite" // register sqlite driver
)

// Store provides SQLite-backed plan persistence.
type Store struct {
	db *sql.DB
}

// Open opens or creates the plan database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening plan db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadResult holds a loaded plan and notes on keys that fell back to defaults.
type LoadResult struct {
	Plan model.Plan
	// Missing lists keys with no saved value.
	Missing []string
	// Corrupt lists keys whose saved value could not be decoded.
	Corrupt []string
}

// LoadPlan reads the plan. Missing or undecodable keys fall back to the
// default plan's values; only database failures are returned as errors.
func (s *Store) LoadPlan() (*LoadResult, error) {
	def := templates.DefaultPlan()
	res := &LoadResult{Plan: def}

	var items []model.Item
	ok, err := s.get(KeyItems, &items, res)
	if err != nil {
		return nil, err
	}
	if ok {
		if items == nil {
			items = []model.Item{}
		}
		res.Plan.Items = items
	}

	var schedule []model.ScheduleSlot
	ok, err = s.get(KeySchedule, &schedule, res)
	if err != nil {
		return nil, err
	}
	if ok {
		res.Plan.Schedule = model.NormalizeSchedule(schedule)
	}

	var filter bool
	ok, err = s.get(KeyPeanutFilter, &filter, res)
	if err != nil {
		return nil, err
	}
	if ok {
		res.Plan.PeanutFreeOnly = filter
	}

	return res, nil
}

// get decodes key into dst. It reports false when the key is missing or its
// value is corrupt, recording which in res.
func (s *Store) get(key string, dst any, res *LoadResult) (bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		res.Missing = append(res.Missing, key)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		res.Corrupt = append(res.Corrupt, key)
		return false, nil
	}
	return true, nil
}

// SavePlan writes all plan keys in one transaction. Keys whose content hash
// matches the stored one are not rewritten. It returns the number of keys
// actually written.
func (s *Store) SavePlan(p model.Plan) (int, error) {
	items := p.Items
	if items == nil {
		items = []model.Item{}
	}

	values := []struct {
		key string
		v   any
	}{
		{KeyItems, items},
		{KeySchedule, model.NormalizeSchedule(p.Schedule)},
		{KeyPeanutFilter, p.PeanutFreeOnly},
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)
	written := 0
	for _, kv := range values {
		sum, err := hashstructure.Hash(kv.v, hashstructure.FormatV2, nil)
		if err != nil {
			return 0, fmt.Errorf("hashing %s: %w", kv.key, err)
		}
		hash := strconv.FormatUint(sum, 16)

		var existing string
		err = tx.QueryRow("SELECT hash FROM kv WHERE key = ?", kv.key).Scan(&existing)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("reading %s: %w", kv.key, err)
		}
		if existing == hash {
			continue
		}

		data, err := json.Marshal(kv.v)
		if err != nil {
			return 0, fmt.Errorf("encoding %s: %w", kv.key, err)
		}
		_, err = tx.Exec(`INSERT OR REPLACE INTO kv (key, value, hash, updated_at)
			VALUES (?, ?, ?, ?)`, kv.key, string(data), hash, now)
		if err != nil {
			return 0, fmt.Errorf("writing %s: %w", kv.key, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return written, nil
}

// Reset removes every saved key so the next load returns the defaults.
func (s *Store) Reset() error {
	_, err := s.db.Exec("DELETE FROM kv")
	return err
}

// LastSaved returns the most recent write time, or the zero time if nothing
// has been saved.
func (s *Store) LastSaved() (time.Time, error) {
	var ts sql.NullString
	if err := s.db.QueryRow("SELECT MAX(updated_at) FROM kv").Scan(&ts); err != nil {
		return time.Time{}, err
	}
	if !ts.Valid || ts.String == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, ts.String)
}

