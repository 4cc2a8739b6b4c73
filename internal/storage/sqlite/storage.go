package sqlitestorage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"github.com/mfalcone/calendario/internal/storage"
)

type Config struct {
	Path string
}

// Storage keeps all three collections in a single embedded database
// file. SQLite works best with one writer, so the pool is capped at a
// single connection.
type Storage struct {
	storage.Subscriptions

	path string
	db   *sqlx.DB
}

func New(config Config) *Storage {
	return &Storage{path: config.Path}
}

func (s *Storage) Connect(ctx context.Context) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Errorf("failed to create database directory: %v", err)
			return storage.ErrConnectionFailed
		}
	}

	db, err := sqlx.ConnectContext(ctx, "sqlite3", s.path)
	if err != nil {
		log.Errorf("failed to connect: %v", err)
		return storage.ErrConnectionFailed
	}
	db.SetMaxOpenConns(1)
	s.db = db

	if err := s.migrate(ctx); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}
	return s.seed(ctx)
}

func (s *Storage) Close(_ context.Context) error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close connection: %w", err)
	}
	return nil
}

func (s *Storage) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS events (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			title       TEXT NOT NULL,
			date        TEXT NOT NULL,
			start_time  TEXT NOT NULL,
			end_time    TEXT NOT NULL,
			duration    INTEGER NOT NULL,
			mode        TEXT NOT NULL,
			location    TEXT NOT NULL DEFAULT '',
			meeting_url TEXT NOT NULL DEFAULT '',
			entity_id   INTEGER NOT NULL,
			materials   TEXT NOT NULL DEFAULT '',
			notes       TEXT NOT NULL DEFAULT '',
			recurrence  TEXT NOT NULL DEFAULT 'none',
			created_at  INTEGER NOT NULL,
			updated_at  INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);
		CREATE TABLE IF NOT EXISTS entities (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			name  TEXT NOT NULL UNIQUE,
			color TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// seed populates defaults on first open only. The entity check and the
// INSERT OR IGNORE on settings make a reopen of a populated store a
// no-op.
func (s *Storage) seed(ctx context.Context) error {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM entities"); err != nil {
		return err
	}
	if count == 0 {
		for _, e := range storage.DefaultEntities() {
			if _, err := s.db.ExecContext(ctx,
				"INSERT INTO entities(name, color) VALUES(?, ?)", e.Name, e.Color); err != nil {
				return err
			}
		}
	}
	for _, set := range storage.DefaultSettings() {
		if _, err := s.db.ExecContext(ctx,
			"INSERT OR IGNORE INTO settings(key, value) VALUES(?, ?)", set.Key, set.Value); err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) AddEvent(ctx context.Context, e *storage.Event) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO events(title, date, start_time, end_time, duration, mode, location,
			meeting_url, entity_id, materials, notes, recurrence, created_at, updated_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Title, e.Date, e.StartTime, e.EndTime, e.Duration, e.Mode, e.Location,
		e.MeetingURL, e.EntityID, e.Materials, e.Notes, e.Recurrence, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return err
	}
	e.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}

	s.Notify(storage.CollectionEvents)
	return nil
}

func (s *Storage) UpdateEvent(ctx context.Context, id int64, patch storage.EventPatch) error {
	var e storage.Event
	err := s.db.GetContext(ctx, &e, "SELECT * FROM events WHERE id=?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to update event with id %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return err
	}
	patch.Apply(&e)
	_, err = s.db.ExecContext(ctx,
		`UPDATE events SET title=?, date=?, start_time=?, end_time=?, duration=?, mode=?,
			location=?, meeting_url=?, entity_id=?, materials=?, notes=?, recurrence=?, updated_at=?
		 WHERE id=?`,
		e.Title, e.Date, e.StartTime, e.EndTime, e.Duration, e.Mode,
		e.Location, e.MeetingURL, e.EntityID, e.Materials, e.Notes, e.Recurrence, e.UpdatedAt, id)
	if err != nil {
		return err
	}

	s.Notify(storage.CollectionEvents)
	return nil
}

func (s *Storage) RemoveEvent(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM events WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to remove event with id %d: %w", id, storage.ErrNotFound)
	}

	s.Notify(storage.CollectionEvents)
	return nil
}

func (s *Storage) ListEvents(ctx context.Context) ([]storage.Event, error) {
	events := make([]storage.Event, 0)
	err := s.db.SelectContext(ctx, &events, "SELECT * FROM events ORDER BY id")
	return events, err
}

func (s *Storage) AddEntity(ctx context.Context, e *storage.Entity) error {
	res, err := s.db.ExecContext(ctx, "INSERT INTO entities(name, color) VALUES(?, ?)", e.Name, e.Color)
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && errors.Is(sqliteErr.ExtendedCode, sqlite3.ErrConstraintUnique) {
		return fmt.Errorf("duplicate name %q: %w", e.Name, storage.ErrDuplicateEntityName)
	}
	if err != nil {
		return err
	}
	e.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}

	s.Notify(storage.CollectionEntities)
	return nil
}

// UpdateEntity applies a rename or recolor without re-checking name
// uniqueness; the UNIQUE column still rejects exact collisions at the
// database level, which mirrors creation-time behavior closely enough
// for the single-writer case.
func (s *Storage) UpdateEntity(ctx context.Context, id int64, patch storage.EntityPatch) error {
	var e storage.Entity
	err := s.db.GetContext(ctx, &e, "SELECT * FROM entities WHERE id=?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to update entity with id %d: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return err
	}
	patch.Apply(&e)
	if _, err := s.db.ExecContext(ctx, "UPDATE entities SET name=?, color=? WHERE id=?", e.Name, e.Color, id); err != nil {
		return err
	}

	s.Notify(storage.CollectionEntities)
	return nil
}

func (s *Storage) RemoveEntity(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM entities WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("failed to remove entity with id %d: %w", id, storage.ErrNotFound)
	}

	s.Notify(storage.CollectionEntities)
	return nil
}

func (s *Storage) ListEntities(ctx context.Context) ([]storage.Entity, error) {
	entities := make([]storage.Entity, 0)
	err := s.db.SelectContext(ctx, &entities, "SELECT * FROM entities ORDER BY id")
	return entities, err
}

func (s *Storage) GetEntity(ctx context.Context, id int64) (storage.Entity, error) {
	var e storage.Entity
	err := s.db.GetContext(ctx, &e, "SELECT * FROM entities WHERE id=?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Entity{}, fmt.Errorf("failed to get entity with id %d: %w", id, storage.ErrNotFound)
	}
	return e, err
}

func (s *Storage) GetSetting(ctx context.Context, key string) (storage.Setting, error) {
	var set storage.Setting
	err := s.db.GetContext(ctx, &set, "SELECT * FROM settings WHERE key=?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.Setting{}, fmt.Errorf("failed to get setting %q: %w", key, storage.ErrNotFound)
	}
	return set, err
}

func (s *Storage) PutSetting(ctx context.Context, key string, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO settings(key, value) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value",
		key, value)
	if err != nil {
		return err
	}

	s.Notify(storage.CollectionSettings)
	return nil
}

func (s *Storage) ListSettings(ctx context.Context) ([]storage.Setting, error) {
	settings := make([]storage.Setting, 0)
	err := s.db.SelectContext(ctx, &settings, "SELECT * FROM settings ORDER BY key")
	return settings, err
}
