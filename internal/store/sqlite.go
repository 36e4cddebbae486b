package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/quotebot/internal/model"
)

// timeLayout is fixed-width so that sent_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *rand.Rand
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// NewID returns a fresh ULID. Run ids and delivery ids share this scheme so
// they sort by creation time.
func (s *SQLiteStore) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS deliveries (
		id       TEXT PRIMARY KEY,
		run_id   TEXT NOT NULL,
		mode     TEXT NOT NULL,
		kind     TEXT NOT NULL,
		message  TEXT NOT NULL,
		ok       INTEGER NOT NULL,
		reason   TEXT,
		error    TEXT,
		sent_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_deliveries_run ON deliveries(run_id);
	CREATE INDEX IF NOT EXISTS idx_deliveries_mode ON deliveries(mode);
	CREATE INDEX IF NOT EXISTS idx_deliveries_sent ON deliveries(sent_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Record(ctx context.Context, d model.Delivery) (*model.Delivery, error) {
	if d.ID == "" {
		d.ID = s.NewID()
	}
	if d.SentAt.IsZero() {
		d.SentAt = time.Now()
	}
	d.SentAt = d.SentAt.UTC()

	var reason, errText *string
	if d.Reason != "" {
		reason = &d.Reason
	}
	if d.Error != "" {
		errText = &d.Error
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO deliveries (id, run_id, mode, kind, message, ok, reason, error, sent_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.RunID, string(d.Mode), d.Kind, d.Message, boolInt(d.OK), reason, errText,
		d.SentAt.Format(timeLayout))
	if err != nil {
		return nil, fmt.Errorf("insert delivery: %w", err)
	}
	return &d, nil
}

func (s *SQLiteStore) Recent(ctx context.Context, p RecentParams) ([]model.Delivery, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	where := []string{"1 = 1"}
	args := []interface{}{}

	if p.RunID != "" {
		where = append(where, "run_id = ?")
		args = append(args, p.RunID)
	}
	if p.Mode != "" {
		where = append(where, "mode = ?")
		args = append(args, string(p.Mode))
	}
	if p.Failed {
		where = append(where, "ok = 0")
	}

	query := fmt.Sprintf(`
		SELECT id, run_id, mode, kind, message, ok, reason, error, sent_at
		FROM deliveries
		WHERE %s
		ORDER BY sent_at DESC, id DESC
		LIMIT ?`, strings.Join(where, " AND "))
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Delivery
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanDelivery(row scanner) (model.Delivery, error) {
	var d model.Delivery
	var mode, sentAt string
	var ok int
	var reason, errText sql.NullString

	err := row.Scan(&d.ID, &d.RunID, &mode, &d.Kind, &d.Message, &ok, &reason, &errText, &sentAt)
	if err != nil {
		return d, err
	}

	d.Mode = model.Mode(mode)
	d.OK = ok != 0
	d.SentAt, _ = time.Parse(timeLayout, sentAt)
	if reason.Valid {
		d.Reason = reason.String
	}
	if errText.Valid {
		d.Error = errText.String
	}
	return d, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
