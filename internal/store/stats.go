package store

import (
	"context"
	"os"
)

// Stats holds delivery statistics.
type Stats struct {
	DBPath      string        `json:"db_path"`
	DBSizeBytes int64         `json:"db_size_bytes"`
	Total       int           `json:"total"`
	Succeeded   int           `json:"succeeded"`
	Failed      int           `json:"failed"`
	Runs        int           `json:"runs"`
	LastRunID   string        `json:"last_run_id,omitempty"`
	Modes       []ModeStats   `json:"modes"`
	Reasons     []ReasonStats `json:"failure_reasons,omitempty"`
}

// ModeStats holds per-mode counts.
type ModeStats struct {
	Mode      string `json:"mode"`
	Count     int    `json:"count"`
	Succeeded int    `json:"succeeded"`
}

// ReasonStats counts failures by reason.
type ReasonStats struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

// Stats returns delivery statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(ok), 0), COUNT(DISTINCT run_id) FROM deliveries`).
		Scan(&st.Total, &st.Succeeded, &st.Runs)
	if err != nil {
		return st, err
	}
	st.Failed = st.Total - st.Succeeded

	// ULIDs sort by time, so the greatest run id is the latest run.
	s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(run_id), '') FROM deliveries`).Scan(&st.LastRunID)

	rows, err := s.db.QueryContext(ctx, `
		SELECT mode, COUNT(*) AS cnt, COALESCE(SUM(ok), 0)
		FROM deliveries
		GROUP BY mode ORDER BY cnt DESC, mode`)
	if err != nil {
		return st, err
	}
	defer rows.Close()
	for rows.Next() {
		var m ModeStats
		if err := rows.Scan(&m.Mode, &m.Count, &m.Succeeded); err != nil {
			return st, err
		}
		st.Modes = append(st.Modes, m)
	}
	if err := rows.Err(); err != nil {
		return st, err
	}

	rrows, err := s.db.QueryContext(ctx, `
		SELECT reason, COUNT(*) AS cnt
		FROM deliveries WHERE ok = 0 AND reason IS NOT NULL
		GROUP BY reason ORDER BY cnt DESC, reason`)
	if err != nil {
		return st, err
	}
	defer rrows.Close()
	for rrows.Next() {
		var r ReasonStats
		if err := rrows.Scan(&r.Reason, &r.Count); err != nil {
			return st, err
		}
		st.Reasons = append(st.Reasons, r)
	}

	return st, rrows.Err()
}
