package store

import (
	"context"

	"github.com/rcliao/quotebot/internal/model"
)

// ExportRun returns every delivery of one run in send order.
func (s *SQLiteStore) ExportRun(ctx context.Context, runID string) ([]model.Delivery, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, mode, kind, message, ok, reason, error, sent_at
		FROM deliveries WHERE run_id = ?
		ORDER BY sent_at, id`, runID)
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
