// Package store provides the delivery history interface and SQLite implementation.
package store

import (
	"context"

	"github.com/rcliao/quotebot/internal/model"
)

// RecentParams holds parameters for listing deliveries.
type RecentParams struct {
	RunID  string
	Mode   model.Mode
	Failed bool // only failed deliveries
	Limit  int
}

// Store defines the delivery history interface.
type Store interface {
	// Record stores one delivery attempt. An empty ID is assigned; the stored
	// record is returned.
	Record(ctx context.Context, d model.Delivery) (*model.Delivery, error)

	// Recent lists deliveries, newest first.
	Recent(ctx context.Context, p RecentParams) ([]model.Delivery, error)

	// Close closes the store.
	Close() error
}
