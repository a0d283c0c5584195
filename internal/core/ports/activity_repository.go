package ports

import (
	"context"

	"github.com/gototop/admin-api/internal/core/domain"
)

// ActivityRepository defines the persistence interface for the audit trail.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityEntry) error
	Recent(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}

// ActivityRecorder is the fire-and-forget side consumed by services: entries
// are enqueued and written asynchronously by the recorder's worker pool.
type ActivityRecorder interface {
	Record(entry domain.ActivityEntry)
}
