package ports

import (
	"context"
	"time"

	"github.com/gototop/admin-api/internal/core/domain"
)

// LeadFilter narrows and pages a lead listing. An empty Status matches all.
type LeadFilter struct {
	Status string
	Limit  int
	Offset int
}

// LeadUpdate carries the optional fields of a lead update. Nil fields are
// left untouched. AssignedName is denormalized alongside AssignedTo.
type LeadUpdate struct {
	Status       *string
	Notes        *string
	AssignedTo   *string
	AssignedName *string
}

// LeadRepository defines the persistence interface for leads.
type LeadRepository interface {
	Insert(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
	FindByID(ctx context.Context, id string) (*domain.Lead, error)
	List(ctx context.Context, filter LeadFilter) ([]domain.Lead, int64, error)
	Update(ctx context.Context, id string, update LeadUpdate) error
	Delete(ctx context.Context, id string) error
	Recent(ctx context.Context, limit int) ([]domain.Lead, error)
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountBySource(ctx context.Context) (map[string]int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
