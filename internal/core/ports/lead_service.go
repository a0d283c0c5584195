package ports

import (
	"context"

	"github.com/gototop/admin-api/internal/core/domain"
)

// CreateLeadInput is the DTO for a new lead, whether entered manually in the
// panel or submitted from the public landing form.
type CreateLeadInput struct {
	Source  string
	Name    string
	Contact string
	Product string
	Service string
	Message string
	Lang    string
}

// LeadService manages the CRM lead list.
type LeadService interface {
	List(ctx context.Context, filter LeadFilter) ([]domain.Lead, int64, error)
	Create(ctx context.Context, actor *domain.User, in CreateLeadInput) (*domain.Lead, error)
	// Submit stores a lead coming from the public landing page. No actor.
	Submit(ctx context.Context, in CreateLeadInput) error
	Update(ctx context.Context, actor *domain.User, id string, update LeadUpdate) error
	Delete(ctx context.Context, actor *domain.User, id string) error
}
