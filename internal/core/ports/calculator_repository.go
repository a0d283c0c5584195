package ports

import (
	"context"

	"github.com/gototop/admin-api/internal/core/domain"
)

// CalcTabUpdate carries the optional fields of a calculator tab update.
type CalcTabUpdate struct {
	NameRU    *string
	NameAM    *string
	SortOrder *int
	IsActive  *bool
}

// CalcServiceUpdate carries the optional fields of a calculator service update.
type CalcServiceUpdate struct {
	NameRU     *string
	NameAM     *string
	Price      *string
	PriceType  *string
	PriceTiers *string
	TierDescRU *string
	TierDescAM *string
	SortOrder  *int
	IsActive   *bool
}

// CalculatorRepository defines the persistence interface for the pricing
// calculator: tabs and the service rows belonging to them.
type CalculatorRepository interface {
	ListTabs(ctx context.Context) ([]domain.CalcTab, error)
	InsertTab(ctx context.Context, tab *domain.CalcTab) (*domain.CalcTab, error)
	UpdateTab(ctx context.Context, id string, update CalcTabUpdate) error
	DeleteTab(ctx context.Context, id string) error

	ListServices(ctx context.Context) ([]domain.CalcService, error)
	InsertService(ctx context.Context, svc *domain.CalcService) (*domain.CalcService, error)
	UpdateService(ctx context.Context, id string, update CalcServiceUpdate) error
	DeleteService(ctx context.Context, id string) error
}
