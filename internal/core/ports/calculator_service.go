package ports

import (
	"context"

	"github.com/gototop/admin-api/internal/core/domain"
)

// CreateCalcTabInput is the DTO for a new calculator tab.
type CreateCalcTabInput struct {
	TabKey    string
	NameRU    string
	NameAM    string
	SortOrder int
	IsActive  bool
}

// CreateCalcServiceInput is the DTO for a new calculator service row.
type CreateCalcServiceInput struct {
	TabID      string
	NameRU     string
	NameAM     string
	Price      string
	PriceType  string
	PriceTiers string
	TierDescRU string
	TierDescAM string
	SortOrder  int
	IsActive   bool
}

// CalculatorService manages the pricing calculator tabs and service rows.
type CalculatorService interface {
	ListTabs(ctx context.Context) ([]domain.CalcTab, error)
	CreateTab(ctx context.Context, actor *domain.User, in CreateCalcTabInput) (*domain.CalcTab, error)
	UpdateTab(ctx context.Context, actor *domain.User, id string, update CalcTabUpdate) error
	DeleteTab(ctx context.Context, actor *domain.User, id string) error

	ListServices(ctx context.Context) ([]domain.CalcService, error)
	CreateService(ctx context.Context, actor *domain.User, in CreateCalcServiceInput) (*domain.CalcService, error)
	UpdateService(ctx context.Context, actor *domain.User, id string, update CalcServiceUpdate) error
	DeleteService(ctx context.Context, actor *domain.User, id string) error
}
