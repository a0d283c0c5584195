package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
)

// CalculatorService manages the pricing calculator tabs and service rows.
type CalculatorService struct {
	calc     ports.CalculatorRepository
	recorder ports.ActivityRecorder
}

func NewCalculatorService(calc ports.CalculatorRepository, recorder ports.ActivityRecorder) *CalculatorService {
	return &CalculatorService{calc: calc, recorder: recorder}
}

func (s *CalculatorService) ListTabs(ctx context.Context) ([]domain.CalcTab, error) {
	tabs, err := s.calc.ListTabs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calc tabs: %w", err)
	}
	return tabs, nil
}

func (s *CalculatorService) CreateTab(ctx context.Context, actor *domain.User, in ports.CreateCalcTabInput) (*domain.CalcTab, error) {
	tab := &domain.CalcTab{
		TabKey:    in.TabKey,
		NameRU:    in.NameRU,
		NameAM:    in.NameAM,
		SortOrder: in.SortOrder,
		IsActive:  in.IsActive,
		UpdatedAt: time.Now().UTC(),
	}
	created, err := s.calc.InsertTab(ctx, tab)
	if err != nil {
		return nil, fmt.Errorf("create calc tab: %w", err)
	}
	s.record(actor, "create_calc_tab", "Вкладка: "+in.NameRU)
	return created, nil
}

func (s *CalculatorService) UpdateTab(ctx context.Context, actor *domain.User, id string, update ports.CalcTabUpdate) error {
	if err := s.calc.UpdateTab(ctx, id, update); err != nil {
		return err
	}
	s.record(actor, "update_calc_tab", "Вкладка: "+id)
	return nil
}

func (s *CalculatorService) DeleteTab(ctx context.Context, actor *domain.User, id string) error {
	if err := s.calc.DeleteTab(ctx, id); err != nil {
		return err
	}
	s.record(actor, "delete_calc_tab", "Вкладка: "+id)
	return nil
}

func (s *CalculatorService) ListServices(ctx context.Context) ([]domain.CalcService, error) {
	services, err := s.calc.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calc services: %w", err)
	}
	return services, nil
}

func (s *CalculatorService) CreateService(ctx context.Context, actor *domain.User, in ports.CreateCalcServiceInput) (*domain.CalcService, error) {
	svc := &domain.CalcService{
		TabID:      in.TabID,
		NameRU:     in.NameRU,
		NameAM:     in.NameAM,
		Price:      in.Price,
		PriceType:  in.PriceType,
		PriceTiers: in.PriceTiers,
		TierDescRU: in.TierDescRU,
		TierDescAM: in.TierDescAM,
		SortOrder:  in.SortOrder,
		IsActive:   in.IsActive,
		UpdatedAt:  time.Now().UTC(),
	}
	created, err := s.calc.InsertService(ctx, svc)
	if err != nil {
		return nil, fmt.Errorf("create calc service: %w", err)
	}
	s.record(actor, "create_calc_service", "Услуга: "+in.NameRU)
	return created, nil
}

func (s *CalculatorService) UpdateService(ctx context.Context, actor *domain.User, id string, update ports.CalcServiceUpdate) error {
	if err := s.calc.UpdateService(ctx, id, update); err != nil {
		return err
	}
	s.record(actor, "update_calc_service", "Услуга: "+id)
	return nil
}

func (s *CalculatorService) DeleteService(ctx context.Context, actor *domain.User, id string) error {
	if err := s.calc.DeleteService(ctx, id); err != nil {
		return err
	}
	s.record(actor, "delete_calc_service", "Услуга: "+id)
	return nil
}

func (s *CalculatorService) record(actor *domain.User, action, details string) {
	if s.recorder == nil {
		return
	}
	s.recorder.Record(domain.ActivityEntry{
		UserID:   actor.ID,
		UserName: displayName(actor),
		Action:   action,
		Details:  details,
	})
}
