package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
)

const (
	defaultLeadLimit = 50
	maxLeadLimit     = 500
)

// LeadService implements CRM lead management and public lead intake.
type LeadService struct {
	leads    ports.LeadRepository
	users    ports.UserRepository
	recorder ports.ActivityRecorder
	log      zerolog.Logger
}

func NewLeadService(leads ports.LeadRepository, users ports.UserRepository, recorder ports.ActivityRecorder, log zerolog.Logger) *LeadService {
	return &LeadService{leads: leads, users: users, recorder: recorder, log: log}
}

func (s *LeadService) List(ctx context.Context, filter ports.LeadFilter) ([]domain.Lead, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultLeadLimit
	}
	if filter.Limit > maxLeadLimit {
		filter.Limit = maxLeadLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Status == "all" {
		filter.Status = ""
	}

	leads, total, err := s.leads.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list leads: %w", err)
	}
	return leads, total, nil
}

func (s *LeadService) Create(ctx context.Context, actor *domain.User, in ports.CreateLeadInput) (*domain.Lead, error) {
	lead, err := s.insert(ctx, in, "manual")
	if err != nil {
		return nil, err
	}
	if s.recorder != nil {
		s.recorder.Record(domain.ActivityEntry{
			UserID:   actor.ID,
			UserName: displayName(actor),
			Action:   "create_lead",
			Details:  "Лид: " + in.Name,
		})
	}
	return lead, nil
}

// Submit stores a lead arriving from the public landing form. It runs
// unauthenticated and records no activity.
func (s *LeadService) Submit(ctx context.Context, in ports.CreateLeadInput) error {
	_, err := s.insert(ctx, in, "form")
	return err
}

func (s *LeadService) insert(ctx context.Context, in ports.CreateLeadInput, defaultSource string) (*domain.Lead, error) {
	source := in.Source
	if source == "" {
		source = defaultSource
	}
	lang := in.Lang
	if lang == "" {
		lang = "ru"
	}

	now := time.Now().UTC()
	lead := &domain.Lead{
		Source:    source,
		Name:      in.Name,
		Contact:   in.Contact,
		Product:   in.Product,
		Service:   in.Service,
		Message:   in.Message,
		Lang:      lang,
		Status:    domain.LeadStatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.leads.Insert(ctx, lead)
	if err != nil {
		return nil, fmt.Errorf("insert lead: %w", err)
	}
	return created, nil
}

func (s *LeadService) Update(ctx context.Context, actor *domain.User, id string, update ports.LeadUpdate) error {
	// Assigning a user denormalizes their display name onto the lead so the
	// list view needs no join.
	if update.AssignedTo != nil {
		name := ""
		if *update.AssignedTo != "" {
			assignee, err := s.users.FindByID(ctx, *update.AssignedTo)
			if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
				return fmt.Errorf("update lead: resolve assignee: %w", err)
			}
			if assignee != nil {
				name = displayName(assignee)
			}
		}
		update.AssignedName = &name
	}

	if err := s.leads.Update(ctx, id, update); err != nil {
		return err
	}
	if s.recorder != nil {
		s.recorder.Record(domain.ActivityEntry{
			UserID:   actor.ID,
			UserName: displayName(actor),
			Action:   "update_lead",
			Details:  "Обновлён лид: " + id,
		})
	}
	return nil
}

func (s *LeadService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if err := s.leads.Delete(ctx, id); err != nil {
		return err
	}
	if s.recorder != nil {
		s.recorder.Record(domain.ActivityEntry{
			UserID:   actor.ID,
			UserName: displayName(actor),
			Action:   "delete_lead",
			Details:  "Удалён лид: " + id,
		})
	}
	return nil
}
