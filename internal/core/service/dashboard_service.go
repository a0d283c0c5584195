package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
)

const (
	recentLeadCount     = 5
	recentActivityCount = 10
	defaultActivityPage = 20
	maxActivityPage     = 100
)

// DashboardService aggregates counters for the dashboard page and serves the
// audit trail.
type DashboardService struct {
	leads    ports.LeadRepository
	users    ports.UserRepository
	activity ports.ActivityRepository
}

func NewDashboardService(leads ports.LeadRepository, users ports.UserRepository, activity ports.ActivityRepository) *DashboardService {
	return &DashboardService{leads: leads, users: users, activity: activity}
}

func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	byStatus, err := s.leads.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	bySource, err := s.leads.CountBySource(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}

	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	today, err := s.leads.CountCreatedSince(ctx, midnight)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	totalUsers, activeUsers, err := s.users.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	recentLeads, err := s.leads.Recent(ctx, recentLeadCount)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	recentActivity, err := s.activity.Recent(ctx, recentActivityCount)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}

	return &ports.DashboardStats{
		Leads: ports.LeadStats{
			Total:      total,
			New:        byStatus[string(domain.LeadStatusNew)],
			InProgress: byStatus[string(domain.LeadStatusInProgress)],
			Completed:  byStatus[string(domain.LeadStatusCompleted)],
			Today:      today,
			ByStatus:   byStatus,
			BySource:   bySource,
		},
		Users: ports.UserStats{
			Total:  totalUsers,
			Active: activeUsers,
		},
		RecentLeads:    recentLeads,
		RecentActivity: recentActivity,
	}, nil
}

func (s *DashboardService) Activity(ctx context.Context, limit int) ([]domain.ActivityEntry, error) {
	if limit <= 0 {
		limit = defaultActivityPage
	}
	if limit > maxActivityPage {
		limit = maxActivityPage
	}
	entries, err := s.activity.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("activity log: %w", err)
	}
	return entries, nil
}
