package ports

import (
	"context"

	"github.com/gototop/admin-api/internal/core/domain"
)

// LeadStats aggregates lead counts for the dashboard.
type LeadStats struct {
	Total      int64            `json:"total"`
	New        int64            `json:"new"`
	InProgress int64            `json:"in_progress"`
	Completed  int64            `json:"completed"`
	Today      int64            `json:"today"`
	ByStatus   map[string]int64 `json:"by_status"`
	BySource   map[string]int64 `json:"by_source"`
}

// UserStats aggregates account counts for the dashboard.
type UserStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

// DashboardStats is the full dashboard payload.
type DashboardStats struct {
	Leads          LeadStats              `json:"leads"`
	Users          UserStats              `json:"users"`
	RecentLeads    []domain.Lead          `json:"recent_leads"`
	RecentActivity []domain.ActivityEntry `json:"recent_activity"`
}

// DashboardService computes dashboard aggregates and serves the audit trail.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	Activity(ctx context.Context, limit int) ([]domain.ActivityEntry, error)
}
