package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
)

type stubLeadRepo struct {
	leads      []domain.Lead
	lastFilter ports.LeadFilter
	lastUpdate ports.LeadUpdate
	lastID     string
}

func (r *stubLeadRepo) Insert(_ context.Context, lead *domain.Lead) (*domain.Lead, error) {
	created := *lead
	created.ID = "lead_1"
	r.leads = append(r.leads, created)
	return &created, nil
}

func (r *stubLeadRepo) FindByID(_ context.Context, id string) (*domain.Lead, error) {
	for i := range r.leads {
		if r.leads[i].ID == id {
			return &r.leads[i], nil
		}
	}
	return nil, domain.ErrLeadNotFound
}

func (r *stubLeadRepo) List(_ context.Context, filter ports.LeadFilter) ([]domain.Lead, int64, error) {
	r.lastFilter = filter
	return r.leads, int64(len(r.leads)), nil
}

func (r *stubLeadRepo) Update(_ context.Context, id string, update ports.LeadUpdate) error {
	r.lastID = id
	r.lastUpdate = update
	return nil
}

func (r *stubLeadRepo) Delete(_ context.Context, id string) error {
	r.lastID = id
	return nil
}

func (r *stubLeadRepo) Recent(_ context.Context, limit int) ([]domain.Lead, error) {
	if limit > len(r.leads) {
		limit = len(r.leads)
	}
	return r.leads[:limit], nil
}

func (r *stubLeadRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, l := range r.leads {
		out[string(l.Status)]++
	}
	return out, nil
}

func (r *stubLeadRepo) CountBySource(_ context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, l := range r.leads {
		out[l.Source]++
	}
	return out, nil
}

func (r *stubLeadRepo) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	var n int64
	for _, l := range r.leads {
		if !l.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func newLeadFixture(t *testing.T, users ...*domain.User) (*LeadService, *stubLeadRepo, *stubRecorder) {
	t.Helper()
	repo := &stubLeadRepo{}
	recorder := &stubRecorder{}
	svc := NewLeadService(repo, newStubUserRepo(users...), recorder, zerolog.Nop())
	return svc, repo, recorder
}

func TestLeadService_List_ClampsAndNormalizes(t *testing.T) {
	svc, repo, _ := newLeadFixture(t)

	if _, _, err := svc.List(context.Background(), ports.LeadFilter{}); err != nil {
		t.Fatalf("list error: %v", err)
	}
	if repo.lastFilter.Limit != defaultLeadLimit {
		t.Fatalf("expected default limit %d, got %d", defaultLeadLimit, repo.lastFilter.Limit)
	}

	if _, _, err := svc.List(context.Background(), ports.LeadFilter{Limit: 9999, Offset: -3, Status: "all"}); err != nil {
		t.Fatalf("list error: %v", err)
	}
	if repo.lastFilter.Limit != maxLeadLimit {
		t.Fatalf("expected clamped limit %d, got %d", maxLeadLimit, repo.lastFilter.Limit)
	}
	if repo.lastFilter.Offset != 0 {
		t.Fatalf("expected offset 0, got %d", repo.lastFilter.Offset)
	}
	if repo.lastFilter.Status != "" {
		t.Fatalf("'all' should collapse to no filter, got %q", repo.lastFilter.Status)
	}
}

func TestLeadService_Create_ManualDefaults(t *testing.T) {
	svc, _, recorder := newLeadFixture(t)
	actor := &domain.User{ID: "u1", Username: "alice"}

	lead, err := svc.Create(context.Background(), actor, ports.CreateLeadInput{Name: "Иван", Contact: "+374"})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if lead.Source != "manual" {
		t.Fatalf("expected source manual, got %q", lead.Source)
	}
	if lead.Status != domain.LeadStatusNew {
		t.Fatalf("expected status new, got %q", lead.Status)
	}
	if lead.Lang != "ru" {
		t.Fatalf("expected default lang ru, got %q", lead.Lang)
	}
	if len(recorder.entries) != 1 || recorder.entries[0].Action != "create_lead" {
		t.Fatalf("expected create_lead activity, got %+v", recorder.entries)
	}
}

func TestLeadService_Submit_FormDefaultsNoActivity(t *testing.T) {
	svc, repo, recorder := newLeadFixture(t)

	if err := svc.Submit(context.Background(), ports.CreateLeadInput{Name: "Иван", Contact: "+374"}); err != nil {
		t.Fatalf("submit error: %v", err)
	}
	if len(repo.leads) != 1 || repo.leads[0].Source != "form" {
		t.Fatalf("expected one lead with source form, got %+v", repo.leads)
	}
	if len(recorder.entries) != 0 {
		t.Fatalf("public submissions must not write activity, got %+v", recorder.entries)
	}
}

func TestLeadService_Update_DenormalizesAssignee(t *testing.T) {
	assignee := &domain.User{ID: "u2", Username: "bob", DisplayName: "Боб", Role: domain.RoleOperator}
	svc, repo, _ := newLeadFixture(t, assignee)
	actor := &domain.User{ID: "u1", Username: "alice"}

	to := "u2"
	if err := svc.Update(context.Background(), actor, "lead_1", ports.LeadUpdate{AssignedTo: &to}); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if repo.lastUpdate.AssignedName == nil || *repo.lastUpdate.AssignedName != "Боб" {
		t.Fatalf("expected denormalized assignee name, got %+v", repo.lastUpdate.AssignedName)
	}
}

func TestLeadService_Update_ClearsAssignee(t *testing.T) {
	svc, repo, _ := newLeadFixture(t)
	actor := &domain.User{ID: "u1", Username: "alice"}

	to := ""
	if err := svc.Update(context.Background(), actor, "lead_1", ports.LeadUpdate{AssignedTo: &to}); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if repo.lastUpdate.AssignedName == nil || *repo.lastUpdate.AssignedName != "" {
		t.Fatalf("expected cleared assignee name, got %+v", repo.lastUpdate.AssignedName)
	}
}

func TestLeadService_Update_UnknownAssigneeTolerated(t *testing.T) {
	// Pointing a lead at a deleted account should not fail the update; the
	// name simply clears.
	svc, repo, _ := newLeadFixture(t)
	actor := &domain.User{ID: "u1", Username: "alice"}

	to := "ghost"
	if err := svc.Update(context.Background(), actor, "lead_1", ports.LeadUpdate{AssignedTo: &to}); err != nil {
		t.Fatalf("update error: %v", err)
	}
	if repo.lastUpdate.AssignedName == nil || *repo.lastUpdate.AssignedName != "" {
		t.Fatalf("expected empty assignee name for unknown user, got %+v", repo.lastUpdate.AssignedName)
	}
}

func TestLeadService_Delete_RecordsActivity(t *testing.T) {
	svc, repo, recorder := newLeadFixture(t)
	actor := &domain.User{ID: "u1", Username: "alice"}

	if err := svc.Delete(context.Background(), actor, "lead_9"); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if repo.lastID != "lead_9" {
		t.Fatalf("expected delete of lead_9, got %q", repo.lastID)
	}
	if len(recorder.entries) != 1 || recorder.entries[0].Action != "delete_lead" {
		t.Fatalf("expected delete_lead activity, got %+v", recorder.entries)
	}
}

type stubActivityRepo struct {
	entries []domain.ActivityEntry
}

func (r *stubActivityRepo) Insert(_ context.Context, entry *domain.ActivityEntry) error {
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *stubActivityRepo) Recent(_ context.Context, limit int) ([]domain.ActivityEntry, error) {
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	return r.entries[:limit], nil
}

func TestDashboardService_Stats(t *testing.T) {
	leadRepo := &stubLeadRepo{leads: []domain.Lead{
		{ID: "l1", Source: "form", Status: domain.LeadStatusNew, CreatedAt: time.Now().UTC()},
		{ID: "l2", Source: "manual", Status: domain.LeadStatusNew, CreatedAt: time.Now().UTC().Add(-48 * time.Hour)},
		{ID: "l3", Source: "form", Status: domain.LeadStatusCompleted, CreatedAt: time.Now().UTC()},
	}}
	userRepo := newStubUserRepo(
		&domain.User{ID: "u1", Username: "a", IsActive: true},
		&domain.User{ID: "u2", Username: "b", IsActive: false},
	)
	activityRepo := &stubActivityRepo{entries: []domain.ActivityEntry{{Action: "login"}}}

	svc := NewDashboardService(leadRepo, userRepo, activityRepo)
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats error: %v", err)
	}

	if stats.Leads.Total != 3 {
		t.Fatalf("expected 3 total leads, got %d", stats.Leads.Total)
	}
	if stats.Leads.New != 2 || stats.Leads.Completed != 1 {
		t.Fatalf("unexpected status counts: %+v", stats.Leads)
	}
	if stats.Leads.Today != 2 {
		t.Fatalf("expected 2 leads today, got %d", stats.Leads.Today)
	}
	if stats.Leads.BySource["form"] != 2 {
		t.Fatalf("unexpected source counts: %+v", stats.Leads.BySource)
	}
	if stats.Users.Total != 2 || stats.Users.Active != 1 {
		t.Fatalf("unexpected user counts: %+v", stats.Users)
	}
	if len(stats.RecentActivity) != 1 {
		t.Fatalf("expected recent activity, got %+v", stats.RecentActivity)
	}
}

func TestDashboardService_Activity_Clamps(t *testing.T) {
	activityRepo := &stubActivityRepo{}
	for i := 0; i < 150; i++ {
		activityRepo.entries = append(activityRepo.entries, domain.ActivityEntry{Action: "login"})
	}
	svc := NewDashboardService(&stubLeadRepo{}, newStubUserRepo(), activityRepo)

	entries, err := svc.Activity(context.Background(), 0)
	if err != nil {
		t.Fatalf("activity error: %v", err)
	}
	if len(entries) != defaultActivityPage {
		t.Fatalf("expected default page %d, got %d", defaultActivityPage, len(entries))
	}

	entries, err = svc.Activity(context.Background(), 9999)
	if err != nil {
		t.Fatalf("activity error: %v", err)
	}
	if len(entries) != maxActivityPage {
		t.Fatalf("expected clamped page %d, got %d", maxActivityPage, len(entries))
	}
}

func TestDashboardService_StatsErrorPropagates(t *testing.T) {
	svc := NewDashboardService(failingLeadRepo{&stubLeadRepo{}}, newStubUserRepo(), &stubActivityRepo{})

	if _, err := svc.Stats(context.Background()); err == nil {
		t.Fatalf("expected error from failing repo")
	}
}

type failingLeadRepo struct{ *stubLeadRepo }

func (failingLeadRepo) CountByStatus(context.Context) (map[string]int64, error) {
	return nil, errors.New("mongo down")
}
