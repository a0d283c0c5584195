package domain

import (
	"errors"
	"testing"
)

func TestEffectivePermissions_RoleDefaults(t *testing.T) {
	u := &User{Role: RoleOperator}

	got := u.EffectivePermissions()
	want := []string{SectionDashboard, SectionLeads}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestEffectivePermissions_ExplicitOverride(t *testing.T) {
	u := &User{Role: RoleOperator, Permissions: []string{SectionContent}}

	if !u.CanAccess(SectionContent) {
		t.Fatalf("override should grant content")
	}
	if u.CanAccess(SectionLeads) {
		t.Fatalf("override should revoke the role default leads")
	}
}

func TestEffectivePermissions_EmptyOverrideRevokesAll(t *testing.T) {
	// Empty but non-nil: an explicit "nothing" grant, not "use defaults".
	u := &User{Role: RoleAnalyst, Permissions: []string{}}

	for _, section := range Sections {
		if u.CanAccess(section) {
			t.Fatalf("empty override should deny %s", section)
		}
	}
}

func TestEffectivePermissions_MainAdminIgnoresStoredSet(t *testing.T) {
	// A stale or tampered stored set must not restrict the main admin.
	u := &User{Role: RoleMainAdmin, Permissions: []string{}}

	for _, section := range Sections {
		if !u.CanAccess(section) {
			t.Fatalf("main admin denied %s", section)
		}
	}
	if len(u.EffectivePermissions()) != len(Sections) {
		t.Fatalf("main admin should resolve to the full section list")
	}
}

func TestCanAccess_OperatorDefaults(t *testing.T) {
	u := &User{Role: RoleOperator}

	if !u.CanAccess(SectionDashboard) {
		t.Fatalf("operator should see dashboard")
	}
	if u.CanAccess(SectionEmployees) {
		t.Fatalf("operator should not see employees")
	}
}

func TestRequireAccess_NamesSection(t *testing.T) {
	u := &User{Role: RoleCourier}

	err := RequireAccess(u, SectionSettings)
	if err == nil {
		t.Fatalf("expected denial")
	}
	var forbidden *SectionForbiddenError
	if !errors.As(err, &forbidden) {
		t.Fatalf("expected SectionForbiddenError, got %T", err)
	}
	if forbidden.Section != SectionSettings {
		t.Fatalf("expected section %q, got %q", SectionSettings, forbidden.Section)
	}
}

func TestRequireAccess_Allowed(t *testing.T) {
	u := &User{Role: RoleCourier}

	if err := RequireAccess(u, SectionOrders); err != nil {
		t.Fatalf("courier should reach orders: %v", err)
	}
}

func TestRoleDefaults_OnlyValidSections(t *testing.T) {
	for role, sections := range RoleDefaults {
		for _, section := range sections {
			if !ValidSection(section) {
				t.Fatalf("role %s defaults contain invalid section %q", role, section)
			}
		}
	}
}
