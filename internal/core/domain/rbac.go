package domain

import "fmt"

// RoleDefaults is the static mapping from each role to its default section
// set, used only when an account carries no explicit permissions override.
// Kept as a lookup table (not denormalized into user records) so that future
// default changes retroactively apply to accounts without overrides.
var RoleDefaults = map[string][]string{
	RoleMainAdmin: Sections,
	RoleDeveloper: {SectionDashboard, SectionContent, SectionCalculator, SectionAnalytics, SectionSettings},
	RoleAnalyst:   {SectionDashboard, SectionLeads, SectionAnalytics},
	RoleOperator:  {SectionDashboard, SectionLeads},
	RoleBuyer:     {SectionDashboard, SectionOrders},
	RoleCourier:   {SectionDashboard, SectionOrders},
}

// SectionForbiddenError is returned when a user attempts to reach a section
// outside their effective permission set. It names the attempted section so
// the transport layer can surface it in the denial message.
type SectionForbiddenError struct {
	Section string
}

func (e *SectionForbiddenError) Error() string {
	label := SectionLabels[e.Section]
	if label == "" {
		label = e.Section
	}
	return fmt.Sprintf("нет доступа к разделу: %s", label)
}

// IsMainAdmin reports whether the user holds the main admin role.
func (u *User) IsMainAdmin() bool {
	return u.Role == RoleMainAdmin
}

// EffectivePermissions returns the section set actually used for access
// decisions: the explicit override when stored, else the role default.
// Main admins always resolve to the full section list, regardless of what
// their stored permissions field says — the override is computed live, never
// trusted from stale stored data.
func (u *User) EffectivePermissions() []string {
	if u.IsMainAdmin() {
		return Sections
	}
	if u.Permissions != nil {
		return u.Permissions
	}
	return RoleDefaults[u.Role]
}

// CanAccess decides whether the user may reach the given section.
func (u *User) CanAccess(section string) bool {
	if u.IsMainAdmin() {
		return true
	}
	for _, s := range u.EffectivePermissions() {
		if s == section {
			return true
		}
	}
	return false
}

// RequireAccess is the enforcing counterpart of CanAccess. It returns a
// *SectionForbiddenError naming the attempted section when access is denied.
func RequireAccess(u *User, section string) error {
	if !u.CanAccess(section) {
		return &SectionForbiddenError{Section: section}
	}
	return nil
}
