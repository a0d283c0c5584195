package domain

import (
	"errors"
	"time"
)

// Roles an employee account can hold. RoleMainAdmin is special: it bypasses
// every section check and is the only role allowed to mutate other accounts.
const (
	RoleMainAdmin = "main_admin"
	RoleDeveloper = "developer"
	RoleAnalyst   = "analyst"
	RoleOperator  = "operator"
	RoleBuyer     = "buyer"
	RoleCourier   = "courier"
)

// Sections of the admin panel. Section membership gates visibility of a
// feature area; it does not grant mutation rights within it.
const (
	SectionDashboard   = "dashboard"
	SectionLeads       = "leads"
	SectionEmployees   = "employees"
	SectionPermissions = "permissions"
	SectionOrders      = "orders"
	SectionCalculator  = "calculator"
	SectionContent     = "content"
	SectionAnalytics   = "analytics"
	SectionSettings    = "settings"
)

// Roles lists every valid role in display order.
var Roles = []string{
	RoleMainAdmin, RoleDeveloper, RoleAnalyst, RoleOperator, RoleBuyer, RoleCourier,
}

// Sections lists every valid section in display order.
var Sections = []string{
	SectionDashboard, SectionLeads, SectionEmployees, SectionPermissions,
	SectionOrders, SectionCalculator, SectionContent, SectionAnalytics,
	SectionSettings,
}

// RoleLabels maps roles to the names shown in the admin UI.
var RoleLabels = map[string]string{
	RoleMainAdmin: "Главный Админ",
	RoleDeveloper: "Разработчик",
	RoleAnalyst:   "Аналитик",
	RoleOperator:  "Оператор",
	RoleBuyer:     "Выкупщик",
	RoleCourier:   "Курьер",
}

// SectionLabels maps sections to the names shown in the admin UI.
var SectionLabels = map[string]string{
	SectionDashboard:   "Дашборд",
	SectionLeads:       "Лиды / CRM",
	SectionEmployees:   "Сотрудники",
	SectionPermissions: "Управление доступами",
	SectionOrders:      "Заказы",
	SectionCalculator:  "Калькулятор",
	SectionContent:     "Контент сайта",
	SectionAnalytics:   "Аналитика",
	SectionSettings:    "Настройки",
}

// MinPasswordLen is the minimum length accepted for new and changed passwords.
const MinPasswordLen = 6

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrUserInactive = errors.New("user is deactivated")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrWrongPassword = errors.New("wrong current password")
var ErrInvalidRole = errors.New("invalid role")
var ErrPasswordTooShort = errors.New("password too short")
var ErrAdminOnly = errors.New("main admin privileges required")
var ErrSelfAction = errors.New("cannot perform this action on your own account")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// User models an employee account in the admin panel.
//
// A nil Permissions slice means the account has no explicit override and the
// role's default section set applies. A non-nil (possibly empty) slice is an
// explicit grant list.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	Role         string    `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	IsActive     bool      `json:"is_active"`
	Permissions  []string  `json:"permissions,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether r is one of the defined roles.
func ValidRole(r string) bool {
	for _, role := range Roles {
		if role == r {
			return true
		}
	}
	return false
}

// ValidSection reports whether s is one of the defined sections.
func ValidSection(s string) bool {
	for _, section := range Sections {
		if section == s {
			return true
		}
	}
	return false
}
