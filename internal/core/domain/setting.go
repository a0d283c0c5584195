package domain

import (
	"errors"
	"time"
)

// Setting keys for the singleton configuration documents edited in the
// settings section. Each key maps to exactly one document.
const (
	SettingFooter      = "footer"
	SettingPDFTemplate = "pdf_template"
	SettingTelegramBot = "telegram_bot"
)

var ErrSettingNotFound = errors.New("setting not found")
var ErrUnknownSetting = errors.New("unknown setting key")

// Setting is a free-form configuration document (footer text, PDF template
// fields, Telegram bot parameters). The admin panel owns the schema of Value.
type Setting struct {
	Key       string         `json:"key"`
	Value     map[string]any `json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ValidSettingKey reports whether key names one of the singleton settings.
func ValidSettingKey(key string) bool {
	switch key {
	case SettingFooter, SettingPDFTemplate, SettingTelegramBot:
		return true
	}
	return false
}
