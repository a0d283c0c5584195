package ports

import (
	"context"

	"github.com/gototop/admin-api/internal/core/domain"
)

// ContentRepository defines the persistence interface for site content blocks.
type ContentRepository interface {
	List(ctx context.Context) ([]domain.ContentSection, error)
	Get(ctx context.Context, key string) (*domain.ContentSection, error)
	// Upsert creates the section when the key is new, else replaces its
	// content and (when non-empty) display name.
	Upsert(ctx context.Context, section *domain.ContentSection) error
	Delete(ctx context.Context, key string) error
}

// SettingRepository defines the persistence interface for singleton
// configuration documents (footer, PDF template, Telegram bot).
type SettingRepository interface {
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Put(ctx context.Context, setting *domain.Setting) error
}
