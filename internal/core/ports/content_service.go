package ports

import (
	"context"

	"github.com/gototop/admin-api/internal/core/domain"
)

// UpsertContentInput is the DTO for creating or replacing a content block.
type UpsertContentInput struct {
	SectionKey  string
	SectionName string
	Content     any
	SortOrder   int
}

// ContentService manages site content blocks.
type ContentService interface {
	List(ctx context.Context) ([]domain.ContentSection, error)
	Get(ctx context.Context, key string) (*domain.ContentSection, error)
	Upsert(ctx context.Context, actor *domain.User, in UpsertContentInput) error
	Delete(ctx context.Context, actor *domain.User, key string) error
}

// SettingsService manages the singleton configuration documents.
type SettingsService interface {
	// Get returns the stored document for key, or an empty document when
	// none has been saved yet. Unknown keys yield domain.ErrUnknownSetting.
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Put(ctx context.Context, actor *domain.User, key string, value map[string]any) error
}
