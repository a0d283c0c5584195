package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
)

// ContentService manages the block-constructor site content.
type ContentService struct {
	content  ports.ContentRepository
	recorder ports.ActivityRecorder
}

func NewContentService(content ports.ContentRepository, recorder ports.ActivityRecorder) *ContentService {
	return &ContentService{content: content, recorder: recorder}
}

func (s *ContentService) List(ctx context.Context) ([]domain.ContentSection, error) {
	sections, err := s.content.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return sections, nil
}

func (s *ContentService) Get(ctx context.Context, key string) (*domain.ContentSection, error) {
	return s.content.Get(ctx, key)
}

func (s *ContentService) Upsert(ctx context.Context, actor *domain.User, in ports.UpsertContentInput) error {
	section := &domain.ContentSection{
		SectionKey:  in.SectionKey,
		SectionName: in.SectionName,
		Content:     in.Content,
		SortOrder:   in.SortOrder,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.content.Upsert(ctx, section); err != nil {
		return fmt.Errorf("upsert content: %w", err)
	}
	s.record(actor, "update_content", "Секция: "+in.SectionKey)
	return nil
}

func (s *ContentService) Delete(ctx context.Context, actor *domain.User, key string) error {
	if err := s.content.Delete(ctx, key); err != nil {
		return err
	}
	s.record(actor, "delete_content", "Секция: "+key)
	return nil
}

func (s *ContentService) record(actor *domain.User, action, details string) {
	if s.recorder == nil {
		return
	}
	s.recorder.Record(domain.ActivityEntry{
		UserID:   actor.ID,
		UserName: displayName(actor),
		Action:   action,
		Details:  details,
	})
}

// SettingsService manages the singleton configuration documents.
type SettingsService struct {
	settings ports.SettingRepository
	recorder ports.ActivityRecorder
}

func NewSettingsService(settings ports.SettingRepository, recorder ports.ActivityRecorder) *SettingsService {
	return &SettingsService{settings: settings, recorder: recorder}
}

// Get returns the stored document, or an empty one when nothing has been
// saved yet so the settings pages always have something to render.
func (s *SettingsService) Get(ctx context.Context, key string) (*domain.Setting, error) {
	if !domain.ValidSettingKey(key) {
		return nil, domain.ErrUnknownSetting
	}
	setting, err := s.settings.Get(ctx, key)
	if err != nil {
		if err == domain.ErrSettingNotFound {
			return &domain.Setting{Key: key, Value: map[string]any{}}, nil
		}
		return nil, fmt.Errorf("get setting: %w", err)
	}
	return setting, nil
}

func (s *SettingsService) Put(ctx context.Context, actor *domain.User, key string, value map[string]any) error {
	if !domain.ValidSettingKey(key) {
		return domain.ErrUnknownSetting
	}
	setting := &domain.Setting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.settings.Put(ctx, setting); err != nil {
		return fmt.Errorf("put setting: %w", err)
	}
	if s.recorder != nil {
		s.recorder.Record(domain.ActivityEntry{
			UserID:   actor.ID,
			UserName: displayName(actor),
			Action:   "update_settings",
			Details:  "Настройка: " + key,
		})
	}
	return nil
}
