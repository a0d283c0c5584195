package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
)

type stubContentRepo struct {
	sections map[string]*domain.ContentSection
}

func newStubContentRepo() *stubContentRepo {
	return &stubContentRepo{sections: make(map[string]*domain.ContentSection)}
}

func (r *stubContentRepo) List(context.Context) ([]domain.ContentSection, error) {
	out := make([]domain.ContentSection, 0, len(r.sections))
	for _, s := range r.sections {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubContentRepo) Get(_ context.Context, key string) (*domain.ContentSection, error) {
	s, ok := r.sections[key]
	if !ok {
		return nil, domain.ErrContentNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *stubContentRepo) Upsert(_ context.Context, section *domain.ContentSection) error {
	copied := *section
	r.sections[section.SectionKey] = &copied
	return nil
}

func (r *stubContentRepo) Delete(_ context.Context, key string) error {
	if _, ok := r.sections[key]; !ok {
		return domain.ErrContentNotFound
	}
	delete(r.sections, key)
	return nil
}

type stubSettingRepo struct {
	docs map[string]*domain.Setting
}

func (r *stubSettingRepo) Get(_ context.Context, key string) (*domain.Setting, error) {
	s, ok := r.docs[key]
	if !ok {
		return nil, domain.ErrSettingNotFound
	}
	return s, nil
}

func (r *stubSettingRepo) Put(_ context.Context, setting *domain.Setting) error {
	if r.docs == nil {
		r.docs = make(map[string]*domain.Setting)
	}
	r.docs[setting.Key] = setting
	return nil
}

func TestContentService_UpsertAndGet(t *testing.T) {
	recorder := &stubRecorder{}
	svc := NewContentService(newStubContentRepo(), recorder)
	actor := &domain.User{ID: "u1", Username: "alice"}

	err := svc.Upsert(context.Background(), actor, ports.UpsertContentInput{
		SectionKey:  "hero",
		SectionName: "Главный экран",
		Content:     []any{map[string]any{"type": "heading", "text": "Go to Top"}},
	})
	if err != nil {
		t.Fatalf("upsert error: %v", err)
	}

	section, err := svc.Get(context.Background(), "hero")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if section.SectionName != "Главный экран" {
		t.Fatalf("unexpected section: %+v", section)
	}
	if len(recorder.entries) != 1 || recorder.entries[0].Action != "update_content" {
		t.Fatalf("expected update_content activity, got %+v", recorder.entries)
	}
}

func TestContentService_GetMissing(t *testing.T) {
	svc := NewContentService(newStubContentRepo(), &stubRecorder{})

	if _, err := svc.Get(context.Background(), "ghost"); !errors.Is(err, domain.ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound, got %v", err)
	}
}

func TestContentService_Delete(t *testing.T) {
	repo := newStubContentRepo()
	repo.sections["hero"] = &domain.ContentSection{SectionKey: "hero"}
	recorder := &stubRecorder{}
	svc := NewContentService(repo, recorder)
	actor := &domain.User{ID: "u1", Username: "alice"}

	if err := svc.Delete(context.Background(), actor, "hero"); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if err := svc.Delete(context.Background(), actor, "hero"); !errors.Is(err, domain.ErrContentNotFound) {
		t.Fatalf("expected ErrContentNotFound on second delete, got %v", err)
	}
}

func TestSettingsService_GetUnsavedReturnsEmptyDoc(t *testing.T) {
	svc := NewSettingsService(&stubSettingRepo{}, &stubRecorder{})

	setting, err := svc.Get(context.Background(), domain.SettingFooter)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if setting.Key != domain.SettingFooter || setting.Value == nil || len(setting.Value) != 0 {
		t.Fatalf("expected empty footer doc, got %+v", setting)
	}
}

func TestSettingsService_UnknownKey(t *testing.T) {
	svc := NewSettingsService(&stubSettingRepo{}, &stubRecorder{})
	actor := &domain.User{ID: "u1"}

	if _, err := svc.Get(context.Background(), "smtp"); !errors.Is(err, domain.ErrUnknownSetting) {
		t.Fatalf("expected ErrUnknownSetting, got %v", err)
	}
	if err := svc.Put(context.Background(), actor, "smtp", nil); !errors.Is(err, domain.ErrUnknownSetting) {
		t.Fatalf("expected ErrUnknownSetting, got %v", err)
	}
}

func TestSettingsService_PutAndGet(t *testing.T) {
	recorder := &stubRecorder{}
	svc := NewSettingsService(&stubSettingRepo{}, recorder)
	actor := &domain.User{ID: "u1", Username: "alice"}

	err := svc.Put(context.Background(), actor, domain.SettingTelegramBot, map[string]any{
		"bot_token": "123:abc",
		"chat_id":   "-100500",
	})
	if err != nil {
		t.Fatalf("put error: %v", err)
	}

	setting, err := svc.Get(context.Background(), domain.SettingTelegramBot)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if setting.Value["chat_id"] != "-100500" {
		t.Fatalf("unexpected value: %+v", setting.Value)
	}
	if len(recorder.entries) != 1 || recorder.entries[0].Action != "update_settings" {
		t.Fatalf("expected update_settings activity, got %+v", recorder.entries)
	}
}
