package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
)

const resetPasswordLen = 10

// UserService implements employee account management. Section visibility is
// enforced at the router (employees/permissions sections); the role gate and
// the self-action guard live here so they hold on every path into a mutation.
type UserService struct {
	users    ports.UserRepository
	hasher   *PasswordHasher
	recorder ports.ActivityRecorder
	log      zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher *PasswordHasher, recorder ports.ActivityRecorder, log zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, recorder: recorder, log: log}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, actor *domain.User, in ports.CreateUserInput) (*domain.User, error) {
	if !actor.IsMainAdmin() {
		return nil, domain.ErrAdminOnly
	}
	if !domain.ValidRole(in.Role) {
		return nil, domain.ErrInvalidRole
	}
	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: hash: %w", err)
	}

	now := time.Now().UTC()
	defaults := append([]string(nil), domain.RoleDefaults[in.Role]...)
	user := &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		DisplayName:  in.DisplayName,
		Role:         in.Role,
		Phone:        in.Phone,
		Email:        in.Email,
		IsActive:     true,
		Permissions:  defaults,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(actor, "create_user", fmt.Sprintf("Создан: %s (%s)", in.DisplayName, in.Role))
	created.PasswordHash = ""
	return created, nil
}

func (s *UserService) Update(ctx context.Context, actor *domain.User, id string, update ports.UserUpdate) error {
	if !actor.IsMainAdmin() {
		return domain.ErrAdminOnly
	}
	if id == actor.ID {
		return domain.ErrSelfAction
	}
	if update.Role != nil && !domain.ValidRole(*update.Role) {
		return domain.ErrInvalidRole
	}

	if err := s.users.Update(ctx, id, update); err != nil {
		return err
	}
	s.record(actor, "update_user", "Обновлён: "+id)
	return nil
}

func (s *UserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if !actor.IsMainAdmin() {
		return domain.ErrAdminOnly
	}
	if id == actor.ID {
		return domain.ErrSelfAction
	}

	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.record(actor, "delete_user", "Удалён: "+displayName(target))
	return nil
}

func (s *UserService) ResetPassword(ctx context.Context, actor *domain.User, id string) (string, error) {
	if !actor.IsMainAdmin() {
		return "", domain.ErrAdminOnly
	}
	if id == actor.ID {
		return "", domain.ErrSelfAction
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return "", err
	}

	password := GeneratePassword(resetPasswordLen)
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("reset password: hash: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, id, hash); err != nil {
		return "", fmt.Errorf("reset password: %w", err)
	}

	s.record(actor, "reset_password", "Сброшен пароль для: "+id)
	return password, nil
}

func (s *UserService) GetPermissions(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get permissions: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *UserService) UpdatePermissions(ctx context.Context, actor *domain.User, id string, sections []string) ([]string, error) {
	if !actor.IsMainAdmin() {
		return nil, domain.ErrAdminOnly
	}

	kept := make([]string, 0, len(sections))
	for _, section := range sections {
		if domain.ValidSection(section) {
			kept = append(kept, section)
		}
	}

	if err := s.users.UpdatePermissions(ctx, id, kept); err != nil {
		return nil, err
	}
	s.record(actor, "update_permissions", "Обновлены для: "+id)
	return kept, nil
}

func (s *UserService) record(actor *domain.User, action, details string) {
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
