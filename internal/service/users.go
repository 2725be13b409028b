package service

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

type UserPatch struct {
	Name    *string
	Surname *string
	Email   *string
}

func (p UserPatch) fields() map[string]any {
	fields := map[string]any{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Surname != nil {
		fields["surname"] = *p.Surname
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	return fields
}

type UserService struct {
	users repository.UserRepositoryInterface
}

func NewUserService(users repository.UserRepositoryInterface) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, userNotFound(userID))
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, userID uint, patch UserPatch) (*model.User, error) {
	user, err := s.users.Update(ctx, userID, patch.fields())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.Conflict("user with email: %s already exists", *patch.Email)
		}
		return nil, notFound(err, userNotFound(userID))
	}
	return user, nil
}

// Delete removes the user and, through the storage cascade, everything it owns.
func (s *UserService) Delete(ctx context.Context, userID uint) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return notFound(err, userNotFound(userID))
	}
	return nil
}

func userNotFound(id uint) string {
	return fmt.Sprintf("user with id: %d not found", id)
}
