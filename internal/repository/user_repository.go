package repository

import (
	"context"
	"errors"
	"fmt"

	"taskboard/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

type UserRepositoryInterface interface {
	CreateWithCredential(ctx context.Context, user *model.User, credential *model.Credential) error
	FindByEmail(ctx context.Context, email string) (*model.UserWithCredential, error)
	GetByID(ctx context.Context, id uint) (*model.User, error)
	Update(ctx context.Context, id uint, fields map[string]any) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

var _ UserRepositoryInterface = (*UserRepository)(nil)

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateWithCredential inserts the user and its credential in one
// transaction; either both rows exist afterwards or neither does.
func (r *UserRepository) CreateWithCredential(ctx context.Context, user *model.User, credential *model.Credential) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return fmt.Errorf("create user: %w", err)
		}

		credential.UserID = user.ID
		if err := tx.Create(credential).Error; err != nil {
			return fmt.Errorf("create credential: %w", err)
		}
		return nil
	})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.UserWithCredential, error) {
	var row model.UserWithCredential
	result := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.name, users.surname, users.email, user_credentials.pass_hash, user_credentials.salt").
		Joins("INNER JOIN user_credentials ON user_credentials.user_id = users.id").
		Where("users.email = ?", email).
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("find user by email: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Update applies only the given columns and returns the stored row.
func (r *UserRepository) Update(ctx context.Context, id uint, fields map[string]any) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&user).Error; err != nil {
			return translate(err)
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateEmail
			}
			return fmt.Errorf("update user: %w", err)
		}
		return translate(tx.Where("id = ?", id).First(&user).Error)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user. Credentials, columns, cards and comments go with
// it through ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if result.Error != nil {
		return fmt.Errorf("delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
