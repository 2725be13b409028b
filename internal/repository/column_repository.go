package repository

import (
	"context"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/pagination"

	"gorm.io/gorm"
)

type ColumnRepository struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

// Create inserts column under userID after checking, in the same
// transaction, that the user exists.
func (r *ColumnRepository) Create(ctx context.Context, userID uint, column *model.Column) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, userID); err != nil {
			return err
		}
		column.UserID = userID
		if err := tx.Create(column).Error; err != nil {
			return fmt.Errorf("create column: %w", translate(err))
		}
		return nil
	})
}

// List returns one page of the user's columns and the total number of them.
func (r *ColumnRepository) List(ctx context.Context, userID uint, opts pagination.Options) ([]model.Column, int64, error) {
	var (
		columns []model.Column
		total   int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireUser(tx, userID); err != nil {
			return err
		}
		if err := columnsOfUser(tx, userID).Count(&total).Error; err != nil {
			return fmt.Errorf("count columns: %w", err)
		}
		return columnsOfUser(tx, userID).
			Order(opts.OrderBy("columns")).
			Offset(opts.Offset()).
			Limit(opts.Limit()).
			Find(&columns).Error
	})
	return columns, total, err
}

func (r *ColumnRepository) Get(ctx context.Context, userID, columnID uint) (*model.Column, error) {
	var column model.Column
	if err := columnsOfUser(r.db.WithContext(ctx), userID).Where("columns.id = ?", columnID).First(&column).Error; err != nil {
		return nil, translate(err)
	}
	return &column, nil
}

func (r *ColumnRepository) Update(ctx context.Context, userID, columnID uint, fields map[string]any) (*model.Column, error) {
	var column model.Column
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := columnsOfUser(tx, userID).Where("columns.id = ?", columnID).First(&column).Error; err != nil {
			return translate(err)
		}
		if len(fields) == 0 {
			return nil
		}
		if err := fresh(tx).Model(&model.Column{}).Where("id = ?", columnID).Updates(fields).Error; err != nil {
			return fmt.Errorf("update column: %w", err)
		}
		return translate(fresh(tx).Where("id = ?", columnID).First(&column).Error)
	})
	if err != nil {
		return nil, err
	}
	return &column, nil
}

// Delete removes the column; its cards and their comments cascade.
func (r *ColumnRepository) Delete(ctx context.Context, userID, columnID uint) error {
	result := r.db.WithContext(ctx).
		Where("columns.id = ? AND columns.user_id = ?", columnID, userID).
		Delete(&model.Column{})
	if result.Error != nil {
		return fmt.Errorf("delete column: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
