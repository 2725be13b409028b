package service

import (
	"context"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/pagination"
)

type ColumnStore interface {
	Create(ctx context.Context, userID uint, column *model.Column) error
	List(ctx context.Context, userID uint, opts pagination.Options) ([]model.Column, int64, error)
	Get(ctx context.Context, userID, columnID uint) (*model.Column, error)
	Update(ctx context.Context, userID, columnID uint, fields map[string]any) (*model.Column, error)
	Delete(ctx context.Context, userID, columnID uint) error
}

type ColumnPatch struct {
	Title *string
}

type ColumnService struct {
	columns ColumnStore
}

func NewColumnService(columns ColumnStore) *ColumnService {
	return &ColumnService{columns: columns}
}

func (s *ColumnService) Create(ctx context.Context, userID uint, title string) (*model.Column, error) {
	column := &model.Column{Title: title}
	if err := s.columns.Create(ctx, userID, column); err != nil {
		return nil, notFound(err, fmt.Sprintf("cannot create column, user with id: %d not found", userID))
	}
	return column, nil
}

func (s *ColumnService) List(ctx context.Context, userID uint, opts pagination.Options) (pagination.Page[model.Column], error) {
	columns, total, err := s.columns.List(ctx, userID, opts)
	if err != nil {
		return pagination.Page[model.Column]{}, notFound(err, fmt.Sprintf("user with id: %d not found", userID))
	}
	return pagination.New(columns, opts, total), nil
}

func (s *ColumnService) Get(ctx context.Context, userID, columnID uint) (*model.Column, error) {
	column, err := s.columns.Get(ctx, userID, columnID)
	if err != nil {
		return nil, notFound(err, columnNotFound(columnID))
	}
	return column, nil
}

func (s *ColumnService) Update(ctx context.Context, userID, columnID uint, patch ColumnPatch) (*model.Column, error) {
	fields := map[string]any{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	column, err := s.columns.Update(ctx, userID, columnID, fields)
	if err != nil {
		return nil, notFound(err, columnNotFound(columnID))
	}
	return column, nil
}

func (s *ColumnService) Delete(ctx context.Context, userID, columnID uint) error {
	if err := s.columns.Delete(ctx, userID, columnID); err != nil {
		return notFound(err, columnNotFound(columnID))
	}
	return nil
}

func columnNotFound(id uint) string {
	return fmt.Sprintf("column with id: %d not found", id)
}

