package service

import (
	"context"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/pagination"
)

type CommentStore interface {
	Create(ctx context.Context, userID, columnID, cardID uint, comment *model.Comment) error
	List(ctx context.Context, userID, columnID, cardID uint, opts pagination.Options) ([]model.Comment, int64, error)
	Get(ctx context.Context, userID, columnID, cardID, commentID uint) (*model.Comment, error)
	Update(ctx context.Context, userID, columnID, cardID, commentID uint, fields map[string]any) (*model.Comment, error)
	Delete(ctx context.Context, userID, columnID, cardID, commentID uint) error
}

type CommentPatch struct {
	Content *string
}

type CommentService struct {
	comments CommentStore
}

func NewCommentService(comments CommentStore) *CommentService {
	return &CommentService{comments: comments}
}

func (s *CommentService) Create(ctx context.Context, userID, columnID, cardID uint, content string) (*model.Comment, error) {
	comment := &model.Comment{Content: content}
	if err := s.comments.Create(ctx, userID, columnID, cardID, comment); err != nil {
		return nil, notFound(err, fmt.Sprintf("cannot create comment, card with id: %d not found", cardID))
	}
	return comment, nil
}

func (s *CommentService) List(ctx context.Context, userID, columnID, cardID uint, opts pagination.Options) (pagination.Page[model.Comment], error) {
	comments, total, err := s.comments.List(ctx, userID, columnID, cardID, opts)
	if err != nil {
		return pagination.Page[model.Comment]{}, notFound(err, cardNotFound(cardID))
	}
	return pagination.New(comments, opts, total), nil
}

func (s *CommentService) Get(ctx context.Context, userID, columnID, cardID, commentID uint) (*model.Comment, error) {
	comment, err := s.comments.Get(ctx, userID, columnID, cardID, commentID)
	if err != nil {
		return nil, notFound(err, commentNotFound(commentID))
	}
	return comment, nil
}

func (s *CommentService) Update(ctx context.Context, userID, columnID, cardID, commentID uint, patch CommentPatch) (*model.Comment, error) {
	fields := map[string]any{}
	if patch.Content != nil {
		fields["content"] = *patch.Content
	}
	comment, err := s.comments.Update(ctx, userID, columnID, cardID, commentID, fields)
	if err != nil {
		return nil, notFound(err, commentNotFound(commentID))
	}
	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, userID, columnID, cardID, commentID uint) error {
	if err := s.comments.Delete(ctx, userID, columnID, cardID, commentID); err != nil {
		return notFound(err, commentNotFound(commentID))
	}
	return nil
}

func commentNotFound(id uint) string {
	return fmt.Sprintf("comment with id: %d not found", id)
}
