package repository

import (
	"context"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/pagination"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, userID, columnID, cardID uint, comment *model.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireCard(tx, userID, columnID, cardID); err != nil {
			return err
		}
		comment.CardID = cardID
		if err := tx.Create(comment).Error; err != nil {
			return fmt.Errorf("create comment: %w", translate(err))
		}
		return nil
	})
}

func (r *CommentRepository) List(ctx context.Context, userID, columnID, cardID uint, opts pagination.Options) ([]model.Comment, int64, error) {
	var (
		comments []model.Comment
		total    int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireCard(tx, userID, columnID, cardID); err != nil {
			return err
		}
		if err := commentsOfCard(tx, userID, columnID, cardID).Count(&total).Error; err != nil {
			return fmt.Errorf("count comments: %w", err)
		}
		return commentsOfCard(tx, userID, columnID, cardID).
			Order(opts.OrderBy("comments")).
			Offset(opts.Offset()).
			Limit(opts.Limit()).
			Find(&comments).Error
	})
	return comments, total, err
}

func (r *CommentRepository) Get(ctx context.Context, userID, columnID, cardID, commentID uint) (*model.Comment, error) {
	var comment model.Comment
	err := commentsOfCard(r.db.WithContext(ctx), userID, columnID, cardID).
		Where("comments.id = ?", commentID).
		First(&comment).Error
	if err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

func (r *CommentRepository) Update(ctx context.Context, userID, columnID, cardID, commentID uint, fields map[string]any) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := commentsOfCard(tx, userID, columnID, cardID).
			Where("comments.id = ?", commentID).
			First(&comment).Error
		if err != nil {
			return translate(err)
		}
		if len(fields) == 0 {
			return nil
		}
		if err := fresh(tx).Model(&model.Comment{}).Where("id = ?", commentID).Updates(fields).Error; err != nil {
			return fmt.Errorf("update comment: %w", err)
		}
		return translate(fresh(tx).Where("id = ?", commentID).First(&comment).Error)
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, userID, columnID, cardID, commentID uint) error {
	db := r.db.WithContext(ctx)
	result := db.
		Where("comments.id = ? AND comments.card_id = ?", commentID, cardID).
		Where("comments.card_id IN (?)", cardIDsOf(db, userID, columnID)).
		Delete(&model.Comment{})
	if result.Error != nil {
		return fmt.Errorf("delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
