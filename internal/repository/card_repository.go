package repository

import (
	"context"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/pagination"

	"gorm.io/gorm"
)

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create adds card to columnID once the column is known to belong to userID.
func (r *CardRepository) Create(ctx context.Context, userID, columnID uint, card *model.Card) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireColumn(tx, userID, columnID); err != nil {
			return err
		}
		card.ColumnID = columnID
		if err := tx.Create(card).Error; err != nil {
			return fmt.Errorf("create card: %w", translate(err))
		}
		return nil
	})
}

// List retrieves one page of the cards in a column
func (r *CardRepository) List(ctx context.Context, userID, columnID uint, opts pagination.Options) ([]model.Card, int64, error) {
	var (
		cards []model.Card
		total int64
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireColumn(tx, userID, columnID); err != nil {
			return err
		}
		if err := cardsOfColumn(tx, userID, columnID).Count(&total).Error; err != nil {
			return fmt.Errorf("count cards: %w", err)
		}
		return cardsOfColumn(tx, userID, columnID).
			Order(opts.OrderBy("cards")).
			Offset(opts.Offset()).
			Limit(opts.Limit()).
			Find(&cards).Error
	})
	return cards, total, err
}

// Get retrieves a card by id within its column
func (r *CardRepository) Get(ctx context.Context, userID, columnID, cardID uint) (*model.Card, error) {
	var card model.Card
	if err := cardsOfColumn(r.db.WithContext(ctx), userID, columnID).Where("cards.id = ?", cardID).First(&card).Error; err != nil {
		return nil, translate(err)
	}
	return &card, nil
}

// Update changes only the given columns of a card
func (r *CardRepository) Update(ctx context.Context, userID, columnID, cardID uint, fields map[string]any) (*model.Card, error) {
	var card model.Card
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := cardsOfColumn(tx, userID, columnID).Where("cards.id = ?", cardID).First(&card).Error; err != nil {
			return translate(err)
		}
		if len(fields) == 0 {
			return nil
		}
		if err := fresh(tx).Model(&model.Card{}).Where("id = ?", cardID).Updates(fields).Error; err != nil {
			return fmt.Errorf("update card: %w", err)
		}
		return translate(fresh(tx).Where("id = ?", cardID).First(&card).Error)
	})
	if err != nil {
		return nil, err
	}
	return &card, nil
}

// Delete removes a card and, by cascade, its comments
func (r *CardRepository) Delete(ctx context.Context, userID, columnID, cardID uint) error {
	db := r.db.WithContext(ctx)
	result := db.
		Where("cards.id = ? AND cards.column_id = ?", cardID, columnID).
		Where("cards.column_id IN (?)", columnIDsOf(db, userID)).
		Delete(&model.Card{})
	if result.Error != nil {
		return fmt.Errorf("delete card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
