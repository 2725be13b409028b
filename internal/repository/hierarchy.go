package repository

import (
	"errors"
	"fmt"

	"taskboard/internal/model"

	"gorm.io/gorm"
)

// Every nested lookup is scoped by its own id, its declared parent id and the
// parent's ownership chain up to the user. A row reached through the wrong
// parent is indistinguishable from a missing one.

func fresh(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{NewDB: true})
}

// columnIDsOf selects the ids of the columns owned by userID.
func columnIDsOf(db *gorm.DB, userID uint) *gorm.DB {
	return fresh(db).Model(&model.Column{}).
		Select("columns.id").
		Where("columns.user_id = ?", userID)
}

// cardIDsOf selects the ids of the cards in columnID, provided columnID is
// owned by userID.
func cardIDsOf(db *gorm.DB, userID, columnID uint) *gorm.DB {
	return fresh(db).Model(&model.Card{}).
		Select("cards.id").
		Where("cards.column_id = ?", columnID).
		Where("cards.column_id IN (?)", columnIDsOf(db, userID))
}

func columnsOfUser(db *gorm.DB, userID uint) *gorm.DB {
	return fresh(db).Model(&model.Column{}).Where("columns.user_id = ?", userID)
}

func cardsOfColumn(db *gorm.DB, userID, columnID uint) *gorm.DB {
	return fresh(db).Model(&model.Card{}).
		Where("cards.column_id = ?", columnID).
		Where("cards.column_id IN (?)", columnIDsOf(db, userID))
}

func commentsOfCard(db *gorm.DB, userID, columnID, cardID uint) *gorm.DB {
	return fresh(db).Model(&model.Comment{}).
		Where("comments.card_id = ?", cardID).
		Where("comments.card_id IN (?)", cardIDsOf(db, userID, columnID))
}

func exists(q *gorm.DB) (bool, error) {
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func requireUser(tx *gorm.DB, userID uint) error {
	ok, err := exists(fresh(tx).Model(&model.User{}).Where("users.id = ?", userID))
	if err != nil {
		return fmt.Errorf("check user: %w", err)
	}
	if !ok {
		return ErrParentNotFound
	}
	return nil
}

func requireColumn(tx *gorm.DB, userID, columnID uint) error {
	ok, err := exists(columnsOfUser(tx, userID).Where("columns.id = ?", columnID))
	if err != nil {
		return fmt.Errorf("check column: %w", err)
	}
	if !ok {
		return ErrParentNotFound
	}
	return nil
}

func requireCard(tx *gorm.DB, userID, columnID, cardID uint) error {
	ok, err := exists(cardsOfColumn(tx, userID, columnID).Where("cards.id = ?", cardID))
	if err != nil {
		return fmt.Errorf("check card: %w", err)
	}
	if !ok {
		return ErrParentNotFound
	}
	return nil
}

// translate maps gorm errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrParentNotFound
	default:
		return err
	}
}
