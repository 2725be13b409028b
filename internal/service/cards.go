package service

import (
	"context"
	"fmt"

	"taskboard/internal/model"
	"taskboard/internal/pagination"
)

type CardStore interface {
	Create(ctx context.Context, userID, columnID uint, card *model.Card) error
	List(ctx context.Context, userID, columnID uint, opts pagination.Options) ([]model.Card, int64, error)
	Get(ctx context.Context, userID, columnID, cardID uint) (*model.Card, error)
	Update(ctx context.Context, userID, columnID, cardID uint, fields map[string]any) (*model.Card, error)
	Delete(ctx context.Context, userID, columnID, cardID uint) error
}

type NewCard struct {
	Title       string
	Description *string
}

type CardPatch struct {
	Title       *string
	Description *string
}

type CardService struct {
	cards CardStore
}

func NewCardService(cards CardStore) *CardService {
	return &CardService{cards: cards}
}

func (s *CardService) Create(ctx context.Context, userID, columnID uint, in NewCard) (*model.Card, error) {
	card := &model.Card{Title: in.Title, Description: in.Description}
	if err := s.cards.Create(ctx, userID, columnID, card); err != nil {
		return nil, notFound(err, fmt.Sprintf("cannot create card, column with id: %d not found", columnID))
	}
	return card, nil
}

func (s *CardService) List(ctx context.Context, userID, columnID uint, opts pagination.Options) (pagination.Page[model.Card], error) {
	cards, total, err := s.cards.List(ctx, userID, columnID, opts)
	if err != nil {
		return pagination.Page[model.Card]{}, notFound(err, columnNotFound(columnID))
	}
	return pagination.New(cards, opts, total), nil
}

func (s *CardService) Get(ctx context.Context, userID, columnID, cardID uint) (*model.Card, error) {
	card, err := s.cards.Get(ctx, userID, columnID, cardID)
	if err != nil {
		return nil, notFound(err, cardNotFound(cardID))
	}
	return card, nil
}

func (s *CardService) Update(ctx context.Context, userID, columnID, cardID uint, patch CardPatch) (*model.Card, error) {
	fields := map[string]any{}
	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	card, err := s.cards.Update(ctx, userID, columnID, cardID, fields)
	if err != nil {
		return nil, notFound(err, cardNotFound(cardID))
	}
	return card, nil
}

func (s *CardService) Delete(ctx context.Context, userID, columnID, cardID uint) error {
	if err := s.cards.Delete(ctx, userID, columnID, cardID); err != nil {
		return notFound(err, cardNotFound(cardID))
	}
	return nil
}

func cardNotFound(id uint) string {
	return fmt.Sprintf("card with id: %d not found", id)
}
