package handler

import (
	"net/http"

	"taskboard/internal/pagination"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cards  *service.CardService
	limits pagination.Limits
}

func NewCardHandler(cards *service.CardService, limits pagination.Limits) *CardHandler {
	return &CardHandler{cards: cards, limits: limits}
}

// Create godoc
// @Summary      Create a card in a column
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId    path      int                true  "User ID"
// @Param        columnId  path      int                true  "Column ID"
// @Param        request   body      CreateCardRequest  true  "Card"
// @Success      201       {object}  model.Card
// @Failure      400       {object}  ErrorResponse
// @Failure      403       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /users/{userId}/columns/{columnId}/cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	ids, ok := pathIDs(c, "userId", "columnId")
	if !ok {
		return
	}
	var req CreateCardRequest
	if !bind(c, &req) {
		return
	}

	card, err := h.cards.Create(c.Request.Context(), ids[0], ids[1], service.NewCard{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

// List godoc
// @Summary      List the cards of a column
// @Tags         Cards
// @Produce      json
// @Security     BearerAuth
// @Param        userId    path      int     true   "User ID"
// @Param        columnId  path      int     true   "Column ID"
// @Param        page      query     int     false  "Page number"  default(1)
// @Param        take      query     int     false  "Page size"    default(10)
// @Param        order     query     string  false  "Sort order"   Enums(ASC, DESC)
// @Success      200       {object}  pagination.Page[model.Card]
// @Failure      400       {object}  ErrorResponse
// @Failure      403       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /users/{userId}/columns/{columnId}/cards [get]
func (h *CardHandler) List(c *gin.Context) {
	ids, ok := pathIDs(c, "userId", "columnId")
	if !ok {
		return
	}
	opts, ok := pageOptions(c, h.limits)
	if !ok {
		return
	}

	page, err := h.cards.List(c.Request.Context(), ids[0], ids[1], opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get godoc
// @Summary      Get a card
// @Tags         Cards
// @Produce      json
// @Security     BearerAuth
// @Param        userId    path      int  true  "User ID"
// @Param        columnId  path      int  true  "Column ID"
// @Param        cardId    path      int  true  "Card ID"
// @Success      200       {object}  model.Card
// @Failure      403       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /users/{userId}/columns/{columnId}/cards/{cardId} [get]
func (h *CardHandler) Get(c *gin.Context) {
	ids, ok := pathIDs(c, "userId", "columnId", "cardId")
	if !ok {
		return
	}

	card, err := h.cards.Get(c.Request.Context(), ids[0], ids[1], ids[2])
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// Update godoc
// @Summary      Update a card
// @Tags         Cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId    path      int                true  "User ID"
// @Param        columnId  path      int                true  "Column ID"
// @Param        cardId    path      int                true  "Card ID"
// @Param        request   body      UpdateCardRequest  true  "Fields to change"
// @Success      200       {object}  model.Card
// @Failure      400       {object}  ErrorResponse
// @Failure      403       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /users/{userId}/columns/{columnId}/cards/{cardId} [put]
func (h *CardHandler) Update(c *gin.Context) {
	ids, ok := pathIDs(c, "userId", "columnId", "cardId")
	if !ok {
		return
	}
	var req UpdateCardRequest
	if !bind(c, &req) {
		return
	}

	card, err := h.cards.Update(c.Request.Context(), ids[0], ids[1], ids[2], service.CardPatch{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

// Delete godoc
// @Summary      Delete a card with its comments
// @Tags         Cards
// @Security     BearerAuth
// @Param        userId    path  int  true  "User ID"
// @Param        columnId  path  int  true  "Column ID"
// @Param        cardId    path  int  true  "Card ID"
// @Success      204
// @Failure      403       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /users/{userId}/columns/{columnId}/cards/{cardId} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
	ids, ok := pathIDs(c, "userId", "columnId", "cardId")
	if !ok {
		return
	}

	if err := h.cards.Delete(c.Request.Context(), ids[0], ids[1], ids[2]); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
