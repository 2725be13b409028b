package handler

import (
	"net/http"

	"taskboard/internal/pagination"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	comments *service.CommentService
	limits   pagination.Limits
}

func NewCommentHandler(comments *service.CommentService, limits pagination.Limits) *CommentHandler {
	return &CommentHandler{comments: comments, limits: limits}
}

// Create godoc
// @Summary      Comment on a card
// @Tags         Comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId    path      int             true  "User ID"
// @Param        columnId  path      int             true  "Column ID"
// @Param        cardId    path      int             true  "Card ID"
// @Param        request   body      CommentRequest  true  "Comment"
// @Success      201       {object}  model.Comment
// @Failure      400       {object}  ErrorResponse
// @Failure      403       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /users/{userId}/columns/{columnId}/cards/{cardId}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	ids, ok := pathIDs(c, "userId", "columnId", "cardId")
	if !ok {
		return
	}
	var req CommentRequest
	if !bind(c, &req) {
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), ids[0], ids[1], ids[2], req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// List godoc
// @Summary      List the comments of a card
// @Tags         Comments
// @Produce      json
// @Security     BearerAuth
// @Param        userId    path      int     true   "User ID"
// @Param        columnId  path      int     true   "Column ID"
// @Param        cardId    path      int     true   "Card ID"
// @Param        page      query     int     false  "Page number"  default(1)
// @Param        take      query     int     false  "Page size"    default(10)
// @Param        order     query     string  false  "Sort order"   Enums(ASC, DESC)
// @Success      200       {object}  pagination.Page[model.Comment]
// @Failure      400       {object}  ErrorResponse
// @Failure      403       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /users/{userId}/columns/{columnId}/cards/{cardId}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	ids, ok := pathIDs(c, "userId", "columnId", "cardId")
	if !ok {
		return
	}
	opts, ok := pageOptions(c, h.limits)
	if !ok {
		return
	}

	page, err := h.comments.List(c.Request.Context(), ids[0], ids[1], ids[2], opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get godoc
// @Summary      Get a comment
// @Tags         Comments
// @Produce      json
// @Security     BearerAuth
// @Param        userId     path      int  true  "User ID"
// @Param        columnId   path      int  true  "Column ID"
// @Param        cardId     path      int  true  "Card ID"
// @Param        commentId  path      int  true  "Comment ID"
// @Success      200        {object}  model.Comment
// @Failure      403        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /users/{userId}/columns/{columnId}/cards/{cardId}/comments/{commentId} [get]
func (h *CommentHandler) Get(c *gin.Context) {
	ids, ok := pathIDs(c, "userId", "columnId", "cardId", "commentId")
	if !ok {
		return
	}

	comment, err := h.comments.Get(c.Request.Context(), ids[0], ids[1], ids[2], ids[3])
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Update godoc
// @Summary      Edit a comment
// @Tags         Comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId     path      int                   true  "User ID"
// @Param        columnId   path      int                   true  "Column ID"
// @Param        cardId     path      int                   true  "Card ID"
// @Param        commentId  path      int                   true  "Comment ID"
// @Param        request    body      UpdateCommentRequest  true  "Fields to change"
// @Success      200        {object}  model.Comment
// @Failure      400        {object}  ErrorResponse
// @Failure      403        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /users/{userId}/columns/{columnId}/cards/{cardId}/comments/{commentId} [put]
func (h *CommentHandler) Update(c *gin.Context) {
	ids, ok := pathIDs(c, "userId", "columnId", "cardId", "commentId")
	if !ok {
		return
	}
	var req UpdateCommentRequest
	if !bind(c, &req) {
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), ids[0], ids[1], ids[2], ids[3], service.CommentPatch{Content: req.Content})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

// Delete godoc
// @Summary      Delete a comment
// @Tags         Comments
// @Security     BearerAuth
// @Param        userId     path  int  true  "User ID"
// @Param        columnId   path  int  true  "Column ID"
// @Param        cardId     path  int  true  "Card ID"
// @Param        commentId  path  int  true  "Comment ID"
// @Success      204
// @Failure      403        {object}  ErrorResponse
// @Failure      404        {object}  ErrorResponse
// @Router       /users/{userId}/columns/{columnId}/cards/{cardId}/comments/{commentId} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	ids, ok := pathIDs(c, "userId", "columnId", "cardId", "commentId")
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), ids[0], ids[1], ids[2], ids[3]); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
