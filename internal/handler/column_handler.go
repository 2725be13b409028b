package handler

import (
	"net/http"

	"taskboard/internal/pagination"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type ColumnHandler struct {
	columns *service.ColumnService
	limits  pagination.Limits
}

func NewColumnHandler(columns *service.ColumnService, limits pagination.Limits) *ColumnHandler {
	return &ColumnHandler{columns: columns, limits: limits}
}

// Create godoc
// @Summary      Create a column
// @Tags         Columns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId   path      int            true  "User ID"
// @Param        request  body      ColumnRequest  true  "Column"
// @Success      201      {object}  model.Column
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /users/{userId}/columns [post]
func (h *ColumnHandler) Create(c *gin.Context) {
	ids, ok := pathIDs(c, "userId")
	if !ok {
		return
	}
	var req ColumnRequest
	if !bind(c, &req) {
		return
	}

	column, err := h.columns.Create(c.Request.Context(), ids[0], req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, column)
}

// List godoc
// @Summary      List the user's columns
// @Tags         Columns
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int     true   "User ID"
// @Param        page    query     int     false  "Page number"  default(1)
// @Param        take    query     int     false  "Page size"    default(10)
// @Param        order   query     string  false  "Sort order"   Enums(ASC, DESC)
// @Success      200     {object}  pagination.Page[model.Column]
// @Failure      400     {object}  ErrorResponse
// @Failure      403     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /users/{userId}/columns [get]
func (h *ColumnHandler) List(c *gin.Context) {
	ids, ok := pathIDs(c, "userId")
	if !ok {
		return
	}
	opts, ok := pageOptions(c, h.limits)
	if !ok {
		return
	}

	page, err := h.columns.List(c.Request.Context(), ids[0], opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// Get godoc
// @Summary      Get a column
// @Tags         Columns
// @Produce      json
// @Security     BearerAuth
// @Param        userId    path      int  true  "User ID"
// @Param        columnId  path      int  true  "Column ID"
// @Success      200       {object}  model.Column
// @Failure      403       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /users/{userId}/columns/{columnId} [get]
func (h *ColumnHandler) Get(c *gin.Context) {
	ids, ok := pathIDs(c, "userId", "columnId")
	if !ok {
		return
	}

	column, err := h.columns.Get(c.Request.Context(), ids[0], ids[1])
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, column)
}

// Update godoc
// @Summary      Update a column
// @Tags         Columns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId    path      int                  true  "User ID"
// @Param        columnId  path      int                  true  "Column ID"
// @Param        request   body      UpdateColumnRequest  true  "Fields to change"
// @Success      200       {object}  model.Column
// @Failure      400       {object}  ErrorResponse
// @Failure      403       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /users/{userId}/columns/{columnId} [put]
func (h *ColumnHandler) Update(c *gin.Context) {
	ids, ok := pathIDs(c, "userId", "columnId")
	if !ok {
		return
	}
	var req UpdateColumnRequest
	if !bind(c, &req) {
		return
	}

	column, err := h.columns.Update(c.Request.Context(), ids[0], ids[1], service.ColumnPatch{Title: req.Title})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, column)
}

// Delete godoc
// @Summary      Delete a column with its cards and comments
// @Tags         Columns
// @Security     BearerAuth
// @Param        userId    path  int  true  "User ID"
// @Param        columnId  path  int  true  "Column ID"
// @Success      204
// @Failure      403       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /users/{userId}/columns/{columnId} [delete]
func (h *ColumnHandler) Delete(c *gin.Context) {
	ids, ok := pathIDs(c, "userId", "columnId")
	if !ok {
		return
	}

	if err := h.columns.Delete(c.Request.Context(), ids[0], ids[1]); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
