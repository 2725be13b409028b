package handler

import (
	"net/http"

	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Get godoc
// @Summary      Get the authenticated user
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      int  true  "User ID"
// @Success      200     {object}  model.User
// @Failure      401     {object}  ErrorResponse
// @Failure      403     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /users/{userId} [get]
func (h *UserHandler) Get(c *gin.Context) {
	ids, ok := pathIDs(c, "userId")
	if !ok {
		return
	}

	user, err := h.users.Get(c.Request.Context(), ids[0])
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update godoc
// @Summary      Update the authenticated user
// @Description  Only the fields present in the body are changed.
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId   path      int                true  "User ID"
// @Param        request  body      UpdateUserRequest  true  "Fields to change"
// @Success      200      {object}  model.User
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse
// @Router       /users/{userId} [put]
func (h *UserHandler) Update(c *gin.Context) {
	ids, ok := pathIDs(c, "userId")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if !bind(c, &req) {
		return
	}

	user, err := h.users.Update(c.Request.Context(), ids[0], service.UserPatch{
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary      Delete the authenticated user with all columns, cards and comments
// @Tags         Users
// @Security     BearerAuth
// @Param        userId  path  int  true  "User ID"
// @Success      204
// @Failure      403     {object}  ErrorResponse
// @Failure      404     {object}  ErrorResponse
// @Router       /users/{userId} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	ids, ok := pathIDs(c, "userId")
	if !ok {
		return
	}

	if err := h.users.Delete(c.Request.Context(), ids[0]); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
