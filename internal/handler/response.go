package handler

import (
	"strconv"

	"taskboard/internal/apperr"
	"taskboard/internal/middleware"
	"taskboard/internal/pagination"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"column with id: 3 not found"`
	Kind  string `json:"kind" example:"not_found"`
}

func respondError(c *gin.Context, err error) {
	middleware.Abort(c, err)
}

// bind decodes the JSON body into req and runs its validation.
func bind[T interface{ Validate() error }](c *gin.Context, req *T) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return false
	}
	if err := (*req).Validate(); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

// pathIDs parses the named positive integer path parameters in order.
func pathIDs(c *gin.Context, names ...string) ([]uint, bool) {
	ids := make([]uint, len(names))
	for i, name := range names {
		n, err := strconv.ParseUint(c.Param(name), 10, 64)
		if err != nil || n == 0 {
			respondError(c, apperr.Validation("%s must be a positive integer", name))
			return nil, false
		}
		ids[i] = uint(n)
	}
	return ids, true
}

func pageOptions(c *gin.Context, limits pagination.Limits) (pagination.Options, bool) {
	opts, err := limits.Parse(c.Query("page"), c.Query("take"), c.Query("order"))
	if err != nil {
		respondError(c, err)
		return pagination.Options{}, false
	}
	return opts, true
}
