package handler

import (
	"errors"
	"reflect"
	"strings"

	"taskboard/internal/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// check runs the struct tags of req and turns the first failure into a
// validation error naming the offending JSON field.
func check(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.Validation("invalid request body")
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return apperr.Validation("%s is required", fe.Field())
	case "email":
		return apperr.Validation("%s must be a valid email", fe.Field())
	case "min":
		return apperr.Validation("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return apperr.Validation("%s must be at most %s characters long", fe.Field(), fe.Param())
	default:
		return apperr.Validation("%s is invalid", fe.Field())
	}
}

type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=50" example:"Silvio"`
	Surname  *string `json:"surname,omitempty" validate:"omitempty,min=2,max=50" example:"Dante"`
	Email    string  `json:"email" validate:"required,email" example:"silvio@mail.com"`
	Password string  `json:"password" validate:"required" example:"s3cret"`
}

func (r RegisterRequest) Validate() error { return check(r) }

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"silvio@mail.com"`
	Password string `json:"password" validate:"required" example:"s3cret"`
}

func (r LoginRequest) Validate() error { return check(r) }

type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

type UpdateUserRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2,max=50" example:"Silvio"`
	Surname *string `json:"surname,omitempty" validate:"omitempty,min=2,max=50" example:"Dante"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email" example:"silvio@mail.com"`
}

func (r UpdateUserRequest) Validate() error { return check(r) }

type ColumnRequest struct {
	Title string `json:"title" validate:"required,max=256" example:"To Do"`
}

func (r ColumnRequest) Validate() error { return check(r) }

type UpdateColumnRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=256" example:"Done"`
}

func (r UpdateColumnRequest) Validate() error { return check(r) }

type CreateCardRequest struct {
	Title       string  `json:"title" validate:"required,max=256" example:"Buy groceries"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1,max=500" example:"1. Buy milk. 2. Buy bread"`
}

func (r CreateCardRequest) Validate() error { return check(r) }

type UpdateCardRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=256" example:"Buy groceries"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1,max=500" example:"1. Buy milk. 2. Buy bread"`
}

func (r UpdateCardRequest) Validate() error { return check(r) }

type CommentRequest struct {
	Content string `json:"content" validate:"required,max=500" example:"Don't forget the oat milk"`
}

func (r CommentRequest) Validate() error { return check(r) }

type UpdateCommentRequest struct {
	Content *string `json:"content,omitempty" validate:"omitempty,min=1,max=500" example:"Done"`
}

func (r UpdateCommentRequest) Validate() error { return check(r) }
