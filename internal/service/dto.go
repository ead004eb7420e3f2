package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CreatePostRequest is the writable subset of a post. Field order matters:
// validation reports the first violated field in declaration order.
type CreatePostRequest struct {
	Title    string `json:"title" validate:"required"`
	Summary  string `json:"summary" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their wire name so the error body matches the payload.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateCreateInput(req CreatePostRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	field := vErrs[0].Field()
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("%s is required", field),
	}
}
