package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// AccountInput is the client-supplied part of an account. DateJoined is
// optional; nil means "use the creation date" on create and "keep" on update.
type AccountInput struct {
	DateJoined  *time.Time `json:"date_joined"`
	Name        string     `json:"name" validate:"required,max=64"`
	Email       string     `json:"email" validate:"required,max=64"`
	Address     string     `json:"address" validate:"required,max=256"`
	PhoneNumber string     `json:"phone_number" validate:"required,max=32"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateAccountInput checks that every required field is present and fits
// its column.
func ValidateAccountInput(input AccountInput) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid account: %w", err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", fe.Field()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}

	return fmt.Errorf("invalid account: %s", strings.Join(messages, "; "))
}
