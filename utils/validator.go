package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers custom validation rules
func RegisterCustomValidations(v *validator.Validate) {
	v.RegisterValidation("notblank", validateNotBlank)
}

// validateNotBlank rejects strings that are empty after trimming, which
// "required" alone lets through (e.g. a title of three spaces).
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func TranslateValidationError(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		var messages []string
		for _, fe := range ve {
			field := fe.Field()
			switch fe.Tag() {
			case "required":
				messages = append(messages, field+" is required")
			case "email":
				messages = append(messages, "invalid email format")
			case "min":
				messages = append(messages, field+" must be at least "+fe.Param()+" characters")
			case "max":
				messages = append(messages, field+" must be at most "+fe.Param()+" characters")
			case "gt":
				messages = append(messages, field+" must be greater than "+fe.Param())
			case "gte":
				messages = append(messages, field+" must be at least "+fe.Param())
			case "lte":
				messages = append(messages, field+" must be at most "+fe.Param())
			case "oneof":
				messages = append(messages, field+" must be one of: "+fe.Param())
			case "url":
				messages = append(messages, field+" must be a valid URL")
			case "notblank":
				messages = append(messages, field+" must not be blank")
			default:
				messages = append(messages, field+" is invalid")
			}
		}
		return strings.Join(messages, ", ")
	}
	return err.Error()
}
