package serverutils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and folds the first failure into
// an AppError so the middleware can emit it as a 400.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return NewValidationError("invalid input")
	}

	fe := ve[0]
	field := jsonFieldName(fe)
	switch fe.Tag() {
	case "required":
		return NewValidationError("%s is required", field)
	default:
		return NewValidationError("%s is invalid", field)
	}
}

func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "input"
	}
	// Struct field names are exported; lower the first rune to match the wire name.
	return strings.ToLower(name[:1]) + name[1:]
}
