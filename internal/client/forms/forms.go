// Package forms validates user input at the form boundary. Validation
// errors are returned per field for inline display and never propagate
// past the form.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LoginForm is the login dialog's input.
type LoginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// UserForm is the user create/edit dialog's input.
type UserForm struct {
	Name       string `validate:"required,min=2,max=50"`
	Email      string `validate:"required,email"`
	Role       string `validate:"required,oneof=admin manager user"`
	Phone      string `validate:"omitempty,max=20"`
	Department string `validate:"omitempty,max=50"`
}

// ProjectForm is the project create/edit dialog's input.
type ProjectForm struct {
	Title       string  `validate:"required,min=3,max=100"`
	Description string  `validate:"omitempty,max=500"`
	Status      string  `validate:"required,oneof=active completed on-hold"`
	Manager     string  `validate:"required,min=2,max=50"`
	Budget      float64 `validate:"omitempty,gte=0"`
	StartDate   string  `validate:"required"`
}

// Check validates a form and returns one message per failed field, keyed by
// the lowercased field name. An empty map means the form is valid.
func Check(form any) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return map[string]string{}
	}

	problems := map[string]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		problems[""] = "invalid input"
		return problems
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		problems[field] = fieldError(fe)
	}
	return problems
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "please enter a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
