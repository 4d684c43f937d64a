package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// emergency_contact_phone -> Emergency Contact Phone
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError turns the first binding failure into a field-level AppError.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		case "email":
			return New(CodeValidation, field+" must be a valid email address", http.StatusBadRequest)
		case "min":
			return New(CodeValidation, field+" must be at least "+e.Param()+" characters", http.StatusBadRequest)
		case "oneof":
			return New(CodeValidation, field+" must be one of: "+e.Param(), http.StatusBadRequest)
		case "eqfield":
			return New(CodeValidation, field+" does not match", http.StatusBadRequest)
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeValidation,
		"Invalid input",
		http.StatusBadRequest,
	)
}
