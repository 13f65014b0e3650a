package impl

import (
	"reflect"
	"strings"

	domainerrors "presskit/internal/domain/errors"
	"presskit/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// contentValidator is shared by every UpdateContent call; validator.Validate
// caches struct metadata and is safe for concurrent use.
var contentValidator = newContentValidator()

func newContentValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report violations under the payload's JSON field names so the admin
	// panel can highlight the offending inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// validateContentInput checks the payload against the content schema and
// aggregates every violation into one ValidationError, keyed by field path
// (e.g. "sets[1].embedUrl"). It reports nil when the payload is valid.
func validateContentInput(input *usecase.UpdateContentInput) *domainerrors.ValidationError {
	err := contentValidator.Struct(input)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return domainerrors.NewValidationError([]domainerrors.FieldViolation{
			{Field: "", Message: "payload is not a content document"},
		})
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.NewValidationError([]domainerrors.FieldViolation{
			{Field: "", Message: err.Error()},
		})
	}

	violations := make([]domainerrors.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, domainerrors.FieldViolation{
			Field:   trimNamespaceRoot(fe.Namespace()),
			Message: violationMessage(fe),
		})
	}

	return domainerrors.NewValidationError(violations)
}

// trimNamespaceRoot drops the struct type name from a validator namespace:
// "UpdateContentInput.sets[1].embedUrl" -> "sets[1].embedUrl".
func trimNamespaceRoot(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}

	return namespace
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "failed validation rule '" + fe.Tag() + "'"
	}
}
