package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/yigit/personnel/internal/pkg/apperrors"
)

// PassportPattern is four digits, a space, then six digits
const PassportPattern = `^\d{4} \d{6}$`

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Passport *regexp.Regexp
}{
	Passport: regexp.MustCompile(PassportPattern),
}

// IsPassport reports whether s is a well formed passport number
func IsPassport(s string) bool {
	return CompiledPatterns.Passport.MatchString(s)
}

// IsUUID reports whether s parses as a UUID
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Validator checks request structs against their `validate` tags
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator with the custom passport rule registered and
// field names reported by their json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	// Registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("passport", func(fl validator.FieldLevel) bool {
		return IsPassport(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct validates s. Any missing required field yields
// apperrors.ErrMissingRequiredFields; other rule failures yield a
// validation error describing the first offending field.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError(err.Error())
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return apperrors.ErrMissingRequiredFields
		}
	}

	return apperrors.NewValidationError(formatValidationError(fieldErrs[0]))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return e.Field() + " must be at most " + e.Param() + " characters"
		}
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "passport":
		return e.Field() + " must match the format 0000 000000"
	case "uuid":
		return e.Field() + " must be a valid UUID"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
