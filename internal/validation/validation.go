package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single failed field of an inbound payload.
type FieldError struct {
	// Field name as it appears in the JSON payload
	// example: email
	Field string `json:"field"`

	// Human-readable reason for the failure
	// example: is required
	Reason string `json:"reason"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their JSON names so clients can match errors
	// to the payload they actually sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Validate checks a request struct against its validate tags and returns
// every failing field with a reason, not just the first one. A nil result
// means the payload is valid.
func Validate(payload any) []FieldError {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Reason: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Reason: reasonFor(fe)})
	}
	return out
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// DecodeErrors converts a JSON decoding error into field-level errors where
// possible. Type mismatches carry the offending field; anything else maps to
// a single payload-level error.
func DecodeErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []FieldError{{
			Field:  typeErr.Field,
			Reason: fmt.Sprintf("must be of type %s", typeErr.Type.String()),
		}}
	}

	return []FieldError{{Field: "", Reason: "body is not valid JSON"}}
}
