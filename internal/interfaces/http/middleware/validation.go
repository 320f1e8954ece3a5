package middleware

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/AJCrest412/proxima-be/internal/interfaces/http/dto"
)

// FormatBindingError turns a gin binding error into field-level details.
// Validator errors become one detail per failing field; anything else is
// reported as a single malformed-body detail.
func FormatBindingError(err error) []dto.ValidationDetail {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]dto.ValidationDetail, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, dto.ValidationDetail{
				Field:   toSnakeCase(fe.Field()),
				Message: messageForTag(fe),
			})
		}
		return details
	}

	return []dto.ValidationDetail{{Field: "body", Message: "Invalid request body."}}
}

func messageForTag(fe validator.FieldError) string {
	field := toSnakeCase(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "email":
		return "Invalid email format."
	case "min":
		return fmt.Sprintf("%s must be at least %s.", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID.", field)
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}

func toSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Break before an uppercase run boundary, so MRP stays "mrp"
			// while ClientID becomes "client_id".
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
