package validators

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Struct runs tag validation and returns field errors keyed by the JSON-style
// field name, or nil when the value is valid.
func Struct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		fieldErrors["request"] = "Invalid request body!"
		return fieldErrors
	}

	for _, fe := range vErrs {
		name := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		fieldErrors[name] = message(fe)
	}
	return fieldErrors
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required!"
	case "email":
		return "Must be a valid email address!"
	case "min":
		return "Must be at least " + fe.Param() + " characters!"
	case "max":
		return "Must be at most " + fe.Param() + " characters!"
	case "oneof":
		return "Must be one of: " + fe.Param() + "!"
	default:
		return "Invalid value!"
	}
}

// ParseAmount parses a positive decimal money amount from its JSON string
// form. Amounts travel as strings so no binary floating point ever touches
// them.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !amount.IsPositive() {
		return decimal.Zero, errors.New("amount must be greater than 0")
	}
	return amount, nil
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate accepts the date formats clients actually send.
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
