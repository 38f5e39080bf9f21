package http

import (
	"math"
	"regexp"

	"github.com/go-playground/validator/v10"

	"smartlend/internal/domain/loan"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
	Warning string       `json:"warning,omitempty"`
}

// RIB/IBAN-like bank reference: 10-34 chars, letters and digits.
var reRIB = regexp.MustCompile(`^[A-Z0-9]{10,34}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// repayment cadence must be one of the four enum members; anything
	// else is a validation error, never a silent annual fallback
	_ = v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
		_, err := loan.ParsePeriod(fl.Field().String())
		return err == nil
	})
	// bank account reference shape
	_ = v.RegisterValidation("rib", func(fl validator.FieldLevel) bool {
		return reRIB.MatchString(fl.Field().String())
	})
	// max 2 decimal places
	_ = v.RegisterValidation("dec2", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return math.Abs(f-(math.Round(f*100)/100)) < 1e-9
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "period":
			out = append(out, FieldError{Field: field, Message: "must be monthly, quarterly, semiannual or annual"})
		case "rib":
			out = append(out, FieldError{Field: field, Message: "must be a 10-34 char bank reference"})
		case "dec2":
			out = append(out, FieldError{Field: field, Message: "must have at most 2 decimal places"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param() + " characters"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
