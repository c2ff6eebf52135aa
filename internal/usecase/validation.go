package usecase

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/go-playground/validator/v10"
)

// validateStruct превращает ошибки validator в карту поле → сообщение.
func validateStruct(v *validator.Validate, data any) error {
	err := v.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	verr := domain.NewValidationError()
	for _, fe := range fieldErrs {
		verr.Add(snakeCase(fe.Field()), validationMessage(fe))
	}
	return verr
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "e164":
		return "Enter a valid phone number in international format."
	case "datetime":
		return "Enter a valid date (YYYY-MM-DD)."
	}
	return "Invalid value."
}

// snakeCase: MobileNumber → mobile_number, VATNumber → vat_number.
func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
