package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/passkeeper/internal/models"
)

// ErrInvalidInput оборачивает все ошибки валидации структур
var ErrInvalidInput = errors.New("invalid input")

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateProfile проверяет профиль по тегам validate модели
func ValidateProfile(p *models.CredentialProfile) error {
	if p == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidInput)
	}
	return structErr(validate.Struct(p))
}

// ValidateSecret проверяет запись секрета по тегам validate модели
func ValidateSecret(s *models.StoredSecret) error {
	if s == nil {
		return fmt.Errorf("%w: secret is nil", ErrInvalidInput)
	}
	return structErr(validate.Struct(s))
}

// structErr превращает validator.ValidationErrors в читаемое сообщение
func structErr(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}
