package validator

import (
	"fmt"

	"bountyboard_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	minRating = 1
	maxRating = 5
)

// registerCustomRules регистрирует кастомные правила валидации.
func registerCustomRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"is-bounty-stage":      validateBountyStage,
		"is-rating":            validateRating,
		"is-notification-kind": validateNotificationKind,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register validation tag '%s': %w", tag, err)
		}
	}
	return nil
}

func validateBountyStage(fl validator.FieldLevel) bool {
	return models.BountyStage(fl.Field().Int()).Valid()
}

func validateRating(fl validator.FieldLevel) bool {
	r := fl.Field().Int()
	return r >= minRating && r <= maxRating
}

func validateNotificationKind(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // пустое значение проверяет 'required'
	}
	return models.NotificationKind(value).Valid()
}
