package gate

import (
	"context"
	"fmt"
)

// BiometricOutcome итог биометрического запроса
type BiometricOutcome int

const (
	BiometricSuccess BiometricOutcome = iota
	BiometricError
	BiometricCancelled
)

// BiometricResult результат, который платформа передает в callback
type BiometricResult struct {
	Message string
	Outcome BiometricOutcome
}

// BiometricPrompt внешний биометрический запрос.
// Authenticate не блокирует: результат приходит в done ровно один раз, из любой горутины.
type BiometricPrompt interface {
	Authenticate(ctx context.Context, done func(BiometricResult))
}

// awaitBiometric запускает запрос и ждет результат или отмену ctx
func awaitBiometric(ctx context.Context, prompt BiometricPrompt) error {
	results := make(chan BiometricResult, 1)
	prompt.Authenticate(ctx, func(r BiometricResult) {
		// Повторные вызовы игнорируются
		select {
		case results <- r:
		default:
		}
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case r := <-results:
		switch r.Outcome {
		case BiometricSuccess:
			return nil
		case BiometricCancelled:
			return ErrBiometricCancelled
		default:
			if r.Message == "" {
				return ErrBiometricFailed
			}
			return fmt.Errorf("%w: %s", ErrBiometricFailed, r.Message)
		}
	}
}
