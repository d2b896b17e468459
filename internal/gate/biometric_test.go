package gate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePrompt отвечает асинхронно, как платформенный биометрический диалог
type fakePrompt struct {
	result BiometricResult
	calls  int
	never  bool
}

func (p *fakePrompt) Authenticate(ctx context.Context, done func(BiometricResult)) {
	p.calls++
	if p.never {
		return
	}
	go done(p.result)
}

func TestUnlockWithBiometric(t *testing.T) {
	tests := []struct {
		wantErr   error
		name      string
		result    BiometricResult
		biometric bool
		wantState State
	}{
		{
			name:      "success",
			biometric: true,
			result:    BiometricResult{Outcome: BiometricSuccess},
			wantState: StateUnlocked,
		},
		{
			name:      "error with message",
			biometric: true,
			result:    BiometricResult{Outcome: BiometricError, Message: "sensor unavailable"},
			wantErr:   ErrBiometricFailed,
			wantState: StateLocked,
		},
		{
			name:      "cancelled",
			biometric: true,
			result:    BiometricResult{Outcome: BiometricCancelled},
			wantErr:   ErrBiometricCancelled,
			wantState: StateLocked,
		},
		{
			name:      "disabled",
			biometric: false,
			result:    BiometricResult{Outcome: BiometricSuccess},
			wantErr:   ErrBiometricDisabled,
			wantState: StateLocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			g, _, clock := setupGate(t, tt.biometric)
			g.Lock()
			clock.Advance(time.Minute)

			prompt := &fakePrompt{result: tt.result}
			err := g.UnlockWithBiometric(ctx, prompt)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				last, err := g.LastUnlock(ctx)
				require.NoError(t, err)
				assert.Equal(t, clock.Now().UnixMilli(), last.UnixMilli())
			}

			state, err := g.State(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantState, state)

			if tt.wantErr == ErrBiometricDisabled {
				assert.Zero(t, prompt.calls, "prompt must not be shown when biometric is disabled")
			}
		})
	}
}

func TestUnlockWithBiometric_ErrorMessage(t *testing.T) {
	g, _, _ := setupGate(t, true)
	g.Lock()

	err := g.UnlockWithBiometric(context.Background(), &fakePrompt{
		result: BiometricResult{Outcome: BiometricError, Message: "too many attempts"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many attempts")
}

func TestUnlockWithBiometric_ContextCancelled(t *testing.T) {
	g, _, _ := setupGate(t, true)
	g.Lock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := g.UnlockWithBiometric(ctx, &fakePrompt{never: true})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	state, err := g.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateLocked, state)
}

func TestUnlockWithBiometric_NotInitialized(t *testing.T) {
	g, _, _ := newTestGate(t)

	err := g.UnlockWithBiometric(context.Background(), &fakePrompt{})
	assert.ErrorIs(t, err, ErrNotInitialized)
}
