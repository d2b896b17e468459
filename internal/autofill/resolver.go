package autofill

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/passkeeper/internal/crypto"
	"github.com/iudanet/passkeeper/internal/models"
)

// ErrEmptyPassphrase passphrase профиля не введена
var ErrEmptyPassphrase = errors.New("passphrase cannot be blank")

// Unlocker проверяет, что хранилище разблокировано (gate.Gate)
type Unlocker interface {
	RequireUnlocked(ctx context.Context) error
}

// ProfileGetter источник профиля по ID
type ProfileGetter interface {
	GetProfile(ctx context.Context, id string) (*models.CredentialProfile, error)
}

// Resolution настоящие значения для заполнения, выданные после вторичной аутентификации
type Resolution struct {
	Values    map[string]string `json:"values"`
	ProfileID string            `json:"profile_id"`
	AppID     string            `json:"app_id"`
}

// Resolver выдает настоящие значения по handle
type Resolver struct {
	signer   *HandleSigner
	gate     Unlocker
	profiles ProfileGetter
}

// NewResolver создает resolver
func NewResolver(signer *HandleSigner, gate Unlocker, profiles ProfileGetter) *Resolver {
	return &Resolver{
		signer:   signer,
		gate:     gate,
		profiles: profiles,
	}
}

// Resolve проверяет handle и gate, выводит пароль профиля из passphrase
// и возвращает значения по идентификаторам полей.
func (r *Resolver) Resolve(ctx context.Context, handle, passphrase string) (*Resolution, error) {
	claims, err := r.signer.Verify(ctx, handle)
	if err != nil {
		return nil, err
	}

	if err := r.gate.RequireUnlocked(ctx); err != nil {
		return nil, err
	}

	if strings.TrimSpace(passphrase) == "" {
		return nil, ErrEmptyPassphrase
	}

	profile, err := r.profiles.GetProfile(ctx, claims.ProfileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", claims.ProfileID, err)
	}

	password, err := crypto.DerivePassword(passphrase, profile.PasswordLength, crypto.DeriveOptions{
		SpecialChars:    profile.SpecialChars,
		UseSpecialChars: profile.UseSpecialChars,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to derive password: %w", err)
	}

	values := make(map[string]string, len(claims.Fields))
	for _, f := range claims.Fields {
		switch f.Kind {
		case FieldUsername:
			values[f.FieldID] = profile.Username
		case FieldPassword:
			values[f.FieldID] = password
		}
	}

	return &Resolution{
		ProfileID: profile.ID,
		AppID:     claims.AppID,
		Values:    values,
	}, nil
}
