package autofill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/iudanet/passkeeper/internal/crypto"
)

const (
	// HandleKeyAlias alias ключа подписи в хранилище ключей
	HandleKeyAlias = "autofill-handle"
	// DefaultHandleTTL время жизни handle по умолчанию
	DefaultHandleTTL = 5 * time.Minute

	handleIssuer = "passkeeper-autofill"
)

// ErrInvalidHandle handle подделан, просрочен или подписан другим ключом
var ErrInvalidHandle = errors.New("invalid autofill handle")

// HandleClaims содержимое handle вторичной аутентификации.
// Handle не содержит секретов: только что и куда заполнять.
type HandleClaims struct {
	ProfileID string            `json:"pid"`
	AppID     string            `json:"app"`
	Fields    []FieldDescriptor `json:"fields"`
	jwt.RegisteredClaims
}

// HandleSigner подписывает и проверяет handle (JWT HS256) ключом из хранилища ключей
type HandleSigner struct {
	keys crypto.KeyProvider
	now  func() time.Time
	ttl  time.Duration
}

// NewHandleSigner создает подписывающий сервис; ttl <= 0 заменяется DefaultHandleTTL
func NewHandleSigner(keys crypto.KeyProvider, ttl time.Duration) *HandleSigner {
	if ttl <= 0 {
		ttl = DefaultHandleTTL
	}
	return &HandleSigner{
		keys: keys,
		ttl:  ttl,
		now:  time.Now,
	}
}

// Sign выпускает handle для профиля и набора полей
func (s *HandleSigner) Sign(ctx context.Context, profileID, appID string, fields []FieldDescriptor) (string, error) {
	now := s.now()
	claims := HandleClaims{
		ProfileID: profileID,
		AppID:     appID,
		Fields:    fields,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    handleIssuer,
			Subject:   profileID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	key, err := s.keys.GetOrCreateKey(ctx, HandleKeyAlias)
	if err != nil {
		return "", fmt.Errorf("failed to get handle signing key: %w", err)
	}

	var signed string
	err = key.WithKey(func(k []byte) error {
		var signErr error
		signed, signErr = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(k)
		return signErr
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign handle: %w", err)
	}

	return signed, nil
}

// Verify проверяет подпись и срок действия handle
func (s *HandleSigner) Verify(ctx context.Context, handle string) (*HandleClaims, error) {
	key, err := s.keys.GetOrCreateKey(ctx, HandleKeyAlias)
	if err != nil {
		return nil, fmt.Errorf("failed to get handle signing key: %w", err)
	}

	claims := &HandleClaims{}
	err = key.WithKey(func(k []byte) error {
		_, parseErr := jwt.ParseWithClaims(handle, claims,
			func(*jwt.Token) (any, error) { return k, nil },
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(handleIssuer),
			jwt.WithExpirationRequired(),
			jwt.WithTimeFunc(s.now),
		)
		return parseErr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHandle, err)
	}

	if claims.ProfileID == "" || len(claims.Fields) == 0 {
		return nil, fmt.Errorf("%w: missing profile or fields", ErrInvalidHandle)
	}

	return claims, nil
}
