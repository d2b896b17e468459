package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/passkeeper/internal/models"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		profile *models.CredentialProfile
		name    string
		errMsg  string
		wantErr bool
	}{
		{
			name:    "valid defaults",
			profile: models.NewCredentialProfile("GitHub", "github.com", "octocat"),
		},
		{
			name: "valid - max length",
			profile: func() *models.CredentialProfile {
				p := models.NewCredentialProfile("GitHub", "", "")
				p.PasswordLength = models.MaxPasswordLength
				return p
			}(),
		},
		{
			name:    "invalid - empty title",
			profile: models.NewCredentialProfile("", "github.com", ""),
			wantErr: true,
			errMsg:  "title is required",
		},
		{
			name: "invalid - zero length",
			profile: func() *models.CredentialProfile {
				p := models.NewCredentialProfile("GitHub", "", "")
				p.PasswordLength = 0
				return p
			}(),
			wantErr: true,
			errMsg:  "passwordlength must be at least 1",
		},
		{
			name: "invalid - too long",
			profile: func() *models.CredentialProfile {
				p := models.NewCredentialProfile("GitHub", "", "")
				p.PasswordLength = 129
				return p
			}(),
			wantErr: true,
			errMsg:  "passwordlength must be at most 128",
		},
		{
			name:    "invalid - nil",
			wantErr: true,
			errMsg:  "profile is nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.profile)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSecret(t *testing.T) {
	assert.NoError(t, ValidateSecret(&models.StoredSecret{Title: "Bank"}))

	err := ValidateSecret(&models.StoredSecret{Website: "bank.fi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "title is required")

	assert.ErrorIs(t, ValidateSecret(nil), ErrInvalidInput)
}
