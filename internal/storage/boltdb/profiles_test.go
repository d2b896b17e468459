package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/passkeeper/internal/models"
	"github.com/iudanet/passkeeper/internal/storage"
)

// createTestProfile формирует тестовый профиль
func createTestProfile(id, title, website, username string, updatedAt time.Time) *models.CredentialProfile {
	p := models.NewCredentialProfile(title, website, username)
	p.ID = id
	p.CreatedAt = updatedAt
	p.UpdatedAt = updatedAt
	return p
}

func TestSaveGetDeleteProfile(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	profile := createTestProfile("p-1", "GitHub", "github.com", "octocat", time.Now())

	require.NoError(t, store.SaveProfile(ctx, profile))

	got, err := store.GetProfile(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, profile.Title, got.Title)
	assert.Equal(t, profile.Website, got.Website)
	assert.Equal(t, profile.PasswordLength, got.PasswordLength)
	assert.Equal(t, models.DefaultCategory, got.Category)

	require.NoError(t, store.DeleteProfile(ctx, "p-1"))

	_, err = store.GetProfile(ctx, "p-1")
	assert.ErrorIs(t, err, storage.ErrProfileNotFound)

	// Повторное удаление
	assert.ErrorIs(t, store.DeleteProfile(ctx, "p-1"), storage.ErrProfileNotFound)
}

func TestSaveProfile_EmptyID(t *testing.T) {
	store := createTestStorage(t)

	err := store.SaveProfile(context.Background(), createTestProfile("", "x", "", "", time.Now()))
	assert.Error(t, err)
}

func TestSaveProfile_Replaces(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	profile := createTestProfile("p-1", "GitHub", "github.com", "octocat", time.Now())
	require.NoError(t, store.SaveProfile(ctx, profile))

	profile.PasswordLength = 24
	require.NoError(t, store.SaveProfile(ctx, profile))

	got, err := store.GetProfile(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, 24, got.PasswordLength)

	all, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestListProfiles_OrderedByUpdatedAtDesc(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveProfile(ctx, createTestProfile("a", "Oldest", "", "", base)))
	require.NoError(t, store.SaveProfile(ctx, createTestProfile("b", "Newest", "", "", base.Add(2*time.Hour))))
	require.NoError(t, store.SaveProfile(ctx, createTestProfile("c", "Middle", "", "", base.Add(time.Hour))))

	got, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "c", got[1].ID)
	assert.Equal(t, "a", got[2].ID)
}

func TestListProfiles_Empty(t *testing.T) {
	store := createTestStorage(t)

	got, err := store.ListProfiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchProfiles(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	now := time.Now()

	require.NoError(t, store.SaveProfile(ctx, createTestProfile("1", "GitHub", "github.com", "octocat", now)))
	require.NoError(t, store.SaveProfile(ctx, createTestProfile("2", "Mail", "mail.example.org", "alice@example.org", now)))
	require.NoError(t, store.SaveProfile(ctx, createTestProfile("3", "Bank", "bank.fi", "alice", now)))

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "by title, case-insensitive", query: "github", wantIDs: []string{"1"}},
		{name: "by website", query: "EXAMPLE.ORG", wantIDs: []string{"2"}},
		{name: "by username", query: "alice", wantIDs: []string{"2", "3"}},
		{name: "no match", query: "nothing", wantIDs: nil},
		{name: "empty query matches all", query: "", wantIDs: []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.SearchProfiles(ctx, tt.query)
			require.NoError(t, err)

			var ids []string
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, ids)
		})
	}
}

func TestCategories(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	now := time.Now()

	work := createTestProfile("1", "Jira", "", "", now)
	work.Category = "Work"
	social := createTestProfile("2", "Mastodon", "", "", now)
	social.Category = "Social"
	work2 := createTestProfile("3", "Slack", "", "", now)
	work2.Category = "Work"

	for _, p := range []*models.CredentialProfile{work, social, work2} {
		require.NoError(t, store.SaveProfile(ctx, p))
	}

	categories, err := store.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Social", "Work"}, categories)

	byCategory, err := store.ListProfilesByCategory(ctx, "Work")
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)
}
