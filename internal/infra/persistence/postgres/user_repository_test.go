package postgres

import (
	"context"
	"testing"
	"time"

	"mimapa/internal/domain/entity"
	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	picture := "https://example.com/ana.png"
	user := &entity.User{
		Email:         "Ana@x.com",
		Name:          "Ana",
		Picture:       &picture,
		OAuthProvider: entity.ProviderTypeGoogle,
		OAuthID:       "google-1",
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, user.CreatedAt, user.LastLogin)

	byEmail, err := repo.FindByEmail(ctx, "Ana@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "Ana", byEmail.Name)
	require.NotNil(t, byEmail.Picture)
	assert.Equal(t, picture, *byEmail.Picture)
	assert.Equal(t, entity.ProviderTypeGoogle, byEmail.OAuthProvider)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana@x.com", byID.Email)

	_, err = repo.FindByEmail(ctx, "ana@x.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &entity.User{Email: "a@x.com", Name: "A", OAuthProvider: entity.ProviderTypeGoogle, OAuthID: "1"}))

	err := repo.Create(ctx, &entity.User{Email: "a@x.com", Name: "B", OAuthProvider: entity.ProviderTypeGoogle, OAuthID: "2"})
	assert.ErrorIs(t, err, domainerrors.ErrUserUpsertFailed)
}

func TestUserRepository_TouchLogin(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	user := &entity.User{Email: "a@x.com", Name: "A", OAuthProvider: entity.ProviderTypeGoogle, OAuthID: "1"}
	require.NoError(t, repo.Create(ctx, user))

	later := user.CreatedAt.Add(time.Hour)
	user.Name = "A renamed"
	require.NoError(t, repo.TouchLogin(ctx, user, later))

	stored, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "A renamed", stored.Name)
	assert.True(t, stored.LastLogin.Equal(later))
	assert.True(t, stored.CreatedAt.Before(stored.LastLogin))

	err = repo.TouchLogin(ctx, &entity.User{ID: uuid.New()}, later)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
