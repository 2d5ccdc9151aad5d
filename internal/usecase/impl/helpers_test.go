package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mimapa/config"
	"mimapa/internal/domain/entity"
	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/domain/repository"
	mockRepo "mimapa/internal/mocks/repository"
	"mimapa/internal/usecase"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Reviews: &config.ReviewsConfig{
			DefaultLimit:    100,
			MaxLimit:        100,
			DefaultRadiusKm: 5,
			MinRadiusKm:     0.1,
			MaxRadiusKm:     100,
		},
		Images: &config.ImagesConfig{MaxBytes: 1 << 10},
	}
}

// expectTransaction runs the transaction body against factory and returns its error.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newIdentity(email, token string) *usecase.Identity {
	return &usecase.Identity{
		User:  &entity.User{Email: email, Name: "Autora"},
		Token: token,
	}
}

func requireViolation(t *testing.T, err error, field string) {
	t.Helper()

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := make([]string, 0, len(validationErr.Violations()))
	for _, v := range validationErr.Violations() {
		fields = append(fields, v.Field)
	}
	require.Contains(t, fields, field)
}

func ptr[T any](v T) *T {
	return &v
}
