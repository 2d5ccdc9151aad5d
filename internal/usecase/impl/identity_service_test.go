package impl

import (
	"context"
	"testing"

	"mimapa/internal/domain/entity"
	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/domain/repository"
	"mimapa/internal/domain/service"
	mockRepo "mimapa/internal/mocks/repository"
	mockSvc "mimapa/internal/mocks/service"
	"mimapa/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type identityServiceFixtures struct {
	service      usecase.IdentityUsecase
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return identityServiceFixtures{
		service: NewIdentityService(IdentityServiceParams{
			UserRepo:     userRepo,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func TestIdentityService_ResolveRequired_Success(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	user := &entity.User{Email: "ana@example.com", Name: "Ana"}

	fx.tokenService.EXPECT().ParseSubject("good-token").Return(user.Email, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	identity, err := fx.service.ResolveRequired(ctx, "good-token")

	require.NoError(t, err)
	assert.Equal(t, user, identity.User)
	assert.Equal(t, "good-token", identity.Token)
	assert.Equal(t, "ana@example.com", identity.Email())
}

func TestIdentityService_ResolveRequired_Unauthenticated(t *testing.T) {
	ctx := context.Background()

	t.Run("missing credential", func(t *testing.T) {
		fx := createTestIdentityService(t)

		_, err := fx.service.ResolveRequired(ctx, "")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("invalid credential", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokenService.EXPECT().ParseSubject("tampered").Return("", service.ErrCredentialInvalid)

		_, err := fx.service.ResolveRequired(ctx, "tampered")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
		assert.NotContains(t, err.Error(), "signature")
	})

	t.Run("empty subject", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokenService.EXPECT().ParseSubject("no-sub").Return("", nil)

		_, err := fx.service.ResolveRequired(ctx, "no-sub")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokenService.EXPECT().ParseSubject("orphan").Return("ghost@example.com", nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.ResolveRequired(ctx, "orphan")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}

func TestIdentityService_ResolveRequired_DatabaseFailureIsNotUnauthenticated(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ParseSubject("token").Return("ana@example.com", nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(nil, errors.New("connection reset"))

	_, err := fx.service.ResolveRequired(ctx, "token")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestIdentityService_ResolveOptional(t *testing.T) {
	ctx := context.Background()

	t.Run("absent credential yields anonymous", func(t *testing.T) {
		fx := createTestIdentityService(t)

		assert.Nil(t, fx.service.ResolveOptional(ctx, ""))
	})

	t.Run("invalid credential yields anonymous", func(t *testing.T) {
		fx := createTestIdentityService(t)
		fx.tokenService.EXPECT().ParseSubject("expired").Return("", service.ErrCredentialInvalid)

		assert.Nil(t, fx.service.ResolveOptional(ctx, "expired"))
	})

	t.Run("valid credential yields identity", func(t *testing.T) {
		fx := createTestIdentityService(t)
		user := &entity.User{Email: "ana@example.com"}
		fx.tokenService.EXPECT().ParseSubject("good").Return(user.Email, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

		identity := fx.service.ResolveOptional(ctx, "good")

		require.NotNil(t, identity)
		assert.Equal(t, user.Email, identity.Email())
	})
}
