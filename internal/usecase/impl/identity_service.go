// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "mimapa/internal/delivery/context"
	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/domain/repository"
	"mimapa/internal/domain/service"
	"mimapa/internal/errors"
	"mimapa/internal/usecase"

	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveRequired collapses every decode failure into ErrUnauthenticated so callers
// cannot tell a bad signature from an expired credential.
func (srv *identityService) ResolveRequired(ctx context.Context, credential string) (*usecase.Identity, error) {
	if credential == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("credential missing")
	}

	subject, err := srv.tokenService.ParseSubject(credential)
	if err != nil || subject == "" {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("credential rejected")
	}

	user, err := srv.userRepo.FindByEmail(ctx, subject)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("credential subject is not a known user")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load credential subject")
	}

	return &usecase.Identity{User: user, Token: credential}, nil
}

func (srv *identityService) ResolveOptional(ctx context.Context, credential string) *usecase.Identity {
	if credential == "" {
		return nil
	}

	identity, err := srv.ResolveRequired(ctx, credential)
	if err != nil {
		srv.log(ctx).Debug("Optional credential ignored", slog.Any("error", err))

		return nil
	}

	return identity
}
