package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "mimapa/internal/delivery/context"
	"mimapa/internal/domain/entity"
	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/domain/repository"
	"mimapa/internal/domain/service"
	"mimapa/internal/errors"
	"mimapa/internal/usecase"
	"mimapa/internal/util"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	oauthService      service.OAuthService
	googleAuthService service.OAuthAuthService
	tokenService      service.TokenService
	logger            *slog.Logger
	now               func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	OAuthService      service.OAuthService
	GoogleAuthService service.OAuthAuthService
	TokenService      service.TokenService
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	params.Logger.Info("Bearer credentials configured",
		slog.String("ttl", util.FormatDuration(params.TokenService.TTL())))

	return &authService{
		txManager:         params.TxManager,
		oauthService:      params.OAuthService,
		googleAuthService: params.GoogleAuthService,
		tokenService:      params.TokenService,
		logger:            params.Logger,
		now:               time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *authService) BeginGoogleLogin() (string, error) {
	authURL, _, err := srv.oauthService.BuildAuthorizationURL()
	if err != nil {
		return "", errors.Wrap(err, "failed to build authorization url")
	}

	return authURL, nil
}

func (srv *authService) CompleteGoogleLogin(ctx context.Context, code, state string) (*usecase.LoginOutput, error) {
	if !srv.oauthService.ValidateState(state) {
		return nil, domainerrors.ErrOAuthStateInvalid.WrapMessage("unknown or expired oauth state")
	}
	if strings.TrimSpace(code) == "" {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("authorization code missing")
	}

	profile, err := srv.oauthService.ExchangeCode(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("OAuth code exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage(err.Error())
	}

	return srv.login(ctx, profile)
}

func (srv *authService) LoginWithGoogleIDToken(ctx context.Context, idToken string) (*usecase.LoginOutput, error) {
	if strings.TrimSpace(idToken) == "" {
		return nil, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:   "id_token",
			Rule:    "required",
			Message: "es obligatorio",
		})
	}

	profile, err := srv.googleAuthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage(err.Error())
	}

	return srv.login(ctx, profile)
}

// login creates the user on first sight of the email, bumps last_login otherwise,
// and mints a credential whose subject is the email.
func (srv *authService) login(ctx context.Context, profile *service.OAuthUser) (*usecase.LoginOutput, error) {
	if profile == nil || profile.Email == "" {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("provider returned no email")
	}

	now := srv.now().UTC()

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindByEmail(ctx, profile.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			user = newUserFromProfile(profile, now)

			return userRepo.Create(ctx, user)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by email")
		}

		existing.Name = profile.Name
		existing.Picture = optionalString(profile.AvatarURL)
		if err := userRepo.TouchLogin(ctx, existing, now); err != nil {
			return errors.Wrap(err, "failed to record login")
		}
		user = existing

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to upsert user on login", slog.String("email", profile.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	issued, err := srv.tokenService.Issue(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue credential")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID), slog.String("provider", profile.Provider.String()))

	return &usecase.LoginOutput{
		AccessToken: issued.AccessToken,
		TokenType:   usecase.TokenTypeBearer,
		ExpiresIn:   int64(srv.tokenService.TTL().Seconds()),
		ExpiresAt:   issued.ExpiresAt,
		User:        user,
	}, nil
}

func newUserFromProfile(profile *service.OAuthUser, now time.Time) *entity.User {
	return &entity.User{
		Email:         profile.Email,
		Name:          profile.Name,
		Picture:       optionalString(profile.AvatarURL),
		OAuthProvider: profile.Provider,
		OAuthID:       profile.ID,
		CreatedAt:     now,
		LastLogin:     now,
	}
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
