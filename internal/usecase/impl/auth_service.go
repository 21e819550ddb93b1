package impl

import (
	"context"
	"log/slog"

	deliverycontext "stallbook/internal/delivery/context"
	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	"stallbook/internal/domain/repository"
	"stallbook/internal/domain/service"
	"stallbook/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and issues a token pair.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("username", input.Username))

	user, err := srv.userRepo.FindUserByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown username", slog.String("username", input.Username))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password before the account gates so a disabled account
	// does not leak which passwords are wrong.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if err := srv.checkAccountGates(user); err != nil {
		srv.log(ctx).Warn("Login rejected", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(
		user.ID, user.TenantID, user.Roles.ToStrings(), user.IsSuperAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair. The
// user is reloaded so account and tenant gates apply on every refresh.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "invalid refresh token")
	}
	if claims.Type != "refresh" {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "not a refresh token")
	}

	user, err := srv.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user for token refresh")
	}

	if err := srv.checkAccountGates(user); err != nil {
		return nil, err
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(
		user.ID, user.TenantID, user.Roles.ToStrings(), user.IsSuperAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
		User:         user,
	}, nil
}

// CurrentUser resolves the claims into the up-to-date user record.
func (srv *authService) CurrentUser(ctx context.Context, claims *service.Claims) (*entity.User, error) {
	if claims == nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "missing claims")
	}

	user, err := srv.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	if err := srv.checkAccountGates(user); err != nil {
		return nil, err
	}

	return user, nil
}

// checkAccountGates rejects disabled accounts and, for tenant users,
// suspended or missing tenants.
func (srv *authService) checkAccountGates(user *entity.User) error {
	if !user.IsActive {
		return errors.Wrap(domainerrors.ErrAccountDisabled, "account disabled")
	}
	if !user.IsSuperAdmin {
		if user.Tenant == nil || !user.Tenant.IsActive() {
			return errors.Wrap(domainerrors.ErrTenantSuspended, "tenant suspended")
		}
	}

	return nil
}
