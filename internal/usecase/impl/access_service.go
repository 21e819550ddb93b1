// Package impl contains the implementation of the application's business logic.
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

// accessService implements the AccessUsecase interface.
type accessService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewAccessService is the constructor for accessService.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	return &accessService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureRole resolves the claims into a live user and requires at least
// the given role. The user is re-read on every call so deactivation,
// tenant suspension and role changes take effect before token expiry.
func (srv *accessService) EnsureRole(ctx context.Context, claims *service.Claims, minimum entity.RoleCode) (*usecase.Authorized, error) {
	authorized, err := srv.resolve(ctx, claims)
	if err != nil {
		return nil, err
	}

	if !authorized.Can(minimum) {
		srv.log(ctx).Warn("Role check failed",
			slog.Any("userID", authorized.Identity.ID),
			slog.String("required", minimum.String()),
			slog.String("effective", authorized.Identity.EffectiveRole().String()))

		return nil, errors.Wrap(domainerrors.ErrPermissionDenied, "insufficient role")
	}

	return authorized, nil
}

// RequireSuperAdmin resolves the claims and requires the super admin
// flag on the live user record, never trusting the token alone.
func (srv *accessService) RequireSuperAdmin(ctx context.Context, claims *service.Claims) (*usecase.Authorized, error) {
	authorized, err := srv.resolve(ctx, claims)
	if err != nil {
		return nil, err
	}

	if !authorized.Identity.IsSuperAdmin {
		srv.log(ctx).Warn("Super admin check failed", slog.Any("userID", authorized.Identity.ID))

		return nil, errors.Wrap(domainerrors.ErrSuperAdminOnly, "super admin required")
	}

	return authorized, nil
}

func (srv *accessService) resolve(ctx context.Context, claims *service.Claims) (*usecase.Authorized, error) {
	if claims == nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "missing claims")
	}

	user, err := srv.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load user for access check")
	}

	if !user.IsActive {
		return nil, errors.Wrap(domainerrors.ErrAccountDisabled, "account disabled")
	}

	if !user.IsSuperAdmin {
		if user.Tenant == nil || !user.Tenant.IsActive() {
			return nil, errors.Wrap(domainerrors.ErrTenantSuspended, "tenant suspended")
		}
	}

	return &usecase.Authorized{Identity: user, Scope: user.Scope()}, nil
}
