package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "stallbook/internal/delivery/context"
	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	"stallbook/internal/domain/repository"
	"stallbook/internal/domain/service"
	"stallbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// operationLogLimit caps the audit log listing.
const operationLogLimit = 100

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	roleRepo  repository.RoleRepository
	orgRepo   repository.OrgRepository
	logRepo   repository.OperationLogRepository
	hasher    service.PasswordHasher
	access    usecase.AccessUsecase
	logger    *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	RoleRepo  repository.RoleRepository
	OrgRepo   repository.OrgRepository
	LogRepo   repository.OperationLogRepository
	Hasher    service.PasswordHasher
	Access    usecase.AccessUsecase
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		roleRepo:  params.RoleRepo,
		orgRepo:   params.OrgRepo,
		logRepo:   params.LogRepo,
		hasher:    params.Hasher,
		access:    params.Access,
		logger:    params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireAdmin authorizes a tenant administration call.
func (srv *adminService) requireAdmin(ctx context.Context, claims *service.Claims) (*usecase.Authorized, uuid.UUID, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleAdmin)
	if err != nil {
		return nil, uuid.Nil, err
	}
	tenantID, ok := authorized.Scope.Tenant()
	if !ok {
		return nil, uuid.Nil, errors.Wrap(domainerrors.ErrPermissionDenied, "tenant administration needs a tenant scope")
	}

	return authorized, tenantID, nil
}

// ListUsers retrieves the tenant's users, newest first.
func (srv *adminService) ListUsers(ctx context.Context, claims *service.Claims) ([]*entity.User, error) {
	authorized, _, err := srv.requireAdmin(ctx, claims)
	if err != nil {
		return nil, err
	}

	users, err := srv.userRepo.ListUsers(ctx, authorized.Scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// CreateUser creates a tenant user with the given role assignments.
func (srv *adminService) CreateUser(ctx context.Context, claims *service.Claims, input usecase.CreateUserInput) (*entity.User, error) {
	authorized, tenantID, err := srv.requireAdmin(ctx, claims)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username and password are required")
	}
	roles, err := validRoleCodes(input.Roles)
	if err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	user := &entity.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		RealName:     strings.TrimSpace(input.RealName),
		IsActive:     true,
		TenantID:     &tenantID,
		DepartmentID: input.DepartmentID,
		Roles:        roles,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleIDs, err := resolveRoleIDs(ctx, repoFactory.NewRoleRepository(), roles)
		if err != nil {
			return err
		}

		if err := repoFactory.NewUserRepository().CreateUser(ctx, user, roleIDs); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return errors.Wrap(domainerrors.ErrUsernameTaken, "username taken")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return appendLog(ctx, repoFactory, authorized, "user.create", "user", user.ID.String(), username)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user creation transaction")
	}

	srv.log(ctx).Debug("User created", slog.Any("userID", user.ID))

	return user, nil
}

// UpdateUser modifies a user's profile fields.
func (srv *adminService) UpdateUser(ctx context.Context, claims *service.Claims, id uuid.UUID, input usecase.UpdateUserInput) error {
	authorized, _, err := srv.requireAdmin(ctx, claims)
	if err != nil {
		return err
	}

	user := &entity.User{
		ID:           id,
		RealName:     strings.TrimSpace(input.RealName),
		DepartmentID: input.DepartmentID,
	}
	if err := srv.userRepo.UpdateUser(ctx, authorized.Scope, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrRecordNotFound, "user not found")
		}

		return errors.Wrap(err, "failed to update user")
	}

	return nil
}

// ReplaceUserRoles swaps the user's role assignments.
func (srv *adminService) ReplaceUserRoles(ctx context.Context, claims *service.Claims, id uuid.UUID, roleCodes []entity.RoleCode) error {
	authorized, _, err := srv.requireAdmin(ctx, claims)
	if err != nil {
		return err
	}

	roles, err := validRoleCodes(roleCodes)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		roleIDs, err := resolveRoleIDs(ctx, repoFactory.NewRoleRepository(), roles)
		if err != nil {
			return err
		}

		if err := repoFactory.NewUserRepository().ReplaceUserRoles(ctx, authorized.Scope, id, roleIDs); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrRecordNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to replace user roles")
		}

		return appendLog(ctx, repoFactory, authorized, "user.roles", "user", id.String(),
			strings.Join(roles.ToStrings(), ","))
	})
	if err != nil {
		srv.log(ctx).Error("Failed to replace user roles", slog.Any("userID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute role replacement transaction")
	}

	return nil
}

// SetUserActive toggles whether the user may sign in.
func (srv *adminService) SetUserActive(ctx context.Context, claims *service.Claims, id uuid.UUID, active bool) error {
	authorized, _, err := srv.requireAdmin(ctx, claims)
	if err != nil {
		return err
	}

	// Admins cannot lock themselves out.
	if id == authorized.Identity.ID && !active {
		return errors.Wrap(domainerrors.ErrValidationFailed, "cannot deactivate own account")
	}

	if err := srv.userRepo.SetUserActive(ctx, authorized.Scope, id, active); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrRecordNotFound, "user not found")
		}

		return errors.Wrap(err, "failed to toggle user")
	}

	return nil
}

// ResetPassword replaces a user's password.
func (srv *adminService) ResetPassword(ctx context.Context, claims *service.Claims, id uuid.UUID, newPassword string) error {
	authorized, _, err := srv.requireAdmin(ctx, claims)
	if err != nil {
		return err
	}

	if newPassword == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "password is required")
	}

	hash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	if err := srv.userRepo.UpdateUserPassword(ctx, authorized.Scope, id, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrRecordNotFound, "user not found")
		}

		return errors.Wrap(err, "failed to reset password")
	}

	return nil
}

// CreateDepartment persists a new department.
func (srv *adminService) CreateDepartment(ctx context.Context, claims *service.Claims, name string) (*entity.Department, error) {
	_, tenantID, err := srv.requireAdmin(ctx, claims)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "department name is required")
	}

	department := &entity.Department{ID: uuid.New(), TenantID: tenantID, Name: name}
	if err := srv.orgRepo.CreateDepartment(ctx, department); err != nil {
		return nil, errors.Wrap(err, "failed to create department")
	}

	return department, nil
}

// ListDepartments retrieves the tenant's departments.
func (srv *adminService) ListDepartments(ctx context.Context, claims *service.Claims) ([]*entity.Department, error) {
	authorized, _, err := srv.requireAdmin(ctx, claims)
	if err != nil {
		return nil, err
	}

	departments, err := srv.orgRepo.ListDepartments(ctx, authorized.Scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	return departments, nil
}

// DeleteDepartment removes a department.
func (srv *adminService) DeleteDepartment(ctx context.Context, claims *service.Claims, id uuid.UUID) error {
	authorized, _, err := srv.requireAdmin(ctx, claims)
	if err != nil {
		return err
	}

	if err := srv.orgRepo.DeleteDepartment(ctx, authorized.Scope, id); err != nil {
		if errors.Is(err, repository.ErrDepartmentNotFound) {
			return errors.Wrap(domainerrors.ErrRecordNotFound, "department not found")
		}

		return errors.Wrap(err, "failed to delete department")
	}

	return nil
}

// CreateRegion persists a new region.
func (srv *adminService) CreateRegion(ctx context.Context, claims *service.Claims, name string) (*entity.Region, error) {
	_, tenantID, err := srv.requireAdmin(ctx, claims)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "region name is required")
	}

	region := &entity.Region{ID: uuid.New(), TenantID: tenantID, Name: name}
	if err := srv.orgRepo.CreateRegion(ctx, region); err != nil {
		return nil, errors.Wrap(err, "failed to create region")
	}

	return region, nil
}

// ListRegions retrieves the tenant's regions.
func (srv *adminService) ListRegions(ctx context.Context, claims *service.Claims) ([]*entity.Region, error) {
	authorized, _, err := srv.requireAdmin(ctx, claims)
	if err != nil {
		return nil, err
	}

	regions, err := srv.orgRepo.ListRegions(ctx, authorized.Scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	return regions, nil
}

// DeleteRegion removes a region with no attached selling locations.
// Regions still grouping locations are protected.
func (srv *adminService) DeleteRegion(ctx context.Context, claims *service.Claims, id uuid.UUID) error {
	authorized, _, err := srv.requireAdmin(ctx, claims)
	if err != nil {
		return err
	}

	count, err := srv.orgRepo.CountRegionLocations(ctx, authorized.Scope, id)
	if err != nil {
		return errors.Wrap(err, "failed to count region locations")
	}
	if count > 0 {
		return errors.Wrap(domainerrors.ErrRegionInUse, "region still has locations")
	}

	if err := srv.orgRepo.DeleteRegion(ctx, authorized.Scope, id); err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			return errors.Wrap(domainerrors.ErrRecordNotFound, "region not found")
		}

		return errors.Wrap(err, "failed to delete region")
	}

	return nil
}

// ListOperationLogs returns the tenant's newest audit records.
func (srv *adminService) ListOperationLogs(ctx context.Context, claims *service.Claims) ([]*entity.OperationLog, error) {
	authorized, _, err := srv.requireAdmin(ctx, claims)
	if err != nil {
		return nil, err
	}

	logs, err := srv.logRepo.ListRecentLogs(ctx, authorized.Scope, operationLogLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list operation logs")
	}

	return logs, nil
}

// validRoleCodes rejects empty or unknown role sets.
func validRoleCodes(codes []entity.RoleCode) (entity.RoleCodes, error) {
	if len(codes) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "at least one role is required")
	}
	for _, code := range codes {
		if !code.IsValid() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown role code")
		}
	}

	return entity.RoleCodes(codes), nil
}

// resolveRoleIDs maps role codes to their stored IDs.
func resolveRoleIDs(ctx context.Context, roleRepo repository.RoleRepository, codes entity.RoleCodes) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(codes))
	for _, code := range codes {
		role, err := roleRepo.FindRoleByCode(ctx, code)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve role %q", code)
		}
		ids = append(ids, role.ID)
	}

	return ids, nil
}
