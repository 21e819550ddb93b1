package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	deliverycontext "stallbook/internal/delivery/context"
	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	"stallbook/internal/domain/repository"
	"stallbook/internal/domain/service"
	"stallbook/internal/domain/unit"
	"stallbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tenantService implements the TenantUsecase interface.
type tenantService struct {
	txManager   repository.TransactionManager
	tenantRepo  repository.TenantRepository
	userRepo    repository.UserRepository
	entryRepo   repository.EntryRepository
	revenueRepo repository.RevenueRepository
	hasher      service.PasswordHasher
	access      usecase.AccessUsecase
	logger      *slog.Logger
}

// TenantServiceParams holds dependencies for TenantService, injected by Fx.
type TenantServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	TenantRepo  repository.TenantRepository
	UserRepo    repository.UserRepository
	EntryRepo   repository.EntryRepository
	RevenueRepo repository.RevenueRepository
	Hasher      service.PasswordHasher
	Access      usecase.AccessUsecase
	Logger      *slog.Logger
}

// NewTenantService is the constructor for tenantService.
func NewTenantService(params TenantServiceParams) usecase.TenantUsecase {
	return &tenantService{
		txManager:   params.TxManager,
		tenantRepo:  params.TenantRepo,
		userRepo:    params.UserRepo,
		entryRepo:   params.EntryRepo,
		revenueRepo: params.RevenueRepo,
		hasher:      params.Hasher,
		access:      params.Access,
		logger:      params.Logger,
	}
}

func (srv *tenantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ProvisionTenant creates the tenant, its first admin user and the
// default vocabularies in one transaction. A failure at any step leaves
// nothing behind.
func (srv *tenantService) ProvisionTenant(ctx context.Context, claims *service.Claims, input usecase.ProvisionTenantInput) (*usecase.ProvisionTenantOutput, error) {
	authorized, err := srv.access.RequireSuperAdmin(ctx, claims)
	if err != nil {
		return nil, err
	}

	if err := validateProvisionInput(&input); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.AdminPassword)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash admin password")
	}

	tenant := &entity.Tenant{
		ID:     uuid.New(),
		Code:   input.Code,
		Name:   input.Name,
		Status: entity.TenantActive,
	}
	admin := &entity.User{
		ID:           uuid.New(),
		Username:     input.AdminUsername,
		PasswordHash: hash,
		RealName:     input.AdminRealName,
		IsActive:     true,
		TenantID:     &tenant.ID,
		Roles:        entity.RoleCodes{entity.RoleAdmin},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewTenantRepository().CreateTenant(ctx, tenant); err != nil {
			if errors.Is(err, repository.ErrDuplicateTenantCode) {
				return errors.Wrap(domainerrors.ErrTenantCodeTaken, "tenant code taken")
			}

			return errors.Wrap(err, "failed to create tenant")
		}

		adminRole, err := repoFactory.NewRoleRepository().FindRoleByCode(ctx, entity.RoleAdmin)
		if err != nil {
			return errors.Wrap(err, "failed to resolve admin role")
		}

		if err := repoFactory.NewUserRepository().CreateUser(ctx, admin, []uuid.UUID{adminRole.ID}); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return errors.Wrap(domainerrors.ErrUsernameTaken, "admin username taken")
			}

			return errors.Wrap(err, "failed to create tenant admin")
		}

		dictRepo := repoFactory.NewDictionaryRepository()
		for _, d := range defaultDictionaries(tenant.ID) {
			if err := dictRepo.UpsertDictionary(ctx, d); err != nil {
				return errors.Wrap(err, "failed to seed tenant vocabulary")
			}
		}

		return appendLog(ctx, repoFactory, authorized, "tenant.provision", "tenant", tenant.ID.String(),
			input.Code+" / "+input.AdminUsername)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to provision tenant", slog.String("code", input.Code), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute tenant provisioning transaction")
	}

	srv.log(ctx).Info("Tenant provisioned", slog.Any("tenantID", tenant.ID), slog.String("code", tenant.Code))

	return &usecase.ProvisionTenantOutput{Tenant: tenant, Admin: admin}, nil
}

// ListTenants retrieves all tenants, newest first.
func (srv *tenantService) ListTenants(ctx context.Context, claims *service.Claims) ([]*entity.Tenant, error) {
	if _, err := srv.access.RequireSuperAdmin(ctx, claims); err != nil {
		return nil, err
	}

	tenants, err := srv.tenantRepo.ListTenants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tenants")
	}

	return tenants, nil
}

// RenameTenant changes a tenant's display name.
func (srv *tenantService) RenameTenant(ctx context.Context, claims *service.Claims, id uuid.UUID, name string) error {
	if _, err := srv.access.RequireSuperAdmin(ctx, claims); err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "tenant name is required")
	}

	if err := srv.tenantRepo.UpdateTenant(ctx, &entity.Tenant{ID: id, Name: name}); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return errors.Wrap(domainerrors.ErrTenantNotFound, "tenant not found")
		}

		return errors.Wrap(err, "failed to rename tenant")
	}

	return nil
}

// SetTenantStatus switches a tenant between active and suspended.
func (srv *tenantService) SetTenantStatus(ctx context.Context, claims *service.Claims, id uuid.UUID, status entity.TenantStatus) error {
	if _, err := srv.access.RequireSuperAdmin(ctx, claims); err != nil {
		return err
	}
	if !status.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed, "unknown tenant status")
	}

	if err := srv.tenantRepo.UpdateTenantStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return errors.Wrap(domainerrors.ErrTenantNotFound, "tenant not found")
		}

		return errors.Wrap(err, "failed to update tenant status")
	}
	srv.log(ctx).Info("Tenant status updated", slog.Any("tenantID", id), slog.String("status", string(status)))

	return nil
}

// Stats summarizes platform-wide usage for the super admin dashboard.
func (srv *tenantService) Stats(ctx context.Context, claims *service.Claims) (*usecase.PlatformStats, error) {
	if _, err := srv.access.RequireSuperAdmin(ctx, claims); err != nil {
		return nil, err
	}

	all := entity.ScopeAll()

	tenants, err := srv.tenantRepo.CountTenants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count tenants")
	}
	users, err := srv.userRepo.CountUsers(ctx, all)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	entries, err := srv.entryRepo.CountEntries(ctx, all)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count entries")
	}
	revenues, err := srv.revenueRepo.CountRevenues(ctx, all)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count revenues")
	}

	return &usecase.PlatformStats{
		TenantCount:  tenants,
		UserCount:    users,
		EntryCount:   entries,
		RevenueCount: revenues,
	}, nil
}

func validateProvisionInput(input *usecase.ProvisionTenantInput) error {
	input.Code = strings.TrimSpace(input.Code)
	input.Name = strings.TrimSpace(input.Name)
	input.AdminUsername = strings.TrimSpace(input.AdminUsername)
	input.AdminRealName = strings.TrimSpace(input.AdminRealName)

	if input.Code == "" || input.Name == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "tenant code and name are required")
	}
	if input.AdminUsername == "" || input.AdminPassword == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "admin username and password are required")
	}

	return nil
}

// defaultDictionaries builds the unit and expense type vocabularies a
// fresh tenant starts with.
func defaultDictionaries(tenantID uuid.UUID) []*entity.Dictionary {
	var dicts []*entity.Dictionary

	for i, def := range unit.Defaults() {
		meta, _ := json.Marshal(unit.Meta{ToKg: nonZero(def.ToKg), IsWeight: &def.IsWeight})
		dicts = append(dicts, &entity.Dictionary{
			ID:        uuid.New(),
			TenantID:  tenantID,
			Category:  entity.DictionaryUnit,
			Code:      def.Code,
			Label:     def.Name,
			Meta:      meta,
			SortOrder: i + 1,
			IsActive:  true,
		})
	}

	expenseTypes := []struct{ code, label string }{
		{"rent", "租金"},
		{"utilities", "水電費"},
		{"gas", "瓦斯"},
		{"misc", "雜支"},
	}
	for i, e := range expenseTypes {
		dicts = append(dicts, &entity.Dictionary{
			ID:        uuid.New(),
			TenantID:  tenantID,
			Category:  entity.DictionaryExpenseType,
			Code:      e.code,
			Label:     e.label,
			SortOrder: i + 1,
			IsActive:  true,
		})
	}

	return dicts
}

func nonZero(v float64) *float64 {
	if v == 0 {
		return nil
	}

	return &v
}
