package postgres

import (
	"context"

	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	"stallbook/internal/domain/repository"
	"stallbook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tenantRepository implements the repository.TenantRepository interface.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// CreateTenant persists a new tenant.
func (repo *tenantRepository) CreateTenant(ctx context.Context, tenant *entity.Tenant) error {
	tenantM := fromTenantDomain(tenant)

	if err := repo.db.WithContext(ctx).Create(tenantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTenantCode
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required tenant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tenant")
	}

	// Update the entity with generated values
	tenant.ID = tenantM.ID
	tenant.CreatedAt = tenantM.CreatedAt
	tenant.UpdatedAt = tenantM.UpdatedAt

	return nil
}

// FindTenantByID retrieves a tenant by its unique ID.
func (repo *tenantRepository) FindTenantByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by ID")
	}

	return toTenantDomain(&tenantM), nil
}

// FindTenantByCode retrieves a tenant by its unique code.
func (repo *tenantRepository) FindTenantByCode(ctx context.Context, code string) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by code")
	}

	return toTenantDomain(&tenantM), nil
}

// ListTenants retrieves all tenants, newest first.
func (repo *tenantRepository) ListTenants(ctx context.Context) ([]*entity.Tenant, error) {
	var tenantModels []*model.TenantModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&tenantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tenants")
	}

	tenants := make([]*entity.Tenant, 0, len(tenantModels))
	for _, tenantM := range tenantModels {
		tenants = append(tenants, toTenantDomain(tenantM))
	}

	return tenants, nil
}

// UpdateTenant modifies the tenant's name.
func (repo *tenantRepository) UpdateTenant(ctx context.Context, tenant *entity.Tenant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TenantModel{}).
		Where("id = ?", tenant.ID).
		Update("name", tenant.Name)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update tenant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTenantNotFound
	}

	return nil
}

// UpdateTenantStatus switches the tenant between active and suspended.
func (repo *tenantRepository) UpdateTenantStatus(ctx context.Context, id uuid.UUID, status entity.TenantStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TenantModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update tenant status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTenantNotFound
	}

	return nil
}

// CountTenants returns the total number of tenants.
func (repo *tenantRepository) CountTenants(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TenantModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count tenants")
	}

	return count, nil
}

// --- Mapper Functions ---

// toTenantDomain converts a GORM TenantModel to a domain Tenant entity.
func toTenantDomain(data *model.TenantModel) *entity.Tenant {
	if data == nil {
		return nil
	}

	return &entity.Tenant{
		ID:        data.ID,
		Code:      data.Code,
		Name:      data.Name,
		Status:    entity.TenantStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTenantDomain converts a domain Tenant entity to a GORM TenantModel.
func fromTenantDomain(data *entity.Tenant) *model.TenantModel {
	if data == nil {
		return nil
	}

	return &model.TenantModel{
		ID:     data.ID,
		Code:   data.Code,
		Name:   data.Name,
		Status: string(data.Status),
	}
}
