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

// orgRepository implements the repository.OrgRepository interface.
type orgRepository struct {
	db *gorm.DB
}

// NewOrgRepository is the constructor for orgRepository.
func NewOrgRepository(db *gorm.DB) repository.OrgRepository {
	return &orgRepository{
		db: db,
	}
}

// CreateDepartment persists a new department.
func (repo *orgRepository) CreateDepartment(ctx context.Context, department *entity.Department) error {
	departmentM := fromDepartmentDomain(department)

	if err := repo.db.WithContext(ctx).Create(departmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("department name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create department")
	}

	department.ID = departmentM.ID
	department.CreatedAt = departmentM.CreatedAt
	department.UpdatedAt = departmentM.UpdatedAt

	return nil
}

// ListDepartments retrieves the scope's departments ordered by name.
func (repo *orgRepository) ListDepartments(ctx context.Context, scope entity.TenantScope) ([]*entity.Department, error) {
	var departmentModels []*model.DepartmentModel

	if err := scoped(repo.db.WithContext(ctx), scope).
		Order("name ASC").
		Find(&departmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	departments := make([]*entity.Department, 0, len(departmentModels))
	for _, departmentM := range departmentModels {
		departments = append(departments, toDepartmentDomain(departmentM))
	}

	return departments, nil
}

// DeleteDepartment removes a department within the scope. Assigned
// users are detached, not deleted.
func (repo *orgRepository) DeleteDepartment(ctx context.Context, scope entity.TenantScope, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("department_id = ?", id).
		Update("department_id", nil).Error; err != nil {
		return errors.Wrap(err, "failed to detach users from department")
	}

	result := scoped(repo.db.WithContext(ctx), scope).
		Where("id = ?", id).
		Delete(&model.DepartmentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete department")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDepartmentNotFound
	}

	return nil
}

// CreateRegion persists a new region.
func (repo *orgRepository) CreateRegion(ctx context.Context, region *entity.Region) error {
	regionM := fromRegionDomain(region)

	if err := repo.db.WithContext(ctx).Create(regionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("region name already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create region")
	}

	region.ID = regionM.ID
	region.CreatedAt = regionM.CreatedAt
	region.UpdatedAt = regionM.UpdatedAt

	return nil
}

// ListRegions retrieves the scope's regions ordered by name.
func (repo *orgRepository) ListRegions(ctx context.Context, scope entity.TenantScope) ([]*entity.Region, error) {
	var regionModels []*model.RegionModel

	if err := scoped(repo.db.WithContext(ctx), scope).
		Order("name ASC").
		Find(&regionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	regions := make([]*entity.Region, 0, len(regionModels))
	for _, regionM := range regionModels {
		regions = append(regions, toRegionDomain(regionM))
	}

	return regions, nil
}

// CountRegionLocations returns how many selling locations reference
// the region within the scope.
func (repo *orgRepository) CountRegionLocations(ctx context.Context, scope entity.TenantScope, regionID uuid.UUID) (int64, error) {
	var count int64

	if err := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.LocationModel{}).
		Where("region_id = ?", regionID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count region locations")
	}

	return count, nil
}

// DeleteRegion removes a region within the scope.
func (repo *orgRepository) DeleteRegion(ctx context.Context, scope entity.TenantScope, id uuid.UUID) error {
	result := scoped(repo.db.WithContext(ctx), scope).
		Where("id = ?", id).
		Delete(&model.RegionModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete region")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRegionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDepartmentDomain converts a GORM DepartmentModel to a domain Department entity.
func toDepartmentDomain(data *model.DepartmentModel) *entity.Department {
	if data == nil {
		return nil
	}

	return &entity.Department{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDepartmentDomain converts a domain Department entity to a GORM DepartmentModel.
func fromDepartmentDomain(data *entity.Department) *model.DepartmentModel {
	if data == nil {
		return nil
	}

	return &model.DepartmentModel{
		ID:       data.ID,
		TenantID: data.TenantID,
		Name:     data.Name,
	}
}

// toRegionDomain converts a GORM RegionModel to a domain Region entity.
func toRegionDomain(data *model.RegionModel) *entity.Region {
	if data == nil {
		return nil
	}

	return &entity.Region{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRegionDomain converts a domain Region entity to a GORM RegionModel.
func fromRegionDomain(data *entity.Region) *model.RegionModel {
	if data == nil {
		return nil
	}

	return &model.RegionModel{
		ID:       data.ID,
		TenantID: data.TenantID,
		Name:     data.Name,
	}
}
