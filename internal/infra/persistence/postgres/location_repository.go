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
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// UpsertLocation inserts the location or updates its fields by (tenant, name).
func (repo *locationRepository) UpsertLocation(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"region_id", "is_active", "updated_at"}),
		}).
		Create(locationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid region reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert location")
	}

	location.ID = locationM.ID

	return nil
}

// FindLocationByID retrieves a location within the scope.
func (repo *locationRepository) FindLocationByID(ctx context.Context, scope entity.TenantScope, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := scoped(repo.db.WithContext(ctx), scope).
		Where("id = ?", id).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// ListLocations retrieves the scope's locations ordered by name.
func (repo *locationRepository) ListLocations(ctx context.Context, scope entity.TenantScope, activeOnly bool) ([]*entity.Location, error) {
	var locationModels []*model.LocationModel

	query := scoped(repo.db.WithContext(ctx), scope).
		Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	locations := make([]*entity.Location, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// SetLocationActive toggles whether the location appears in pickers.
func (repo *locationRepository) SetLocationActive(ctx context.Context, scope entity.TenantScope, id uuid.UUID, active bool) error {
	result := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.LocationModel{}).
		Where("id = ?", id).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update location active flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:        data.ID,
		TenantID:  data.TenantID,
		RegionID:  data.RegionID,
		Name:      data.Name,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:       data.ID,
		TenantID: data.TenantID,
		RegionID: data.RegionID,
		Name:     data.Name,
		IsActive: data.IsActive,
	}
}
