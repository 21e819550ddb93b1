package postgres

import (
	"context"
	"time"

	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	"stallbook/internal/domain/repository"
	"stallbook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// revenueRepository implements the repository.RevenueRepository interface.
type revenueRepository struct {
	db *gorm.DB
}

// NewRevenueRepository is the constructor for revenueRepository.
func NewRevenueRepository(db *gorm.DB) repository.RevenueRepository {
	return &revenueRepository{
		db: db,
	}
}

// UpsertRevenue inserts the record, or replaces amount, day-off flag
// and note when a record for the same (location, date) already exists.
// The unique index on (location_id, date) makes concurrent writes for
// the same day converge on one row.
func (repo *revenueRepository) UpsertRevenue(ctx context.Context, revenue *entity.Revenue) error {
	revenueM := fromRevenueDomain(revenue)

	if err := repo.db.WithContext(ctx).
		Omit("Location").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "location_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount", "is_day_off", "note", "created_by", "updated_at"}),
		}).
		Create(revenueM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRevenueInvalid.WrapMessage("invalid location reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRevenueInvalid.WrapMessage("missing required revenue information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert revenue")
	}

	// Update the entity with generated values
	revenue.ID = revenueM.ID
	revenue.CreatedAt = revenueM.CreatedAt
	revenue.UpdatedAt = revenueM.UpdatedAt

	return nil
}

// FindRevenueByID retrieves a revenue record within the scope, with
// the location name loaded.
func (repo *revenueRepository) FindRevenueByID(ctx context.Context, scope entity.TenantScope, id uuid.UUID) (*entity.Revenue, error) {
	var revenueM model.RevenueModel

	if err := scoped(repo.db.WithContext(ctx), scope).
		Preload("Location").
		Where("id = ?", id).
		First(&revenueM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRevenueNotFound
		}

		return nil, errors.Wrap(err, "failed to find revenue by ID")
	}

	return toRevenueDomain(&revenueM), nil
}

// UpdateRevenue replaces the mutable fields of an existing record.
func (repo *revenueRepository) UpdateRevenue(ctx context.Context, scope entity.TenantScope, revenue *entity.Revenue) error {
	result := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.RevenueModel{}).
		Where("id = ?", revenue.ID).
		Updates(map[string]any{
			"location_id": revenue.LocationID,
			"date":        revenue.Date,
			"amount":      revenue.Amount,
			"is_day_off":  revenue.IsDayOff,
			"note":        revenue.Note,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrRevenueInvalid.WrapMessage("another record already covers this location and date")
		}

		return errors.Wrap(result.Error, "failed to update revenue")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRevenueNotFound
	}

	return nil
}

// DeleteRevenue removes a revenue record within the scope.
func (repo *revenueRepository) DeleteRevenue(ctx context.Context, scope entity.TenantScope, id uuid.UUID) error {
	result := scoped(repo.db.WithContext(ctx), scope).
		Where("id = ?", id).
		Delete(&model.RevenueModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete revenue")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRevenueNotFound
	}

	return nil
}

// ListRevenuesByDateRange retrieves records with dates in [from, to],
// newest first, with location names loaded.
func (repo *revenueRepository) ListRevenuesByDateRange(ctx context.Context, scope entity.TenantScope, from, to time.Time) ([]*entity.Revenue, error) {
	var revenueModels []*model.RevenueModel

	if err := scoped(repo.db.WithContext(ctx), scope).
		Preload("Location").
		Where("date >= ? AND date <= ?", from, to).
		Order("date DESC, created_at DESC").
		Find(&revenueModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list revenues by date range")
	}

	revenues := make([]*entity.Revenue, 0, len(revenueModels))
	for _, revenueM := range revenueModels {
		revenues = append(revenues, toRevenueDomain(revenueM))
	}

	return revenues, nil
}

// CountRevenues returns the number of records within the scope.
func (repo *revenueRepository) CountRevenues(ctx context.Context, scope entity.TenantScope) (int64, error) {
	var count int64

	if err := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.RevenueModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count revenues")
	}

	return count, nil
}

// --- Mapper Functions ---

// toRevenueDomain converts a GORM RevenueModel to a domain Revenue entity.
func toRevenueDomain(data *model.RevenueModel) *entity.Revenue {
	if data == nil {
		return nil
	}

	revenue := &entity.Revenue{
		ID:         data.ID,
		TenantID:   data.TenantID,
		LocationID: data.LocationID,
		Date:       data.Date,
		Amount:     data.Amount,
		IsDayOff:   data.IsDayOff,
		Note:       data.Note,
		CreatedBy:  data.CreatedBy,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}

	if data.Location != nil {
		revenue.LocationName = data.Location.Name
	}

	return revenue
}

// fromRevenueDomain converts a domain Revenue entity to a GORM RevenueModel.
func fromRevenueDomain(data *entity.Revenue) *model.RevenueModel {
	if data == nil {
		return nil
	}

	return &model.RevenueModel{
		ID:         data.ID,
		TenantID:   data.TenantID,
		LocationID: data.LocationID,
		Date:       data.Date,
		Amount:     data.Amount,
		IsDayOff:   data.IsDayOff,
		Note:       data.Note,
		CreatedBy:  data.CreatedBy,
	}
}
