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
)

// entryRepository implements the repository.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository is the constructor for entryRepository.
func NewEntryRepository(db *gorm.DB) repository.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// CreateEntry persists a new cost entry.
func (repo *entryRepository) CreateEntry(ctx context.Context, entry *entity.Entry) error {
	entryM := fromEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Omit("Item", "Vendor").Create(entryM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntryInvalid.WrapMessage("invalid item or vendor reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrEntryInvalid.WrapMessage("missing required entry information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create entry")
	}

	// Update the entity with generated values
	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindEntryByID retrieves an entry within the scope, with item and
// vendor names loaded.
func (repo *entryRepository) FindEntryByID(ctx context.Context, scope entity.TenantScope, id uuid.UUID) (*entity.Entry, error) {
	var entryM model.EntryModel

	if err := scoped(repo.db.WithContext(ctx), scope).
		Preload("Item").
		Preload("Vendor").
		Where("id = ?", id).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find entry by ID")
	}

	return toEntryDomain(&entryM), nil
}

// UpdateEntry replaces the mutable fields of an existing entry.
// Derived columns are written as computed by the caller; nil clears a
// previously stored value.
func (repo *entryRepository) UpdateEntry(ctx context.Context, scope entity.TenantScope, entry *entity.Entry) error {
	result := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.EntryModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"type":            string(entry.Type),
			"status":          string(entry.Status),
			"date":            entry.Date,
			"item_id":         entry.ItemID,
			"vendor_id":       entry.VendorID,
			"expense_type":    entry.ExpenseType,
			"quantity":        entry.Quantity,
			"unit":            entry.Unit,
			"price":           entry.Price,
			"standard_weight": entry.StandardWeight,
			"unit_price":      entry.UnitPrice,
			"note":            entry.Note,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// DeleteEntry removes an entry within the scope.
func (repo *entryRepository) DeleteEntry(ctx context.Context, scope entity.TenantScope, id uuid.UUID) error {
	result := scoped(repo.db.WithContext(ctx), scope).
		Where("id = ?", id).
		Delete(&model.EntryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEntryNotFound
	}

	return nil
}

// ListEntriesByDateRange retrieves entries with dates in [from, to],
// newest first, with item and vendor names loaded.
func (repo *entryRepository) ListEntriesByDateRange(ctx context.Context, scope entity.TenantScope, from, to time.Time) ([]*entity.Entry, error) {
	var entryModels []*model.EntryModel

	if err := scoped(repo.db.WithContext(ctx), scope).
		Preload("Item").
		Preload("Vendor").
		Where("date >= ? AND date <= ?", from, to).
		Order("date DESC, created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list entries by date range")
	}

	entries := make([]*entity.Entry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toEntryDomain(entryM))
	}

	return entries, nil
}

// CountEntries returns the number of entries within the scope.
func (repo *entryRepository) CountEntries(ctx context.Context, scope entity.TenantScope) (int64, error) {
	var count int64

	if err := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.EntryModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count entries")
	}

	return count, nil
}

// --- Mapper Functions ---

// toEntryDomain converts a GORM EntryModel to a domain Entry entity.
func toEntryDomain(data *model.EntryModel) *entity.Entry {
	if data == nil {
		return nil
	}

	entry := &entity.Entry{
		ID:             data.ID,
		TenantID:       data.TenantID,
		Type:           entity.EntryType(data.Type),
		Status:         entity.EntryStatus(data.Status),
		Date:           data.Date,
		ItemID:         data.ItemID,
		VendorID:       data.VendorID,
		ExpenseType:    data.ExpenseType,
		Quantity:       data.Quantity,
		Unit:           data.Unit,
		Price:          data.Price,
		StandardWeight: data.StandardWeight,
		UnitPrice:      data.UnitPrice,
		Note:           data.Note,
		CreatedBy:      data.CreatedBy,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.Item != nil {
		entry.ItemName = data.Item.Name
	}
	if data.Vendor != nil {
		entry.VendorName = data.Vendor.Name
	}

	return entry
}

// fromEntryDomain converts a domain Entry entity to a GORM EntryModel.
func fromEntryDomain(data *entity.Entry) *model.EntryModel {
	if data == nil {
		return nil
	}

	return &model.EntryModel{
		ID:             data.ID,
		TenantID:       data.TenantID,
		Type:           string(data.Type),
		Status:         string(data.Status),
		Date:           data.Date,
		ItemID:         data.ItemID,
		VendorID:       data.VendorID,
		ExpenseType:    data.ExpenseType,
		Quantity:       data.Quantity,
		Unit:           data.Unit,
		Price:          data.Price,
		StandardWeight: data.StandardWeight,
		UnitPrice:      data.UnitPrice,
		Note:           data.Note,
		CreatedBy:      data.CreatedBy,
	}
}
