package postgres

import (
	"context"

	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	"stallbook/internal/domain/repository"
	"stallbook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dictionaryRepository implements the repository.DictionaryRepository interface.
type dictionaryRepository struct {
	db *gorm.DB
}

// NewDictionaryRepository is the constructor for dictionaryRepository.
func NewDictionaryRepository(db *gorm.DB) repository.DictionaryRepository {
	return &dictionaryRepository{
		db: db,
	}
}

// UpsertDictionary inserts the entry or updates label, meta and sort
// order by (tenant, category, code).
func (repo *dictionaryRepository) UpsertDictionary(ctx context.Context, entry *entity.Dictionary) error {
	dictM := fromDictionaryDomain(entry)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "category"}, {Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"label", "meta", "sort_order", "is_active", "updated_at"}),
		}).
		Create(dictM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert dictionary entry")
	}

	entry.ID = dictM.ID

	return nil
}

// FindDictionary retrieves one entry by category and code within the scope.
func (repo *dictionaryRepository) FindDictionary(ctx context.Context, scope entity.TenantScope, category entity.DictionaryCategory, code string) (*entity.Dictionary, error) {
	var dictM model.DictionaryModel

	if err := scoped(repo.db.WithContext(ctx), scope).
		Where("category = ? AND code = ?", string(category), code).
		First(&dictM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDictionaryNotFound
		}

		return nil, errors.Wrap(err, "failed to find dictionary entry")
	}

	return toDictionaryDomain(&dictM), nil
}

// ListDictionaries retrieves the scope's entries for one category
// ordered by sort order.
func (repo *dictionaryRepository) ListDictionaries(ctx context.Context, scope entity.TenantScope, category entity.DictionaryCategory) ([]*entity.Dictionary, error) {
	var dictModels []*model.DictionaryModel

	if err := scoped(repo.db.WithContext(ctx), scope).
		Where("category = ?", string(category)).
		Order("sort_order ASC, code ASC").
		Find(&dictModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list dictionary entries")
	}

	dicts := make([]*entity.Dictionary, 0, len(dictModels))
	for _, dictM := range dictModels {
		dicts = append(dicts, toDictionaryDomain(dictM))
	}

	return dicts, nil
}

// SetDictionaryActive toggles whether the entry appears in pickers.
func (repo *dictionaryRepository) SetDictionaryActive(ctx context.Context, scope entity.TenantScope, id uuid.UUID, active bool) error {
	result := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.DictionaryModel{}).
		Where("id = ?", id).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update dictionary active flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDictionaryNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDictionaryDomain converts a GORM DictionaryModel to a domain Dictionary entity.
func toDictionaryDomain(data *model.DictionaryModel) *entity.Dictionary {
	if data == nil {
		return nil
	}

	return &entity.Dictionary{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Category:  entity.DictionaryCategory(data.Category),
		Code:      data.Code,
		Label:     data.Label,
		Meta:      []byte(data.Meta),
		SortOrder: data.SortOrder,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDictionaryDomain converts a domain Dictionary entity to a GORM DictionaryModel.
func fromDictionaryDomain(data *entity.Dictionary) *model.DictionaryModel {
	if data == nil {
		return nil
	}

	return &model.DictionaryModel{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Category:  string(data.Category),
		Code:      data.Code,
		Label:     data.Label,
		Meta:      datatypes.JSON(data.Meta),
		SortOrder: data.SortOrder,
		IsActive:  data.IsActive,
	}
}
