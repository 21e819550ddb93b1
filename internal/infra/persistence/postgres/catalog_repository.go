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

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// UpsertCategory inserts the category or updates sort order by (tenant, name).
func (repo *catalogRepository) UpsertCategory(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"sort_order", "updated_at"}),
		}).
		Create(categoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert category")
	}

	category.ID = categoryM.ID

	return nil
}

// ListCategories retrieves the scope's categories ordered by sort order.
func (repo *catalogRepository) ListCategories(ctx context.Context, scope entity.TenantScope) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := scoped(repo.db.WithContext(ctx), scope).
		Order("sort_order ASC, name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// DeleteCategory removes a category within the scope. The caller is
// responsible for checking item references first.
func (repo *catalogRepository) DeleteCategory(ctx context.Context, scope entity.TenantScope, id uuid.UUID) error {
	result := scoped(repo.db.WithContext(ctx), scope).
		Where("id = ?", id).
		Delete(&model.CategoryModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete category")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// CountItemsInCategory returns how many items reference the category.
func (repo *catalogRepository) CountItemsInCategory(ctx context.Context, scope entity.TenantScope, categoryID uuid.UUID) (int64, error) {
	var count int64

	if err := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.ItemModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count items in category")
	}

	return count, nil
}

// UpsertItem inserts the item or updates its fields by (tenant, name).
func (repo *catalogRepository) UpsertItem(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).
		Omit("Category").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"category_id", "default_unit", "is_active", "updated_at"}),
		}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert item")
	}

	item.ID = itemM.ID

	return nil
}

// FindItemByID retrieves an item within the scope.
func (repo *catalogRepository) FindItemByID(ctx context.Context, scope entity.TenantScope, id uuid.UUID) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := scoped(repo.db.WithContext(ctx), scope).
		Preload("Category").
		Where("id = ?", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by ID")
	}

	return toItemDomain(&itemM), nil
}

// ListItems retrieves the scope's items ordered by name, with category
// names loaded.
func (repo *catalogRepository) ListItems(ctx context.Context, scope entity.TenantScope, activeOnly bool) ([]*entity.Item, error) {
	var itemModels []*model.ItemModel

	query := scoped(repo.db.WithContext(ctx), scope).
		Preload("Category").
		Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	items := make([]*entity.Item, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toItemDomain(itemM))
	}

	return items, nil
}

// SetItemActive toggles whether the item appears in pickers.
func (repo *catalogRepository) SetItemActive(ctx context.Context, scope entity.TenantScope, id uuid.UUID, active bool) error {
	result := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.ItemModel{}).
		Where("id = ?", id).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update item active flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// UpsertVendor inserts the vendor or updates its fields by (tenant, name).
func (repo *catalogRepository) UpsertVendor(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"phone", "note", "is_active", "updated_at"}),
		}).
		Create(vendorM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert vendor")
	}

	vendor.ID = vendorM.ID

	return nil
}

// ListVendors retrieves the scope's vendors ordered by name.
func (repo *catalogRepository) ListVendors(ctx context.Context, scope entity.TenantScope, activeOnly bool) ([]*entity.Vendor, error) {
	var vendorModels []*model.VendorModel

	query := scoped(repo.db.WithContext(ctx), scope).
		Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	vendors := make([]*entity.Vendor, 0, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors = append(vendors, toVendorDomain(vendorM))
	}

	return vendors, nil
}

// SetVendorActive toggles whether the vendor appears in pickers.
func (repo *catalogRepository) SetVendorActive(ctx context.Context, scope entity.TenantScope, id uuid.UUID, active bool) error {
	result := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.VendorModel{}).
		Where("id = ?", id).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vendor active flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Name:      data.Name,
		SortOrder: data.SortOrder,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCategoryDomain converts a domain Category entity to a GORM CategoryModel.
func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Name:      data.Name,
		SortOrder: data.SortOrder,
	}
}

// toItemDomain converts a GORM ItemModel to a domain Item entity.
func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	item := &entity.Item{
		ID:          data.ID,
		TenantID:    data.TenantID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		DefaultUnit: data.DefaultUnit,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Category != nil {
		item.CategoryName = data.Category.Name
	}

	return item
}

// fromItemDomain converts a domain Item entity to a GORM ItemModel.
func fromItemDomain(data *entity.Item) *model.ItemModel {
	if data == nil {
		return nil
	}

	return &model.ItemModel{
		ID:          data.ID,
		TenantID:    data.TenantID,
		CategoryID:  data.CategoryID,
		Name:        data.Name,
		DefaultUnit: data.DefaultUnit,
		IsActive:    data.IsActive,
	}
}

// toVendorDomain converts a GORM VendorModel to a domain Vendor entity.
func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	return &entity.Vendor{
		ID:        data.ID,
		TenantID:  data.TenantID,
		Name:      data.Name,
		Phone:     data.Phone,
		Note:      data.Note,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromVendorDomain converts a domain Vendor entity to a GORM VendorModel.
func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	return &model.VendorModel{
		ID:       data.ID,
		TenantID: data.TenantID,
		Name:     data.Name,
		Phone:    data.Phone,
		Note:     data.Note,
		IsActive: data.IsActive,
	}
}
