package impl

import (
	"context"
	"fmt"
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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo  repository.CatalogRepository
	dictRepo     repository.DictionaryRepository
	locationRepo repository.LocationRepository
	logRepo      repository.OperationLogRepository
	access       usecase.AccessUsecase
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo  repository.CatalogRepository
	DictRepo     repository.DictionaryRepository
	LocationRepo repository.LocationRepository
	LogRepo      repository.OperationLogRepository
	Access       usecase.AccessUsecase
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo:  params.CatalogRepo,
		dictRepo:     params.DictRepo,
		locationRepo: params.LocationRepo,
		logRepo:      params.LogRepo,
		access:       params.Access,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireRank authorizes a catalog write at the given role rank and
// resolves the tenant ID. Item, vendor, and location upserts take the
// write role; categories, toggles, and the unit vocabulary shape what
// everyone else records, so those take admin.
func (srv *catalogService) requireRank(ctx context.Context, claims *service.Claims, role entity.RoleCode) (*usecase.Authorized, uuid.UUID, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, role)
	if err != nil {
		return nil, uuid.Nil, err
	}
	tenantID, ok := authorized.Scope.Tenant()
	if !ok {
		return nil, uuid.Nil, errors.Wrap(domainerrors.ErrPermissionDenied, "catalog writes need a tenant scope")
	}

	return authorized, tenantID, nil
}

// SaveCategory inserts or updates a category keyed on its name.
func (srv *catalogService) SaveCategory(ctx context.Context, claims *service.Claims, input usecase.CategoryInput) (*entity.Category, error) {
	authorized, tenantID, err := srv.requireRank(ctx, claims, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "category name is required")
	}

	category := &entity.Category{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Name:      name,
		SortOrder: input.SortOrder,
	}
	if err := srv.catalogRepo.UpsertCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to save category")
	}
	srv.audit(ctx, authorized, "category.save", "category", category.ID.String(), name)

	return category, nil
}

// DeleteCategory removes an empty category. Categories still holding
// items are protected.
func (srv *catalogService) DeleteCategory(ctx context.Context, claims *service.Claims, id uuid.UUID) error {
	authorized, _, err := srv.requireRank(ctx, claims, entity.RoleAdmin)
	if err != nil {
		return err
	}

	count, err := srv.catalogRepo.CountItemsInCategory(ctx, authorized.Scope, id)
	if err != nil {
		return errors.Wrap(err, "failed to count items in category")
	}
	if count > 0 {
		return errors.Wrap(domainerrors.ErrCategoryInUse, "category still has items")
	}

	if err := srv.catalogRepo.DeleteCategory(ctx, authorized.Scope, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(domainerrors.ErrRecordNotFound, "category not found")
		}

		return errors.Wrap(err, "failed to delete category")
	}
	srv.audit(ctx, authorized, "category.delete", "category", id.String(), "")

	return nil
}

// ListCategories retrieves the scope's categories ordered by sort order.
func (srv *catalogService) ListCategories(ctx context.Context, claims *service.Claims) ([]*entity.Category, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleRead)
	if err != nil {
		return nil, err
	}

	categories, err := srv.catalogRepo.ListCategories(ctx, authorized.Scope)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// SaveItem inserts or updates an item keyed on its name.
func (srv *catalogService) SaveItem(ctx context.Context, claims *service.Claims, input usecase.ItemInput) (*entity.Item, error) {
	authorized, tenantID, err := srv.requireRank(ctx, claims, entity.RoleWrite)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "item name is required")
	}

	item := &entity.Item{
		ID:          uuid.New(),
		TenantID:    tenantID,
		CategoryID:  input.CategoryID,
		Name:        name,
		DefaultUnit: input.DefaultUnit,
		IsActive:    true,
	}
	if err := srv.catalogRepo.UpsertItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to save item")
	}
	srv.audit(ctx, authorized, "item.save", "item", item.ID.String(), name)

	return item, nil
}

// SetItemActive toggles whether the item appears in pickers. Historical
// entries keep referencing deactivated items.
func (srv *catalogService) SetItemActive(ctx context.Context, claims *service.Claims, id uuid.UUID, active bool) error {
	authorized, _, err := srv.requireRank(ctx, claims, entity.RoleAdmin)
	if err != nil {
		return err
	}

	if err := srv.catalogRepo.SetItemActive(ctx, authorized.Scope, id, active); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return errors.Wrap(domainerrors.ErrRecordNotFound, "item not found")
		}

		return errors.Wrap(err, "failed to toggle item")
	}
	srv.audit(ctx, authorized, "item.toggle", "item", id.String(), "")

	return nil
}

// ListItems retrieves the scope's items ordered by name.
func (srv *catalogService) ListItems(ctx context.Context, claims *service.Claims, activeOnly bool) ([]*entity.Item, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleRead)
	if err != nil {
		return nil, err
	}

	items, err := srv.catalogRepo.ListItems(ctx, authorized.Scope, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return items, nil
}

// SaveVendor inserts or updates a vendor keyed on its name.
func (srv *catalogService) SaveVendor(ctx context.Context, claims *service.Claims, input usecase.VendorInput) (*entity.Vendor, error) {
	authorized, tenantID, err := srv.requireRank(ctx, claims, entity.RoleWrite)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "vendor name is required")
	}

	vendor := &entity.Vendor{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     name,
		Phone:    input.Phone,
		Note:     input.Note,
		IsActive: true,
	}
	if err := srv.catalogRepo.UpsertVendor(ctx, vendor); err != nil {
		return nil, errors.Wrap(err, "failed to save vendor")
	}
	srv.audit(ctx, authorized, "vendor.save", "vendor", vendor.ID.String(), name)

	return vendor, nil
}

// SetVendorActive toggles whether the vendor appears in pickers.
func (srv *catalogService) SetVendorActive(ctx context.Context, claims *service.Claims, id uuid.UUID, active bool) error {
	authorized, _, err := srv.requireRank(ctx, claims, entity.RoleAdmin)
	if err != nil {
		return err
	}

	if err := srv.catalogRepo.SetVendorActive(ctx, authorized.Scope, id, active); err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return errors.Wrap(domainerrors.ErrRecordNotFound, "vendor not found")
		}

		return errors.Wrap(err, "failed to toggle vendor")
	}
	srv.audit(ctx, authorized, "vendor.toggle", "vendor", id.String(), "")

	return nil
}

// ListVendors retrieves the scope's vendors ordered by name.
func (srv *catalogService) ListVendors(ctx context.Context, claims *service.Claims, activeOnly bool) ([]*entity.Vendor, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleRead)
	if err != nil {
		return nil, err
	}

	vendors, err := srv.catalogRepo.ListVendors(ctx, authorized.Scope, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendors")
	}

	return vendors, nil
}

// SaveLocation inserts or updates a selling location keyed on its name.
func (srv *catalogService) SaveLocation(ctx context.Context, claims *service.Claims, input usecase.LocationInput) (*entity.Location, error) {
	authorized, tenantID, err := srv.requireRank(ctx, claims, entity.RoleWrite)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "location name is required")
	}

	location := &entity.Location{
		ID:       uuid.New(),
		TenantID: tenantID,
		RegionID: input.RegionID,
		Name:     name,
		IsActive: true,
	}
	if err := srv.locationRepo.UpsertLocation(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to save location")
	}
	srv.audit(ctx, authorized, "location.save", "location", location.ID.String(), name)

	return location, nil
}

// SetLocationActive toggles whether the location appears in pickers.
func (srv *catalogService) SetLocationActive(ctx context.Context, claims *service.Claims, id uuid.UUID, active bool) error {
	authorized, _, err := srv.requireRank(ctx, claims, entity.RoleAdmin)
	if err != nil {
		return err
	}

	if err := srv.locationRepo.SetLocationActive(ctx, authorized.Scope, id, active); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return errors.Wrap(domainerrors.ErrRecordNotFound, "location not found")
		}

		return errors.Wrap(err, "failed to toggle location")
	}
	srv.audit(ctx, authorized, "location.toggle", "location", id.String(), "")

	return nil
}

// ListLocations retrieves the scope's locations ordered by name.
func (srv *catalogService) ListLocations(ctx context.Context, claims *service.Claims, activeOnly bool) ([]*entity.Location, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleRead)
	if err != nil {
		return nil, err
	}

	locations, err := srv.locationRepo.ListLocations(ctx, authorized.Scope, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return locations, nil
}

// SaveDictionary inserts or updates a vocabulary entry keyed on
// (category, code). Unit entries feed weight derivation on every
// entry write, so only admins may change them.
func (srv *catalogService) SaveDictionary(ctx context.Context, claims *service.Claims, input usecase.DictionaryInput) (*entity.Dictionary, error) {
	role := entity.RoleWrite
	if input.Category == entity.DictionaryUnit {
		role = entity.RoleAdmin
	}
	authorized, tenantID, err := srv.requireRank(ctx, claims, role)
	if err != nil {
		return nil, err
	}

	if !input.Category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrDictionaryInvalid, "unknown dictionary category")
	}
	if input.Category == entity.DictionaryUnit {
		meta := unit.ParseMeta(input.Meta)
		if meta.IsWeight != nil && *meta.IsWeight && (meta.ToKg == nil || *meta.ToKg <= 0) {
			return nil, errors.Wrap(domainerrors.ErrDictionaryInvalid, "weight units need a positive toKg factor")
		}
	}

	code := strings.TrimSpace(input.Code)
	if code == "" && input.Category == entity.DictionaryExpenseType {
		code, err = srv.nextExpenseCode(ctx, authorized.Scope)
		if err != nil {
			return nil, err
		}
	}
	if code == "" {
		return nil, errors.Wrap(domainerrors.ErrDictionaryInvalid, "code is required")
	}

	dict := &entity.Dictionary{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Category:  input.Category,
		Code:      code,
		Label:     strings.TrimSpace(input.Label),
		Meta:      input.Meta,
		SortOrder: input.SortOrder,
		IsActive:  true,
	}
	if err := srv.dictRepo.UpsertDictionary(ctx, dict); err != nil {
		return nil, errors.Wrap(err, "failed to save dictionary entry")
	}
	srv.audit(ctx, authorized, "dictionary.save", "dictionary", dict.ID.String(), string(input.Category)+"/"+code)

	return dict, nil
}

// nextExpenseCode generates a sequential code for an expense type
// submitted without one. Codes are cosmetic identifiers; a collision
// after deletions lands on the (category, code) upsert key and merges
// into the existing row.
func (srv *catalogService) nextExpenseCode(ctx context.Context, scope entity.TenantScope) (string, error) {
	existing, err := srv.dictRepo.ListDictionaries(ctx, scope, entity.DictionaryExpenseType)
	if err != nil {
		return "", errors.Wrap(err, "failed to count expense types")
	}

	return fmt.Sprintf("EXP%03d", len(existing)+1), nil
}

// SetDictionaryActive toggles whether the entry appears in pickers.
func (srv *catalogService) SetDictionaryActive(ctx context.Context, claims *service.Claims, id uuid.UUID, active bool) error {
	authorized, _, err := srv.requireRank(ctx, claims, entity.RoleAdmin)
	if err != nil {
		return err
	}

	if err := srv.dictRepo.SetDictionaryActive(ctx, authorized.Scope, id, active); err != nil {
		if errors.Is(err, repository.ErrDictionaryNotFound) {
			return errors.Wrap(domainerrors.ErrRecordNotFound, "dictionary entry not found")
		}

		return errors.Wrap(err, "failed to toggle dictionary entry")
	}
	srv.audit(ctx, authorized, "dictionary.toggle", "dictionary", id.String(), "")

	return nil
}

// ListDictionaries retrieves the scope's vocabulary for one category.
func (srv *catalogService) ListDictionaries(ctx context.Context, claims *service.Claims, category entity.DictionaryCategory) ([]*entity.Dictionary, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleRead)
	if err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrDictionaryInvalid, "unknown dictionary category")
	}

	dicts, err := srv.dictRepo.ListDictionaries(ctx, authorized.Scope, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dictionary entries")
	}

	return dicts, nil
}

// Units resolves the scope's effective unit definitions: active tenant
// dictionary entries layered over the built-in defaults.
func (srv *catalogService) Units(ctx context.Context, claims *service.Claims) ([]unit.Definition, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleRead)
	if err != nil {
		return nil, err
	}

	dicts, err := srv.dictRepo.ListDictionaries(ctx, authorized.Scope, entity.DictionaryUnit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unit dictionary")
	}

	seen := make(map[string]bool, len(dicts))
	defs := make([]unit.Definition, 0, len(dicts))
	for _, d := range dicts {
		if !d.IsActive {
			seen[d.Code] = true

			continue
		}
		defs = append(defs, unit.FromDictionary(d))
		seen[d.Code] = true
	}
	for _, d := range unit.Defaults() {
		if !seen[d.Code] {
			defs = append(defs, d)
		}
	}

	return defs, nil
}

// audit writes a best-effort log record for single-statement writes.
// Log failures are reported but never roll the write back.
func (srv *catalogService) audit(ctx context.Context, authorized *usecase.Authorized, action, targetType, targetID, detail string) {
	var tenantID *uuid.UUID
	if id, ok := authorized.Scope.Tenant(); ok {
		tenantID = &id
	}

	record := &entity.OperationLog{
		ID:         uuid.New(),
		TenantID:   tenantID,
		UserID:     &authorized.Identity.ID,
		UserName:   authorized.Identity.RealName,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Detail:     detail,
	}
	if err := srv.logRepo.AppendLog(ctx, record); err != nil {
		srv.log(ctx).Warn("Failed to append operation log", slog.String("action", action), slog.Any("error", err))
	}
}
