package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

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

// entryService implements the EntryUsecase interface.
type entryService struct {
	txManager repository.TransactionManager
	entryRepo repository.EntryRepository
	dictRepo  repository.DictionaryRepository
	access    usecase.AccessUsecase
	logger    *slog.Logger
}

// EntryServiceParams holds dependencies for EntryService, injected by Fx.
type EntryServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	EntryRepo repository.EntryRepository
	DictRepo  repository.DictionaryRepository
	Access    usecase.AccessUsecase
	Logger    *slog.Logger
}

// NewEntryService is the constructor for entryService.
func NewEntryService(params EntryServiceParams) usecase.EntryUsecase {
	return &entryService{
		txManager: params.TxManager,
		entryRepo: params.EntryRepo,
		dictRepo:  params.DictRepo,
		access:    params.Access,
		logger:    params.Logger,
	}
}

func (srv *entryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEntry validates the input, derives weight and unit price, and
// persists the entry together with its audit log in one transaction.
func (srv *entryService) CreateEntry(ctx context.Context, claims *service.Claims, input usecase.EntryInput) (*entity.Entry, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleWrite)
	if err != nil {
		return nil, err
	}
	tenantID, ok := authorized.Scope.Tenant()
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrPermissionDenied, "entry writes need a tenant scope")
	}

	if err := validateEntryInput(input); err != nil {
		return nil, err
	}

	defs, err := srv.unitDefinitions(ctx, authorized.Scope)
	if err != nil {
		return nil, err
	}

	entry := &entity.Entry{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Status:    entity.EntryApproved,
		CreatedBy: &authorized.Identity.ID,
	}
	applyEntryInput(entry, input, defs)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewEntryRepository().CreateEntry(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to create entry")
		}

		return appendLog(ctx, repoFactory, authorized, "entry.create", "entry", entry.ID.String(),
			fmt.Sprintf("%s %s $%.0f", entry.Type, entry.Date.Format("2006-01-02"), entry.Price))
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create entry", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute entry creation transaction")
	}

	srv.log(ctx).Debug("Entry created", slog.Any("entryID", entry.ID))

	return entry, nil
}

// UpdateEntry replaces an entry's fields and re-derives weight and unit
// price from the new values. The original derived fields are discarded.
func (srv *entryService) UpdateEntry(ctx context.Context, claims *service.Claims, id uuid.UUID, input usecase.EntryInput) (*entity.Entry, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleWrite)
	if err != nil {
		return nil, err
	}

	if err := validateEntryInput(input); err != nil {
		return nil, err
	}

	defs, err := srv.unitDefinitions(ctx, authorized.Scope)
	if err != nil {
		return nil, err
	}

	var updated *entity.Entry
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entryRepo := repoFactory.NewEntryRepository()

		entry, err := entryRepo.FindEntryByID(ctx, authorized.Scope, id)
		if err != nil {
			if errors.Is(err, repository.ErrEntryNotFound) {
				return errors.Wrap(domainerrors.ErrRecordNotFound, "entry not found")
			}

			return errors.Wrap(err, "failed to load entry for update")
		}

		applyEntryInput(entry, input, defs)

		if err := entryRepo.UpdateEntry(ctx, authorized.Scope, entry); err != nil {
			return errors.Wrap(err, "failed to update entry")
		}
		updated = entry

		return appendLog(ctx, repoFactory, authorized, "entry.update", "entry", entry.ID.String(),
			fmt.Sprintf("%s %s $%.0f", entry.Type, entry.Date.Format("2006-01-02"), entry.Price))
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update entry", slog.Any("entryID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute entry update transaction")
	}

	return updated, nil
}

// DeleteEntry removes an entry and records the deletion in the audit log.
func (srv *entryService) DeleteEntry(ctx context.Context, claims *service.Claims, id uuid.UUID) error {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleWrite)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entryRepo := repoFactory.NewEntryRepository()

		entry, err := entryRepo.FindEntryByID(ctx, authorized.Scope, id)
		if err != nil {
			if errors.Is(err, repository.ErrEntryNotFound) {
				return errors.Wrap(domainerrors.ErrRecordNotFound, "entry not found")
			}

			return errors.Wrap(err, "failed to load entry for deletion")
		}

		if err := entryRepo.DeleteEntry(ctx, authorized.Scope, id); err != nil {
			return errors.Wrap(err, "failed to delete entry")
		}

		return appendLog(ctx, repoFactory, authorized, "entry.delete", "entry", id.String(),
			fmt.Sprintf("%s %s $%.0f", entry.Type, entry.Date.Format("2006-01-02"), entry.Price))
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete entry", slog.Any("entryID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute entry deletion transaction")
	}

	return nil
}

// SetEntryStatus moves an entry through the review workflow. Only
// admins review; write-rank users keep creating approved records.
func (srv *entryService) SetEntryStatus(ctx context.Context, claims *service.Claims, id uuid.UUID, status entity.EntryStatus) (*entity.Entry, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrEntryInvalid, "unknown entry status")
	}

	var updated *entity.Entry
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		entryRepo := repoFactory.NewEntryRepository()

		entry, err := entryRepo.FindEntryByID(ctx, authorized.Scope, id)
		if err != nil {
			if errors.Is(err, repository.ErrEntryNotFound) {
				return errors.Wrap(domainerrors.ErrRecordNotFound, "entry not found")
			}

			return errors.Wrap(err, "failed to load entry for review")
		}

		entry.Status = status

		if err := entryRepo.UpdateEntry(ctx, authorized.Scope, entry); err != nil {
			return errors.Wrap(err, "failed to update entry status")
		}
		updated = entry

		return appendLog(ctx, repoFactory, authorized, "entry.status", "entry", entry.ID.String(), string(status))
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update entry status", slog.Any("entryID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute entry review transaction")
	}

	return updated, nil
}

// ListEntries retrieves entries with dates in [from, to], newest first.
func (srv *entryService) ListEntries(ctx context.Context, claims *service.Claims, from, to time.Time) ([]*entity.Entry, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleRead)
	if err != nil {
		return nil, err
	}

	entries, err := srv.entryRepo.ListEntriesByDateRange(ctx, authorized.Scope, dayStart(from), dayEnd(to))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list entries")
	}

	return entries, nil
}

// unitDefinitions loads the scope's active unit vocabulary for weight
// derivation. Built-in defaults cover codes the tenant never defined.
func (srv *entryService) unitDefinitions(ctx context.Context, scope entity.TenantScope) ([]unit.Definition, error) {
	dicts, err := srv.dictRepo.ListDictionaries(ctx, scope, entity.DictionaryUnit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load unit dictionary")
	}

	defs := make([]unit.Definition, 0, len(dicts))
	for _, d := range dicts {
		if !d.IsActive {
			continue
		}
		defs = append(defs, unit.FromDictionary(d))
	}

	return defs, nil
}

// applyEntryInput copies the input onto the entry and recomputes the
// derived fields. Purchase-only and expense-only fields of the other
// type are cleared so a type switch leaves no stale references.
func applyEntryInput(entry *entity.Entry, input usecase.EntryInput, defs []unit.Definition) {
	entry.Type = input.Type
	entry.Date = dayStart(input.Date)
	entry.Price = input.Price
	entry.Note = input.Note

	switch input.Type {
	case entity.EntryPurchase:
		entry.ItemID = input.ItemID
		entry.VendorID = input.VendorID
		entry.ExpenseType = ""
		entry.Quantity = input.Quantity
		entry.Unit = input.Unit
		entry.StandardWeight = unit.ConvertToKg(input.Quantity, input.Unit, defs)
		entry.UnitPrice = deriveUnitPrice(input.Price, input.Quantity, entry.StandardWeight)
	case entity.EntryExpense:
		entry.ItemID = nil
		entry.VendorID = nil
		entry.ExpenseType = input.ExpenseType
		entry.Quantity = 0
		entry.Unit = ""
		entry.StandardWeight = nil
		entry.UnitPrice = nil
	}
}

// deriveUnitPrice computes price per kilogram when the weight is known,
// otherwise price per unit quantity. Nil when neither divisor works.
func deriveUnitPrice(price, quantity float64, standardWeight *float64) *float64 {
	if standardWeight != nil && *standardWeight > 0 {
		v := price / *standardWeight

		return &v
	}
	if quantity > 0 {
		v := price / quantity

		return &v
	}

	return nil
}

func validateEntryInput(input usecase.EntryInput) error {
	if !input.Type.IsValid() {
		return errors.Wrap(domainerrors.ErrEntryInvalid, "unknown entry type")
	}
	if input.Date.IsZero() {
		return errors.Wrap(domainerrors.ErrEntryInvalid, "date is required")
	}
	if !isFinite(input.Price) {
		return errors.Wrap(domainerrors.ErrEntryInvalid, "price must be a finite number")
	}
	if input.Price < 0 {
		return errors.Wrap(domainerrors.ErrEntryInvalid, "price must not be negative")
	}

	// Quantity and unit only exist on purchases; an expense is just an
	// amount classified by its expense type.
	switch input.Type {
	case entity.EntryPurchase:
		if input.ItemID == nil {
			return errors.Wrap(domainerrors.ErrEntryInvalid, "purchase entries need an item")
		}
		if input.Unit == "" {
			return errors.Wrap(domainerrors.ErrEntryInvalid, "purchase entries need a unit")
		}
		if !isFinite(input.Quantity) {
			return errors.Wrap(domainerrors.ErrEntryInvalid, "quantity must be a finite number")
		}
		if input.Quantity <= 0 {
			return errors.Wrap(domainerrors.ErrEntryInvalid, "quantity must be positive")
		}
	case entity.EntryExpense:
		if input.ExpenseType == "" {
			return errors.Wrap(domainerrors.ErrEntryInvalid, "expense entries need an expense type")
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// appendLog writes one audit record inside the caller's transaction.
func appendLog(ctx context.Context, repoFactory repository.RepositoryFactory, authorized *usecase.Authorized, action, targetType, targetID, detail string) error {
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

	if err := repoFactory.NewOperationLogRepository().AppendLog(ctx, record); err != nil {
		return errors.Wrap(err, "failed to append operation log")
	}

	return nil
}
