package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "stallbook/internal/delivery/context"
	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	"stallbook/internal/domain/repository"
	"stallbook/internal/domain/service"
	"stallbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// revenueService implements the RevenueUsecase interface.
type revenueService struct {
	txManager    repository.TransactionManager
	revenueRepo  repository.RevenueRepository
	locationRepo repository.LocationRepository
	access       usecase.AccessUsecase
	logger       *slog.Logger
}

// RevenueServiceParams holds dependencies for RevenueService, injected by Fx.
type RevenueServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	RevenueRepo  repository.RevenueRepository
	LocationRepo repository.LocationRepository
	Access       usecase.AccessUsecase
	Logger       *slog.Logger
}

// NewRevenueService is the constructor for revenueService.
func NewRevenueService(params RevenueServiceParams) usecase.RevenueUsecase {
	return &revenueService{
		txManager:    params.TxManager,
		revenueRepo:  params.RevenueRepo,
		locationRepo: params.LocationRepo,
		access:       params.Access,
		logger:       params.Logger,
	}
}

func (srv *revenueService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordRevenue writes the day's takings for a location. Submitting the
// same (location, date) again replaces the previous record instead of
// stacking duplicates.
func (srv *revenueService) RecordRevenue(ctx context.Context, claims *service.Claims, input usecase.RevenueInput) (*entity.Revenue, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleWrite)
	if err != nil {
		return nil, err
	}
	tenantID, ok := authorized.Scope.Tenant()
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrPermissionDenied, "revenue writes need a tenant scope")
	}

	if err := validateRevenueInput(input); err != nil {
		return nil, err
	}

	// The location must belong to the caller's tenant. A foreign or
	// unknown ID reads as not found, never as a hint.
	if _, err := srv.locationRepo.FindLocationByID(ctx, authorized.Scope, input.LocationID); err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRecordNotFound, "location not found")
		}

		return nil, errors.Wrap(err, "failed to load location for revenue")
	}

	record := &entity.Revenue{
		ID:         uuid.New(),
		TenantID:   tenantID,
		LocationID: input.LocationID,
		CreatedBy:  &authorized.Identity.ID,
	}
	applyRevenueInput(record, input)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRevenueRepository().UpsertRevenue(ctx, record); err != nil {
			return errors.Wrap(err, "failed to upsert revenue")
		}

		return appendLog(ctx, repoFactory, authorized, "revenue.record", "revenue", record.ID.String(),
			fmt.Sprintf("%s $%.0f", record.Date.Format("2006-01-02"), record.Amount))
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record revenue", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute revenue transaction")
	}

	srv.log(ctx).Debug("Revenue recorded", slog.Any("revenueID", record.ID))

	return record, nil
}

// UpdateRevenue edits an existing record by ID.
func (srv *revenueService) UpdateRevenue(ctx context.Context, claims *service.Claims, id uuid.UUID, input usecase.RevenueInput) (*entity.Revenue, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleWrite)
	if err != nil {
		return nil, err
	}

	if err := validateRevenueInput(input); err != nil {
		return nil, err
	}

	var updated *entity.Revenue
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		revenueRepo := repoFactory.NewRevenueRepository()

		record, err := revenueRepo.FindRevenueByID(ctx, authorized.Scope, id)
		if err != nil {
			if errors.Is(err, repository.ErrRevenueNotFound) {
				return errors.Wrap(domainerrors.ErrRecordNotFound, "revenue not found")
			}

			return errors.Wrap(err, "failed to load revenue for update")
		}

		record.LocationID = input.LocationID
		applyRevenueInput(record, input)

		if err := revenueRepo.UpdateRevenue(ctx, authorized.Scope, record); err != nil {
			return errors.Wrap(err, "failed to update revenue")
		}
		updated = record

		return appendLog(ctx, repoFactory, authorized, "revenue.update", "revenue", record.ID.String(),
			fmt.Sprintf("%s $%.0f", record.Date.Format("2006-01-02"), record.Amount))
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update revenue", slog.Any("revenueID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute revenue update transaction")
	}

	return updated, nil
}

// DeleteRevenue removes a record and logs the deletion.
func (srv *revenueService) DeleteRevenue(ctx context.Context, claims *service.Claims, id uuid.UUID) error {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleWrite)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		revenueRepo := repoFactory.NewRevenueRepository()

		record, err := revenueRepo.FindRevenueByID(ctx, authorized.Scope, id)
		if err != nil {
			if errors.Is(err, repository.ErrRevenueNotFound) {
				return errors.Wrap(domainerrors.ErrRecordNotFound, "revenue not found")
			}

			return errors.Wrap(err, "failed to load revenue for deletion")
		}

		if err := revenueRepo.DeleteRevenue(ctx, authorized.Scope, id); err != nil {
			return errors.Wrap(err, "failed to delete revenue")
		}

		return appendLog(ctx, repoFactory, authorized, "revenue.delete", "revenue", id.String(),
			fmt.Sprintf("%s $%.0f", record.Date.Format("2006-01-02"), record.Amount))
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete revenue", slog.Any("revenueID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute revenue deletion transaction")
	}

	return nil
}

// ListRevenues retrieves records with dates in [from, to], newest first.
func (srv *revenueService) ListRevenues(ctx context.Context, claims *service.Claims, from, to time.Time) ([]*entity.Revenue, error) {
	authorized, err := srv.access.EnsureRole(ctx, claims, entity.RoleRead)
	if err != nil {
		return nil, err
	}

	records, err := srv.revenueRepo.ListRevenuesByDateRange(ctx, authorized.Scope, dayStart(from), dayEnd(to))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list revenues")
	}

	return records, nil
}

// applyRevenueInput copies the input onto the record. A day off always
// stores a zero amount regardless of what was submitted.
func applyRevenueInput(record *entity.Revenue, input usecase.RevenueInput) {
	record.Date = dayStart(input.Date)
	record.IsDayOff = input.IsDayOff
	record.Note = input.Note
	if input.IsDayOff {
		record.Amount = 0
	} else {
		record.Amount = input.Amount
	}
}

func validateRevenueInput(input usecase.RevenueInput) error {
	if input.LocationID == uuid.Nil {
		return errors.Wrap(domainerrors.ErrRevenueInvalid, "location is required")
	}
	if input.Date.IsZero() {
		return errors.Wrap(domainerrors.ErrRevenueInvalid, "date is required")
	}
	if !isFinite(input.Amount) {
		return errors.Wrap(domainerrors.ErrRevenueInvalid, "amount must be a finite number")
	}
	if input.Amount < 0 {
		return errors.Wrap(domainerrors.ErrRevenueInvalid, "amount must not be negative")
	}

	return nil
}
