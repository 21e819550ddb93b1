package postgres

import (
	"context"

	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	"stallbook/internal/domain/repository"
	"stallbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// operationLogRepository implements the repository.OperationLogRepository interface.
// The table is append-only; this type deliberately has no update or delete methods.
type operationLogRepository struct {
	db *gorm.DB
}

// NewOperationLogRepository is the constructor for operationLogRepository.
func NewOperationLogRepository(db *gorm.DB) repository.OperationLogRepository {
	return &operationLogRepository{
		db: db,
	}
}

// AppendLog persists one audit record.
func (repo *operationLogRepository) AppendLog(ctx context.Context, log *entity.OperationLog) error {
	logM := fromOperationLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append operation log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// ListRecentLogs retrieves the newest records within the scope, capped
// at limit.
func (repo *operationLogRepository) ListRecentLogs(ctx context.Context, scope entity.TenantScope, limit int) ([]*entity.OperationLog, error) {
	var logModels []*model.OperationLogModel

	if err := scoped(repo.db.WithContext(ctx), scope).
		Order("created_at DESC").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list operation logs")
	}

	logs := make([]*entity.OperationLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toOperationLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// toOperationLogDomain converts a GORM OperationLogModel to a domain OperationLog entity.
func toOperationLogDomain(data *model.OperationLogModel) *entity.OperationLog {
	if data == nil {
		return nil
	}

	return &entity.OperationLog{
		ID:         data.ID,
		TenantID:   data.TenantID,
		UserID:     data.UserID,
		UserName:   data.UserName,
		Action:     data.Action,
		TargetType: data.TargetType,
		TargetID:   data.TargetID,
		Detail:     data.Detail,
		CreatedAt:  data.CreatedAt,
	}
}

// fromOperationLogDomain converts a domain OperationLog entity to a GORM OperationLogModel.
func fromOperationLogDomain(data *entity.OperationLog) *model.OperationLogModel {
	if data == nil {
		return nil
	}

	return &model.OperationLogModel{
		ID:         data.ID,
		TenantID:   data.TenantID,
		UserID:     data.UserID,
		UserName:   data.UserName,
		Action:     data.Action,
		TargetType: data.TargetType,
		TargetID:   data.TargetID,
		Detail:     data.Detail,
	}
}
