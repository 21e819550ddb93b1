package repository

import (
	"context"

	"stallbook/internal/domain/entity"
)

// OperationLogRepository defines the operations for the append-only
// audit log. There is no update or delete on purpose.
type OperationLogRepository interface {
	// AppendLog persists one audit record.
	AppendLog(ctx context.Context, log *entity.OperationLog) error

	// ListRecentLogs retrieves the newest records within the scope,
	// capped at limit.
	ListRecentLogs(ctx context.Context, scope entity.TenantScope, limit int) ([]*entity.OperationLog, error)
}
