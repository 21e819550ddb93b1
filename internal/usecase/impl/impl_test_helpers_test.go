package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"stallbook/internal/domain/entity"
	"stallbook/internal/domain/repository"
	"stallbook/internal/domain/service"
	mockRepo "stallbook/internal/mocks/repository"
	"stallbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{UserID: userID, Type: "access"}
}

// testAuthorized builds an authorized tenant user with the given roles.
func testAuthorized(tenantID uuid.UUID, roles ...entity.RoleCode) *usecase.Authorized {
	user := &entity.User{
		ID:       uuid.New(),
		Username: "worker",
		RealName: "測試人員",
		IsActive: true,
		TenantID: &tenantID,
		Roles:    entity.RoleCodes(roles),
	}

	return &usecase.Authorized{Identity: user, Scope: entity.ScopeTenant(tenantID)}
}

func testSuperAdmin() *usecase.Authorized {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "root",
		RealName:     "平台管理員",
		IsActive:     true,
		IsSuperAdmin: true,
	}

	return &usecase.Authorized{Identity: user, Scope: entity.ScopeAll()}
}

// passthroughTx builds a transaction manager mock that runs the
// callback against the given repository factory.
func passthroughTx(t *testing.T, factory repository.RepositoryFactory) *mockRepo.MockTransactionManager {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	wireTx(t, txManager, factory)

	return txManager
}

// wireTx makes an existing transaction manager mock run the callback
// against the given repository factory.
func wireTx(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// expectAuditLog wires the factory to accept one operation log append.
func expectAuditLog(t *testing.T, factory *mockRepo.MockRepositoryFactory) *mockRepo.MockOperationLogRepository {
	t.Helper()

	logRepo := mockRepo.NewMockOperationLogRepository(t)
	factory.EXPECT().NewOperationLogRepository().Return(logRepo)
	logRepo.EXPECT().
		AppendLog(mock.Anything, mock.AnythingOfType("*entity.OperationLog")).
		Return(nil)

	return logRepo
}
