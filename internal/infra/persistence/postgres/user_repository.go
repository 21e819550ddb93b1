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
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new user and its role assignments. Role rows
// are written directly into the join table so the role definitions
// themselves are never touched.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User, roleIDs []uuid.UUID) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit("Roles", "Tenant").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUsername
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid tenant or department reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	for _, roleID := range roleIDs {
		assignment := &model.UserRoleModel{UserID: userM.ID, RoleID: roleID}
		if err := repo.db.WithContext(ctx).Create(assignment).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to assign user role")
		}
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindUserByID retrieves a user by ID with roles and tenant loaded.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Roles").
		Preload("Tenant").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindUserByUsername retrieves a user by login name with roles and tenant loaded.
func (repo *userRepository) FindUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Roles").
		Preload("Tenant").
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// ListUsers retrieves the users visible within the scope, newest first.
func (repo *userRepository) ListUsers(ctx context.Context, scope entity.TenantScope) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := scoped(repo.db.WithContext(ctx), scope).
		Preload("Roles").
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// UpdateUser modifies the user's profile fields.
func (repo *userRepository) UpdateUser(ctx context.Context, scope entity.TenantScope, user *entity.User) error {
	result := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"real_name":     user.RealName,
			"department_id": user.DepartmentID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// ReplaceUserRoles replaces the user's role assignments with the given set.
func (repo *userRepository) ReplaceUserRoles(ctx context.Context, scope entity.TenantScope, userID uuid.UUID, roleIDs []uuid.UUID) error {
	// Verify the user is visible within the scope before touching assignments.
	var count int64
	if err := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to verify user for role replacement")
	}
	if count == 0 {
		return repository.ErrUserNotFound
	}

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.UserRoleModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear user roles")
	}

	for _, roleID := range roleIDs {
		assignment := &model.UserRoleModel{UserID: userID, RoleID: roleID}
		if err := repo.db.WithContext(ctx).Create(assignment).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to assign user role")
		}
	}

	return nil
}

// SetUserActive toggles whether the user may sign in.
func (repo *userRepository) SetUserActive(ctx context.Context, scope entity.TenantScope, userID uuid.UUID, active bool) error {
	result := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user active flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateUserPassword replaces the user's password hash.
func (repo *userRepository) UpdateUserPassword(ctx context.Context, scope entity.TenantScope, userID uuid.UUID, passwordHash string) error {
	result := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update user password")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// CountUsers returns the number of users within the scope.
func (repo *userRepository) CountUsers(ctx context.Context, scope entity.TenantScope) (int64, error) {
	var count int64

	if err := scoped(repo.db.WithContext(ctx), scope).
		Model(&model.UserModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	roles := make(entity.RoleCodes, 0, len(data.Roles))
	for _, roleM := range data.Roles {
		roles = append(roles, entity.RoleCode(roleM.Code))
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		RealName:     data.RealName,
		IsActive:     data.IsActive,
		IsSuperAdmin: data.IsSuperAdmin,
		TenantID:     data.TenantID,
		DepartmentID: data.DepartmentID,
		Roles:        roles,
		Tenant:       toTenantDomain(data.Tenant),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		RealName:     data.RealName,
		IsActive:     data.IsActive,
		IsSuperAdmin: data.IsSuperAdmin,
		TenantID:     data.TenantID,
		DepartmentID: data.DepartmentID,
	}
}
