package postgres

import (
	"context"
	"sort"

	"stallbook/internal/domain/entity"
	domainerrors "stallbook/internal/domain/errors"
	"stallbook/internal/domain/repository"
	"stallbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roleRepository implements the repository.RoleRepository interface.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		db: db,
	}
}

// EnsureRole inserts the role or updates its name and description when
// the code already exists. Used by the startup bootstrap.
func (repo *roleRepository) EnsureRole(ctx context.Context, role *entity.Role) error {
	roleM := fromRoleDomain(role)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "updated_at"}),
		}).
		Create(roleM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to ensure role")
	}

	role.ID = roleM.ID

	return nil
}

// FindRoleByCode retrieves a role by its code.
func (repo *roleRepository) FindRoleByCode(ctx context.Context, code entity.RoleCode) (*entity.Role, error) {
	var roleM model.RoleModel

	if err := repo.db.WithContext(ctx).
		Where("code = ?", code.String()).
		First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by code")
	}

	return toRoleDomain(&roleM), nil
}

// ListRoles retrieves all roles ordered by rank.
func (repo *roleRepository) ListRoles(ctx context.Context) ([]*entity.Role, error) {
	var roleModels []*model.RoleModel

	if err := repo.db.WithContext(ctx).
		Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toRoleDomain(roleM))
	}

	// Rank order is a domain concern, not a column, so sort in memory.
	sort.Slice(roles, func(i, j int) bool {
		return roles[i].Code.Rank() < roles[j].Code.Rank()
	})

	return roles, nil
}

// --- Mapper Functions ---

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	return &entity.Role{
		ID:          data.ID,
		Code:        entity.RoleCode(data.Code),
		Name:        data.Name,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromRoleDomain converts a domain Role entity to a GORM RoleModel.
func fromRoleDomain(data *entity.Role) *model.RoleModel {
	if data == nil {
		return nil
	}

	return &model.RoleModel{
		ID:          data.ID,
		Code:        data.Code.String(),
		Name:        data.Name,
		Description: data.Description,
	}
}
