package handler

import (
	"time"

	"stallbook/internal/domain/entity"

	"github.com/google/uuid"
)

// userView is the wire shape of a user account. The password hash
// never leaves the server.
type userView struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	RealName     string     `json:"realName"`
	IsActive     bool       `json:"isActive"`
	IsSuperAdmin bool       `json:"isSuperAdmin"`
	TenantID     *uuid.UUID `json:"tenantId,omitempty"`
	DepartmentID *uuid.UUID `json:"departmentId,omitempty"`
	Roles        []string   `json:"roles"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// tokenPairView carries a token pair together with the signed-in user.
type tokenPairView struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         userView `json:"user"`
}

func toUserView(user *entity.User) userView {
	return userView{
		ID:           user.ID,
		Username:     user.Username,
		RealName:     user.RealName,
		IsActive:     user.IsActive,
		IsSuperAdmin: user.IsSuperAdmin,
		TenantID:     user.TenantID,
		DepartmentID: user.DepartmentID,
		Roles:        user.Roles.ToStrings(),
		CreatedAt:    user.CreatedAt,
	}
}

func toUserViews(users []*entity.User) []userView {
	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views
}
