// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoleCode identifies a permission level a user can hold.
type RoleCode string

const (
	// RoleRead grants read-only access to entries, revenues and reports.
	RoleRead RoleCode = "read"
	// RoleWrite grants RoleRead plus create/update/delete on business records.
	RoleWrite RoleCode = "write"
	// RoleAdmin grants RoleWrite plus tenant administration.
	RoleAdmin RoleCode = "admin"
)

// roleRanks orders the codes. Unknown codes rank 0 and never satisfy a check.
var roleRanks = map[RoleCode]int{
	RoleRead:  1,
	RoleWrite: 2,
	RoleAdmin: 3,
}

// String returns the string representation of the RoleCode.
func (r RoleCode) String() string {
	return string(r)
}

// IsValid checks if the RoleCode is a known value.
func (r RoleCode) IsValid() bool {
	_, ok := roleRanks[r]

	return ok
}

// Rank returns the permission rank of the code, 0 for unknown codes.
func (r RoleCode) Rank() int {
	return roleRanks[r]
}

// AtLeast reports whether the code's rank satisfies the minimum code.
func (r RoleCode) AtLeast(minimum RoleCode) bool {
	return r.Rank() >= roleRanks[minimum]
}

// RoleCodes is a slice of RoleCode for convenience.
type RoleCodes []RoleCode

// Highest returns the highest-ranked code in the slice. An empty or
// entirely unknown slice falls back to RoleRead.
func (rs RoleCodes) Highest() RoleCode {
	highest := RoleRead
	for _, r := range rs {
		if r.Rank() > highest.Rank() {
			highest = r
		}
	}

	return highest
}

// ToStrings converts RoleCodes to []string for JWT compatibility.
func (rs RoleCodes) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RoleCodesFromStrings converts []string to RoleCodes, filtering out unknown codes.
func RoleCodesFromStrings(ss []string) RoleCodes {
	result := make(RoleCodes, 0, len(ss))
	for _, s := range ss {
		code := RoleCode(s)
		if code.IsValid() {
			result = append(result, code)
		}
	}

	return result
}

// Role is a named permission definition stored per deployment and
// referenced by user role assignments.
type Role struct {
	ID          uuid.UUID
	Code        RoleCode
	Name        string // Localized display name, e.g. "讀取者".
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DefaultRoles returns the built-in role definitions ensured at startup.
func DefaultRoles() []Role {
	return []Role{
		{Code: RoleRead, Name: "讀取者", Description: "僅能查看資料 (讀取權限)"},
		{Code: RoleWrite, Name: "編輯者", Description: "可新增與修改資料 (含讀取權限)"},
		{Code: RoleAdmin, Name: "管理者", Description: "可管理權限與功能設定 (含全部權限)"},
	}
}
