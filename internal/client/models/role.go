package models

type Role struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Code           string     `json:"code"`
	Description    string     `json:"description"`
	CerbosRole     string     `json:"cerbos_role"`
	IsActive       bool       `json:"is_active"`
	IsSystem       bool       `json:"is_system"`
	Level          int        `json:"level"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
	CreatedBy      *int       `json:"created_by,omitempty"`
	CreatedByName  string     `json:"created_by_name,omitempty"`
	UsersCount     int        `json:"users_count,omitempty"`
	FunctionsCount int        `json:"functions_count,omitempty"`
	Functions      []Function `json:"functions,omitempty"`
}

type RoleCreate struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Description string `json:"description" validate:"required"`
	CerbosRole  string `json:"cerbos_role" validate:"required"`
	IsActive    *bool  `json:"is_active,omitempty"`
	Level       *int   `json:"level,omitempty" validate:"omitempty,gte=0"`
	FunctionIDs []int  `json:"function_ids,omitempty"`
}

type RoleUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	Level       *int    `json:"level,omitempty" validate:"omitempty,gte=0"`
	FunctionIDs []int   `json:"function_ids,omitempty"`
}

type RoleAssignment struct {
	ID         int    `json:"id"`
	User       int    `json:"user"`
	Role       int    `json:"role"`
	RoleName   string `json:"role_name,omitempty"`
	AssignedAt string `json:"assigned_at"`
	AssignedBy *int   `json:"assigned_by,omitempty"`
	ExpiresAt  string `json:"expires_at,omitempty"`
	ScopeType  string `json:"scope_type,omitempty"`
	ScopeID    *int   `json:"scope_id,omitempty"`
	IsActive   bool   `json:"is_active"`
}

type RoleAssignmentCreate struct {
	User      int    `json:"user" validate:"required"`
	Role      int    `json:"role" validate:"required"`
	ExpiresAt string `json:"expires_at,omitempty"`
	ScopeType string `json:"scope_type,omitempty"`
	ScopeID   *int   `json:"scope_id,omitempty"`
}

// RoleFilters narrows role list requests.
type RoleFilters struct {
	Search   string
	IsActive *bool
}

// AssignmentFilters narrows role-assignment list requests.
type AssignmentFilters struct {
	User int
	Role int
}
