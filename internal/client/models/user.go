package models

// UserRole is a role attached to a user, as embedded in user payloads.
type UserRole struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	AssignmentID int    `json:"assignment_id"`
}

type User struct {
	ID             int        `json:"id"`
	Email          string     `json:"email"`
	Username       string     `json:"username"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	FullName       string     `json:"full_name"`
	IsActive       bool       `json:"is_active"`
	IsSuperuser    bool       `json:"is_superuser"`
	IsStaff        bool       `json:"is_staff"`
	CI             string     `json:"ci,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Address        string     `json:"address,omitempty"`
	City           string     `json:"city,omitempty"`
	Country        string     `json:"country,omitempty"`
	BirthDate      string     `json:"birth_date,omitempty"`
	UserType       string     `json:"user_type,omitempty"`
	ProfilePicture string     `json:"profile_picture,omitempty"`
	DateJoined     string     `json:"date_joined,omitempty"`
	LastLogin      string     `json:"last_login,omitempty"`
	Roles          []UserRole `json:"roles,omitempty"`
}

type UserCreate struct {
	Email     string `json:"email" validate:"required,email"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	CI        string `json:"ci,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`
	UserType  string `json:"user_type,omitempty" validate:"omitempty,oneof=EMPLOYEE CUSTOMER SUPPLIER OTHER"`
	IsActive  *bool  `json:"is_active,omitempty"`
	IsStaff   *bool  `json:"is_staff,omitempty"`
	RoleIDs   []int  `json:"role_ids,omitempty"`
}

type UserUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	CI        *string `json:"ci,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	Country   *string `json:"country,omitempty"`
	BirthDate *string `json:"birth_date,omitempty"`
	UserType  *string `json:"user_type,omitempty" validate:"omitempty,oneof=EMPLOYEE CUSTOMER SUPPLIER OTHER"`
	IsActive  *bool   `json:"is_active,omitempty"`
	IsStaff   *bool   `json:"is_staff,omitempty"`
	RoleIDs   []int   `json:"role_ids,omitempty"`
}

// UserFilters narrows user list requests. Zero values mean "not set".
type UserFilters struct {
	Search   string
	IsActive *bool
	IsStaff  *bool
	UserType string
	Page     int
	PageSize int
}
