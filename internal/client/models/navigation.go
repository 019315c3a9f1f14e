package models

type Category struct {
	ID                   int    `json:"id"`
	Name                 string `json:"name"`
	Code                 string `json:"code"`
	Description          string `json:"description,omitempty"`
	Icon                 string `json:"icon"`
	Color                string `json:"color,omitempty"`
	Order                int    `json:"order"`
	IsActive             bool   `json:"is_active"`
	IsSystem             bool   `json:"is_system"`
	ActiveFunctionsCount int    `json:"active_functions_count,omitempty"`
	CreatedAt            string `json:"created_at"`
	UpdatedAt            string `json:"updated_at"`
}

type CategoryCreate struct {
	Name        string `json:"name" validate:"required"`
	Code        string `json:"code" validate:"required"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon" validate:"required"`
	Color       string `json:"color,omitempty"`
	Order       *int   `json:"order,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

type CategoryUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Color       *string `json:"color,omitempty"`
	Order       *int    `json:"order,omitempty" validate:"omitempty,gte=0"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// CategoryReorder pairs a category with its new position.
type CategoryReorder struct {
	ID    int `json:"id"`
	Order int `json:"order"`
}

// ReorderResult is the backend acknowledgement for a reorder request.
type ReorderResult struct {
	Message      string `json:"message"`
	UpdatedCount int    `json:"updated_count"`
}

// Function is a navigable unit of the back office. URL is null for functions
// that only group children.
type Function struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Code           string     `json:"code"`
	URL            *string    `json:"url"`
	Icon           string     `json:"icon"`
	Category       *int       `json:"category,omitempty"`
	CategoryName   string     `json:"category_name,omitempty"`
	CategoryCode   string     `json:"category_code,omitempty"`
	CerbosResource string     `json:"cerbos_resource,omitempty"`
	Parent         *int       `json:"parent,omitempty"`
	ParentName     string     `json:"parent_name,omitempty"`
	Order          int        `json:"order"`
	IsActive       bool       `json:"is_active"`
	IsSystem       bool       `json:"is_system"`
	Children       []Function `json:"children,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

type FunctionCreate struct {
	Name           string `json:"name" validate:"required"`
	Code           string `json:"code" validate:"required"`
	URL            string `json:"url,omitempty"`
	Icon           string `json:"icon" validate:"required"`
	Category       *int   `json:"category,omitempty"`
	CerbosResource string `json:"cerbos_resource,omitempty"`
	Parent         *int   `json:"parent,omitempty"`
	Order          *int   `json:"order,omitempty" validate:"omitempty,gte=0"`
	IsActive       *bool  `json:"is_active,omitempty"`
}

type FunctionUpdate struct {
	Name     *string `json:"name,omitempty"`
	Category *int    `json:"category,omitempty"`
	Order    *int    `json:"order,omitempty" validate:"omitempty,gte=0"`
	IsActive *bool   `json:"is_active,omitempty"`
}
