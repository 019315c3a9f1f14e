package models

// RawMenuNode is the nested menu shape as delivered by GET /users/me/menu.
type RawMenuNode struct {
	ID         int           `json:"id"`
	Code       string        `json:"code"`
	Name       string        `json:"name"`
	Icon       string        `json:"icon"`
	URL        string        `json:"url,omitempty"`
	IsCategory bool          `json:"is_category"`
	Color      string        `json:"color,omitempty"`
	Children   []RawMenuNode `json:"children,omitempty"`
}

// MenuNode is the client-side menu model. Route is empty on category and
// grouping nodes; Children is nil on leaves.
type MenuNode struct {
	ID         string
	Label      string
	Icon       string
	Route      string
	IsCategory bool
	Color      string
	Children   []MenuNode
}

// RawPermissionSnapshot is the payload of GET /users/me/permissions.
type RawPermissionSnapshot struct {
	UserID      int                        `json:"user_id"`
	Email       string                     `json:"email"`
	IsSuperuser bool                       `json:"is_superuser"`
	Permissions map[string]map[string]bool `json:"permissions"`
}
