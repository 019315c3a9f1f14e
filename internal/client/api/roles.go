package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/avendano-dev/backoffice/internal/client/models"
)

// RoleService wraps the /permissions/roles and /permissions/role-assignments
// collections. Role lists come back as a bare array, assignments use the
// pagination envelope.
type RoleService struct {
	c *Client
}

func NewRoleService(c *Client) *RoleService {
	return &RoleService{c: c}
}

func (s *RoleService) List(ctx context.Context, filters models.RoleFilters) ([]models.Role, error) {
	q := url.Values{}
	strParam(q, "search", filters.Search)
	boolParam(q, "is_active", filters.IsActive)

	var roles []models.Role
	if err := s.c.get(ctx, "/permissions/roles/", q, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *RoleService) Get(ctx context.Context, id int) (*models.Role, error) {
	var r models.Role
	if err := s.c.get(ctx, fmt.Sprintf("/permissions/roles/%d/", id), nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RoleService) Create(ctx context.Context, in models.RoleCreate) (*models.Role, error) {
	var r models.Role
	if err := s.c.post(ctx, "/permissions/roles/", in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RoleService) Update(ctx context.Context, id int, in models.RoleUpdate) (*models.Role, error) {
	var r models.Role
	if err := s.c.put(ctx, fmt.Sprintf("/permissions/roles/%d/", id), in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *RoleService) Patch(ctx context.Context, id int, in models.RoleUpdate) (*models.Role, error) {
	var r models.Role
	if err := s.c.patch(ctx, fmt.Sprintf("/permissions/roles/%d/", id), in, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// Delete removes a role. System roles are refused server-side.
func (s *RoleService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/permissions/roles/%d/", id))
}

// Users returns the users holding the given role.
func (s *RoleService) Users(ctx context.Context, roleID int) ([]models.User, error) {
	var users []models.User
	if err := s.c.get(ctx, fmt.Sprintf("/permissions/roles/%d/users/", roleID), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Assignments lists role assignments, optionally narrowed by user or role.
func (s *RoleService) Assignments(ctx context.Context, filters models.AssignmentFilters) (*models.Page[models.RoleAssignment], error) {
	q := url.Values{}
	intParam(q, "user", filters.User)
	intParam(q, "role", filters.Role)

	var page models.Page[models.RoleAssignment]
	if err := s.c.get(ctx, "/permissions/role-assignments/", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Assign grants a role to a user.
func (s *RoleService) Assign(ctx context.Context, in models.RoleAssignmentCreate) (*models.RoleAssignment, error) {
	var a models.RoleAssignment
	if err := s.c.post(ctx, "/permissions/role-assignments/", in, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Unassign removes a role assignment.
func (s *RoleService) Unassign(ctx context.Context, assignmentID int) error {
	return s.c.delete(ctx, fmt.Sprintf("/permissions/role-assignments/%d/", assignmentID))
}
