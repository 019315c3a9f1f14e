package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/avendano-dev/backoffice/internal/client/models"
)

// UserService wraps the /users collection.
type UserService struct {
	c *Client
}

func NewUserService(c *Client) *UserService {
	return &UserService{c: c}
}

// List returns a page of users matching the filters.
func (s *UserService) List(ctx context.Context, filters models.UserFilters) (*models.Page[models.User], error) {
	q := url.Values{}
	strParam(q, "search", filters.Search)
	boolParam(q, "is_active", filters.IsActive)
	boolParam(q, "is_staff", filters.IsStaff)
	strParam(q, "user_type", filters.UserType)
	intParam(q, "page", filters.Page)
	intParam(q, "page_size", filters.PageSize)

	var page models.Page[models.User]
	if err := s.c.get(ctx, "/users/", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	if err := s.c.get(ctx, fmt.Sprintf("/users/%d/", id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) Create(ctx context.Context, in models.UserCreate) (*models.User, error) {
	var u models.User
	if err := s.c.post(ctx, "/users/", in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Update replaces the mutable fields of a user (PUT).
func (s *UserService) Update(ctx context.Context, id int, in models.UserUpdate) (*models.User, error) {
	var u models.User
	if err := s.c.put(ctx, fmt.Sprintf("/users/%d/", id), in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Patch updates only the set fields of a user.
func (s *UserService) Patch(ctx context.Context, id int, in models.UserUpdate) (*models.User, error) {
	var u models.User
	if err := s.c.patch(ctx, fmt.Sprintf("/users/%d/", id), in, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	return s.c.delete(ctx, fmt.Sprintf("/users/%d/", id))
}

// SetActive toggles the is_active flag of a user.
func (s *UserService) SetActive(ctx context.Context, id int, active bool) (*models.User, error) {
	return s.Patch(ctx, id, models.UserUpdate{IsActive: &active})
}
