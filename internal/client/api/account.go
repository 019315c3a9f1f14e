package api

import (
	"context"

	"github.com/avendano-dev/backoffice/internal/client/models"
)

// AccountService wraps the /users/me endpoints of the logged-in user.
type AccountService struct {
	c *Client
}

func NewAccountService(c *Client) *AccountService {
	return &AccountService{c: c}
}

// Me returns the profile of the logged-in user.
func (s *AccountService) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := s.c.get(ctx, "/users/me/", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Menu returns the raw permission-filtered navigation tree.
func (s *AccountService) Menu(ctx context.Context) ([]models.RawMenuNode, error) {
	var nodes []models.RawMenuNode
	if err := s.c.get(ctx, "/users/me/menu", nil, &nodes); err != nil {
		return nil, err
	}
	return nodes, nil
}

// Permissions returns the raw permission snapshot of the logged-in user.
func (s *AccountService) Permissions(ctx context.Context) (*models.RawPermissionSnapshot, error) {
	var snap models.RawPermissionSnapshot
	if err := s.c.get(ctx, "/users/me/permissions", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
