package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/avendano-dev/backoffice/internal/client/models"
	"github.com/avendano-dev/backoffice/internal/client/transport"
	"github.com/avendano-dev/backoffice/internal/common"
)

// AuthService wraps the /auth endpoints. All of its calls are tagged to skip
// the authorization pipeline, which keeps the refresh flow from recursing
// into itself.
type AuthService struct {
	c *Client
}

func NewAuthService(c *Client) *AuthService {
	return &AuthService{c: c}
}

// Login exchanges credentials for a token pair and the user profile.
// Credential rejections surface as common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{Email: email, Password: password}
	err := s.c.post(transport.WithoutAuth(ctx), "/auth/login/", req, &resp)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && (se.Status == http.StatusUnauthorized || se.Status == http.StatusBadRequest) {
			return nil, fmt.Errorf("%w: %s", common.ErrInvalidCredentials, se.Detail)
		}
		return nil, err
	}
	return &resp, nil
}

// Logout notifies the server that the refresh token should be revoked.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	req := models.LogoutRequest{Refresh: refreshToken}
	return s.c.post(transport.WithoutAuth(ctx), "/auth/logout/", req, nil)
}

// Refresh exchanges a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.RefreshResponse, error) {
	var resp models.RefreshResponse
	req := models.RefreshRequest{Refresh: refreshToken}
	if err := s.c.post(transport.WithoutAuth(ctx), "/auth/refresh/", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
