package api

import (
	"context"
	"net/http"

	"github.com/hrinvest/carteira"
)

// RegisterForm is the payload to create a user account.
type RegisterForm struct {
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// LoginResponse carries the issued bearer token and the user record.
type LoginResponse struct {
	Token string        `json:"token"`
	User  carteira.User `json:"user"`
}

// Register creates a new user account. No authentication required.
func (c *Client) Register(ctx context.Context, form RegisterForm) error {
	return c.do(ctx, http.MethodPost, "/auth/register", nil, form, nil)
}

// Login exchanges the credentials for a bearer token and the user profile.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var res LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, creds, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
