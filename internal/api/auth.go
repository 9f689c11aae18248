package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/nightshift/casefile/internal/models"
)

// LoginResponse is the token issued by a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthAPI defines the authentication operations of the remote API.
//
// Contract:
//   - Login: exchange credentials for a bearer token.
//   - Register: create a new account, returning its profile.
//   - CurrentUser: resolve the profile behind a bearer token.
//
// All methods honor context cancellation; errors are propagated unchanged
// from the transport, with no recovery at this layer.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	Register(ctx context.Context, email, username, password string) (*models.User, error)
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

// AuthClient is the concrete AuthAPI backed by a shared Client.
type AuthClient struct {
	c *Client
}

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// Login posts form-urlencoded credentials, not JSON; this is what the
// server's JWT login route expects.
func (a *AuthClient) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var resp LoginResponse
	err := a.c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/jwt/login",
		Body:   form,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *AuthClient) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	payload := struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}{Email: email, Username: username, Password: password}

	var u models.User
	err := a.c.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body:   payload,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (a *AuthClient) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	err := a.c.Do(ctx, Request{
		Path:  "/auth/users/me",
		Token: token,
	}, &u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
