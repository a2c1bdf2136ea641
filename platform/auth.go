package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aamagency-dev/sms-frontend/models"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// authResponse tolerates both token field spellings seen from the platform.
type authResponse struct {
	AccessToken string `json:"access_token"`
	Token       string `json:"token"`
}

func (r authResponse) token() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, creds Credentials) (string, error) {
	body, err := c.do(ctx, "", http.MethodPost, "/auth/login", creds)
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	var resp authResponse
	if err := decodeObject(body, &resp); err != nil {
		return "", err
	}
	if resp.token() == "" {
		return "", fmt.Errorf("login: no token in response")
	}
	return resp.token(), nil
}

// Register creates an account and returns the bearer token for it.
func (c *Client) Register(ctx context.Context, input RegisterInput) (string, error) {
	body, err := c.do(ctx, "", http.MethodPost, "/auth/register", input)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	var resp authResponse
	if err := decodeObject(body, &resp); err != nil {
		return "", err
	}
	if resp.token() == "" {
		return "", fmt.Errorf("register: no token in response")
	}
	return resp.token(), nil
}

// Me returns the user the token belongs to. The payload arrives either bare
// or wrapped in {"user": {...}} depending on the platform version.
func (c *Client) Me(ctx context.Context, token string) (models.User, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch current user: %w", err)
	}

	var wrapped struct {
		User *models.User `json:"user"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.User != nil {
		return *wrapped.User, nil
	}

	var user models.User
	if err := decodeObject(body, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}
