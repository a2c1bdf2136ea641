package platform

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aamagency-dev/sms-frontend/models"
)

func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/admin/users", nil)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return decodeList[models.User](body)
}

func (c *Client) GetUser(ctx context.Context, token, id string) (models.User, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/admin/users/"+id, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("get user: %w", err)
	}
	var user models.User
	if err := decodeObject(body, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (c *Client) CreateUser(ctx context.Context, token string, input models.UserInput) (models.User, error) {
	body, err := c.do(ctx, token, http.MethodPost, "/admin/users", input)
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	var created models.User
	if err := decodeObject(body, &created); err != nil {
		return models.User{}, err
	}
	return created, nil
}

func (c *Client) UpdateUser(ctx context.Context, token, id string, input models.UserInput) (models.User, error) {
	body, err := c.do(ctx, token, http.MethodPut, "/admin/users/"+id, input)
	if err != nil {
		return models.User{}, fmt.Errorf("update user: %w", err)
	}
	var updated models.User
	if err := decodeObject(body, &updated); err != nil {
		return models.User{}, err
	}
	return updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, token, id string) error {
	if _, err := c.do(ctx, token, http.MethodDelete, "/admin/users/"+id, nil); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (c *Client) AdminStats(ctx context.Context, token string) (models.AdminStats, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/admin/stats", nil)
	if err != nil {
		return models.AdminStats{}, fmt.Errorf("admin stats: %w", err)
	}
	var stats models.AdminStats
	if err := decodeObject(body, &stats); err != nil {
		return models.AdminStats{}, err
	}
	return stats, nil
}
