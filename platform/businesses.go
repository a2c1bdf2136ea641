package platform

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aamagency-dev/sms-frontend/models"
)

func (c *Client) ListBusinesses(ctx context.Context, token string) ([]models.BusinessConfig, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/businesses/", nil)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	return decodeList[models.BusinessConfig](body)
}

func (c *Client) GetBusiness(ctx context.Context, token, id string) (models.BusinessConfig, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/businesses/"+id, nil)
	if err != nil {
		return models.BusinessConfig{}, fmt.Errorf("get business: %w", err)
	}
	var cfg models.BusinessConfig
	if err := decodeObject(body, &cfg); err != nil {
		return models.BusinessConfig{}, err
	}
	return cfg, nil
}

func (c *Client) CreateBusiness(ctx context.Context, token string, cfg models.BusinessConfig) (models.BusinessConfig, error) {
	body, err := c.do(ctx, token, http.MethodPost, "/businesses/", cfg.Editable())
	if err != nil {
		return models.BusinessConfig{}, fmt.Errorf("create business: %w", err)
	}
	var created models.BusinessConfig
	if err := decodeObject(body, &created); err != nil {
		return models.BusinessConfig{}, err
	}
	return created, nil
}

func (c *Client) UpdateBusiness(ctx context.Context, token, id string, cfg models.BusinessConfig) (models.BusinessConfig, error) {
	body, err := c.do(ctx, token, http.MethodPut, "/businesses/"+id, cfg.Editable())
	if err != nil {
		return models.BusinessConfig{}, fmt.Errorf("update business: %w", err)
	}
	var updated models.BusinessConfig
	if err := decodeObject(body, &updated); err != nil {
		return models.BusinessConfig{}, err
	}
	return updated, nil
}

func (c *Client) DeleteBusiness(ctx context.Context, token, id string) error {
	if _, err := c.do(ctx, token, http.MethodDelete, "/businesses/"+id, nil); err != nil {
		return fmt.Errorf("delete business: %w", err)
	}
	return nil
}

func (c *Client) ListLocations(ctx context.Context, token, businessID string) ([]models.Location, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/businesses/"+businessID+"/locations", nil)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return decodeList[models.Location](body)
}

func (c *Client) ListServiceCategories(ctx context.Context, token string) ([]models.ServiceCategory, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/businesses/service-categories", nil)
	if err != nil {
		return nil, fmt.Errorf("list service categories: %w", err)
	}
	return decodeList[models.ServiceCategory](body)
}

// ListKnownServiceIntervals returns platform-suggested defaults for the
// interval editor.
func (c *Client) ListKnownServiceIntervals(ctx context.Context, token string) ([]models.KnownServiceInterval, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/businesses/service-intervals", nil)
	if err != nil {
		return nil, fmt.Errorf("list service intervals: %w", err)
	}
	return decodeList[models.KnownServiceInterval](body)
}
