package platform

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aamagency-dev/sms-frontend/models"
)

func (c *Client) DashboardOverview(ctx context.Context, token string) (models.DashboardOverview, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/dashboard/overview", nil)
	if err != nil {
		return models.DashboardOverview{}, fmt.Errorf("dashboard overview: %w", err)
	}
	var overview models.DashboardOverview
	if err := decodeObject(body, &overview); err != nil {
		return models.DashboardOverview{}, err
	}
	return overview, nil
}

func (c *Client) AdminOverview(ctx context.Context, token string) (models.AdminOverview, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/dashboard/admin/overview", nil)
	if err != nil {
		return models.AdminOverview{}, fmt.Errorf("admin overview: %w", err)
	}
	var overview models.AdminOverview
	if err := decodeObject(body, &overview); err != nil {
		return models.AdminOverview{}, err
	}
	return overview, nil
}

func (c *Client) RecentCustomers(ctx context.Context, token string) ([]models.RecentCustomer, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/dashboard/customers/recent", nil)
	if err != nil {
		return nil, fmt.Errorf("recent customers: %w", err)
	}
	return decodeList[models.RecentCustomer](body)
}

func (c *Client) ScheduledSms(ctx context.Context, token string) ([]models.ScheduledSms, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/dashboard/sms/scheduled", nil)
	if err != nil {
		return nil, fmt.Errorf("scheduled sms: %w", err)
	}
	return decodeList[models.ScheduledSms](body)
}

func (c *Client) CancelScheduledSms(ctx context.Context, token, id string) error {
	if _, err := c.do(ctx, token, http.MethodPost, "/dashboard/sms/cancel/"+id, nil); err != nil {
		return fmt.Errorf("cancel scheduled sms: %w", err)
	}
	return nil
}
