package platform

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aamagency-dev/sms-frontend/models"
)

// HealthDetailed fetches system resource and service-status metrics. The
// endpoint is unauthenticated; the background monitor calls it with no token.
func (c *Client) HealthDetailed(ctx context.Context) (models.HealthDetail, error) {
	body, err := c.do(ctx, "", http.MethodGet, "/health/detailed", nil)
	if err != nil {
		return models.HealthDetail{}, fmt.Errorf("health detailed: %w", err)
	}
	var detail models.HealthDetail
	if err := decodeObject(body, &detail); err != nil {
		return models.HealthDetail{}, err
	}
	return detail, nil
}
