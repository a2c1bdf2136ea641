package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/aamagency-dev/sms-frontend/models"
)

// ImportPriceList uploads a price-list CSV for a business. During business
// creation this runs as a follow-up to the create call; its failure is
// reported as a warning and never rolls the created business back.
func (c *Client) ImportPriceList(ctx context.Context, token, businessID, filename string, file io.Reader) (models.ImportResult, error) {
	extra := map[string]string{"business_id": businessID}
	body, err := c.doMultipart(ctx, token, "/pricelist/import", "file", filename, file, extra)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("import price list: %w", err)
	}
	var result models.ImportResult
	if err := decodeObject(body, &result); err != nil {
		return models.ImportResult{}, err
	}
	return result, nil
}

func (c *Client) ExportPriceList(ctx context.Context, token, businessID string) ([]byte, string, error) {
	data, filename, err := c.doDownload(ctx, token, "/pricelist/export?business_id="+businessID)
	if err != nil {
		return nil, "", fmt.Errorf("export price list: %w", err)
	}
	if filename == "" {
		filename = "pricelist.csv"
	}
	return data, filename, nil
}

func (c *Client) GetPriceList(ctx context.Context, token, businessID string) ([]models.PriceListItem, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/pricelist/"+businessID, nil)
	if err != nil {
		return nil, fmt.Errorf("get price list: %w", err)
	}
	return decodeList[models.PriceListItem](body)
}
