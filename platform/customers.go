package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/aamagency-dev/sms-frontend/models"
)

func (c *Client) ListCustomers(ctx context.Context, token string) ([]models.Customer, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/customers/", nil)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return decodeList[models.Customer](body)
}

func (c *Client) GetCustomer(ctx context.Context, token, id string) (models.Customer, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/customers/"+id, nil)
	if err != nil {
		return models.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	var customer models.Customer
	if err := decodeObject(body, &customer); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (c *Client) CreateCustomer(ctx context.Context, token string, customer models.Customer) (models.Customer, error) {
	body, err := c.do(ctx, token, http.MethodPost, "/customers/", customer)
	if err != nil {
		return models.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	var created models.Customer
	if err := decodeObject(body, &created); err != nil {
		return models.Customer{}, err
	}
	return created, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, token, id string, customer models.Customer) (models.Customer, error) {
	body, err := c.do(ctx, token, http.MethodPut, "/customers/"+id, customer)
	if err != nil {
		return models.Customer{}, fmt.Errorf("update customer: %w", err)
	}
	var updated models.Customer
	if err := decodeObject(body, &updated); err != nil {
		return models.Customer{}, err
	}
	return updated, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, token, id string) error {
	if _, err := c.do(ctx, token, http.MethodDelete, "/customers/"+id, nil); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// ImportCustomers streams an uploaded CSV through to the platform and
// returns its structured import result as-is.
func (c *Client) ImportCustomers(ctx context.Context, token, filename string, file io.Reader) (models.ImportResult, error) {
	body, err := c.doMultipart(ctx, token, "/customers/import", "file", filename, file, nil)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("import customers: %w", err)
	}
	var result models.ImportResult
	if err := decodeObject(body, &result); err != nil {
		return models.ImportResult{}, err
	}
	return result, nil
}

// ExportCustomers fetches the generated CSV blob plus its filename.
func (c *Client) ExportCustomers(ctx context.Context, token string) ([]byte, string, error) {
	data, filename, err := c.doDownload(ctx, token, "/customers/export")
	if err != nil {
		return nil, "", fmt.Errorf("export customers: %w", err)
	}
	if filename == "" {
		filename = "customers.csv"
	}
	return data, filename, nil
}
