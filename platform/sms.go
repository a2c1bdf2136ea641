package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aamagency-dev/sms-frontend/models"
)

func (c *Client) SendSms(ctx context.Context, token string, input models.SendSmsInput) error {
	if _, err := c.do(ctx, token, http.MethodPost, "/sms/send", input); err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	return nil
}

func (c *Client) SendBulkSms(ctx context.Context, token string, input models.SendBulkSmsInput) error {
	if _, err := c.do(ctx, token, http.MethodPost, "/sms/send-bulk", input); err != nil {
		return fmt.Errorf("send bulk sms: %w", err)
	}
	return nil
}

func (c *Client) SendManualSms(ctx context.Context, token string, input models.ManualSmsInput) error {
	if _, err := c.do(ctx, token, http.MethodPost, "/sms/send-manual", input); err != nil {
		return fmt.Errorf("send manual sms: %w", err)
	}
	return nil
}

func (c *Client) ListConversations(ctx context.Context, token string) ([]models.Conversation, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/sms/conversations", nil)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return decodeList[models.Conversation](body)
}

func (c *Client) GetConversation(ctx context.Context, token, phone string) ([]models.ConversationMessage, error) {
	body, err := c.do(ctx, token, http.MethodGet, "/sms/conversations/"+url.PathEscape(phone), nil)
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return decodeList[models.ConversationMessage](body)
}
