package models

import "time"

type ScheduledSms struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	Phone        string    `json:"phone"`
	Message      string    `json:"message"`
	SendAt       time.Time `json:"send_at"`
	Status       string    `json:"status"` // scheduled, sent, cancelled, failed
}

type SendSmsInput struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type SendBulkSmsInput struct {
	CustomerIDs []string `json:"customer_ids"`
	Message     string   `json:"message"`
}

// ManualSmsInput is a reply typed into a conversation view.
type ManualSmsInput struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type Conversation struct {
	Phone         string    `json:"phone"`
	CustomerName  string    `json:"customer_name,omitempty"`
	LastMessage   string    `json:"last_message,omitempty"`
	LastMessageAt time.Time `json:"last_message_at"`
	UnreadCount   int       `json:"unread_count"`
}

type ConversationMessage struct {
	ID        string    `json:"id"`
	Direction string    `json:"direction"` // inbound or outbound
	Body      string    `json:"body"`
	SentAt    time.Time `json:"sent_at"`
}
