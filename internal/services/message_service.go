// Package services – MessageService
//
// This file implements the MessageService for the contact form: visitors send
// a message, staff list them. There is no update or delete.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/mealmesh/food-delivery-backend/internal/domain"
	"github.com/mealmesh/food-delivery-backend/internal/repo"
)

// SendMessageInput carries the caller-supplied contact-form fields.
type SendMessageInput struct {
	SenderName  string
	SenderEmail string
	Body        string
}

// MessageService provides contact-message operations.
type MessageService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
}

// NewMessageService constructs a MessageService.
func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{DB: db}
}

// Send persists a contact message. All fields are optional except the body;
// a blank body returns ErrMessageInvalid and nothing is persisted.
func (s *MessageService) Send(ctx context.Context, in SendMessageInput) (*domain.Message, error) {
	if strings.TrimSpace(in.Body) == "" {
		return nil, ErrMessageInvalid
	}
	m := &domain.Message{
		SenderName:  strings.TrimSpace(in.SenderName),
		SenderEmail: strings.TrimSpace(in.SenderEmail),
		Body:        in.Body,
	}
	return repo.CreateMessage(ctx, s.DB, m)
}

// List returns all contact messages, oldest first.
func (s *MessageService) List(ctx context.Context) ([]domain.Message, error) {
	return repo.ListMessages(ctx, s.DB)
}
