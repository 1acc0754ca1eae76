package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/autoshowroom/backend/internal/models"
	"github.com/autoshowroom/backend/internal/mykafka"
	"github.com/autoshowroom/backend/internal/transport"
)

type ContactRepo interface {
	CreateContact(ctx context.Context, contact *models.Contact) error
}

type ContactService struct {
	Repo   ContactRepo
	Events mykafka.Publisher
}

func (s *ContactService) Submit(ctx context.Context, req transport.ContactRequest) (*models.Contact, error) {
	contact := transport.ToContactModel(req)
	if err := s.Repo.CreateContact(ctx, &contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	publish(ctx, s.Events, mykafka.TopicContacts, strconv.FormatUint(uint64(contact.ID), 10), "contact_submitted", map[string]any{
		"id":           contact.ID,
		"full_name":    contact.FullName,
		"email":        contact.Email,
		"phone_number": contact.PhoneNumber,
		"request_type": contact.RequestType,
		"car_type":     contact.CarType,
	})
	return &contact, nil
}
