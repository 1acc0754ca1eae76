package repo

import (
	"context"

	"github.com/autoshowroom/backend/internal/models"
)

func (r *GormRepo) CreateContact(ctx context.Context, contact *models.Contact) error {
	return r.DB.WithContext(ctx).Create(contact).Error
}
