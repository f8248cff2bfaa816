package repository

import (
	"context"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error)
	// List returns all messages, newest first
	List(ctx context.Context) ([]model.ContactMessage, error)
}
