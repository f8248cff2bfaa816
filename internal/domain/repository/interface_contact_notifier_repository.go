package repository

import (
	"context"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
)

// ContactNotifierRepository publishes new contact messages to interested consumers
type ContactNotifierRepository interface {
	NotifyContact(ctx context.Context, msg *model.ContactMessage) error
}
