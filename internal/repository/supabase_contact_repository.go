package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/database"
)

const contactTable = "contact_messages"

type SupabaseContactRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseContactRepository(client *database.SupabaseClient) repository.ContactRepository {
	return &SupabaseContactRepository{
		client: client,
	}
}

func (r *SupabaseContactRepository) Create(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	insert := *msg
	insert.ID = 0
	insert.CreatedAt = nil
	data, _, err := r.client.GetClient().From(contactTable).
		Insert(&insert, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	var created []model.ContactMessage
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to decode contact message: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("failed to save contact message: empty response")
	}
	return &created[0], nil
}

func (r *SupabaseContactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, _, err := r.client.GetClient().From(contactTable).
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact messages: %w", err)
	}

	messages := []model.ContactMessage{}
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}
	return messages, nil
}
