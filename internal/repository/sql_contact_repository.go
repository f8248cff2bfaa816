package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/model"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/domain/repository"
	"github.com/Marcellinus08/UMKM-Tasikmalaya/internal/infrastructure/database"
)

type SQLContactRepository struct {
	client database.SQLClient
}

func NewSQLContactRepository(client database.SQLClient) repository.ContactRepository {
	return &SQLContactRepository{
		client: client,
	}
}

const contactColumns = `id, full_name, email, phone, subject, message, status, created_at`

func scanContact(s rowScanner) (*model.ContactMessage, error) {
	var msg model.ContactMessage
	var phone, createdAt sql.NullString
	if err := s.Scan(&msg.ID, &msg.FullName, &msg.Email, &phone, &msg.Subject, &msg.Message, &msg.Status, &createdAt); err != nil {
		return nil, err
	}
	msg.Phone = nullString(phone)
	if createdAt.Valid {
		if t, err := time.Parse(time.RFC3339Nano, createdAt.String); err == nil {
			msg.CreatedAt = &t
		}
	}
	return &msg, nil
}

func (r *SQLContactRepository) Create(ctx context.Context, msg *model.ContactMessage) (*model.ContactMessage, error) {
	d := r.client.Dialect()
	status := msg.Status
	if status == "" {
		status = model.ContactStatusNew
	}

	query := fmt.Sprintf(
		`INSERT INTO contact_messages (full_name, email, phone, subject, message, status) VALUES (%s, %s, %s, %s, %s, %s) RETURNING %s`,
		d.Placeholder(1), d.Placeholder(2), d.Placeholder(3), d.Placeholder(4), d.Placeholder(5), d.Placeholder(6), contactColumns,
	)

	created, err := scanContact(r.client.GetDB().QueryRowContext(ctx, query,
		msg.FullName, msg.Email, msg.Phone, msg.Subject, msg.Message, status))
	if err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}
	return created, nil
}

func (r *SQLContactRepository) List(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := r.client.GetDB().QueryContext(ctx,
		`SELECT `+contactColumns+` FROM contact_messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch contact messages: %w", err)
	}
	defer rows.Close()

	messages := []model.ContactMessage{}
	for rows.Next() {
		msg, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, *msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contact messages: %w", err)
	}
	return messages, nil
}
