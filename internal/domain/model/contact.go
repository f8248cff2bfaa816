package model

import (
	"net/mail"
	"strings"
	"time"
)

// ContactMessage mirrors the contact_messages table
type ContactMessage struct {
	ID        int64      `json:"id,omitempty"`
	FullName  string     `json:"full_name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	Status    string     `json:"status"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ContactRequest is the contact form body
type ContactRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// ContactRequiredMessage is returned when a required contact field is missing
const ContactRequiredMessage = "Nama, email, subjek, dan pesan wajib diisi"

// ContactSuccessMessage is returned after a message is stored
const ContactSuccessMessage = "Pesan berhasil dikirim!"

// Validate checks the required fields and the email address
func (r *ContactRequest) Validate() error {
	for _, v := range []string{r.FullName, r.Email, r.Subject, r.Message} {
		if strings.TrimSpace(v) == "" {
			return &ValidationError{Field: "contact", Message: ContactRequiredMessage}
		}
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(r.Email)); err != nil {
		return &ValidationError{Field: "email", Message: "Format email tidak valid"}
	}
	return nil
}

// ToMessage builds the record to insert
func (r *ContactRequest) ToMessage() *ContactMessage {
	return &ContactMessage{
		FullName: strings.TrimSpace(r.FullName),
		Email:    strings.TrimSpace(r.Email),
		Phone:    optional(r.Phone),
		Subject:  strings.TrimSpace(r.Subject),
		Message:  strings.TrimSpace(r.Message),
		Status:   ContactStatusNew,
	}
}

// ContactResponse is the contact submit response
type ContactResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    *ContactMessage `json:"data"`
}
