package models

import (
	"strings"
	"time"
)

// Contact is the persisted record for one contact message. It is narrower
// than the other kinds: no phone number, and its status starts as "unread"
// rather than "pending".
type Contact struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	Status    string    `json:"status" bson:"status"`
}

// Created implements store.Record.
func (c Contact) Created() time.Time {
	return c.CreatedAt
}

// ContactCreate is the raw payload of POST /api/contact.
type ContactCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate normalizes the request in place and reports the first violated
// field constraint. Implements httputil.Validatable.
func (r *ContactCreate) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := validateName(r.Name); err != nil {
		return err
	}
	r.Email = strings.TrimSpace(r.Email)
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if err := validateLength("subject", r.Subject, 5, 200); err != nil {
		return err
	}
	return validateLength("message", r.Message, 10, 2000)
}

// NewContact builds the persisted record from a validated request plus
// generated identifier and timestamp. Pure, no I/O.
func NewContact(req ContactCreate, id string, now time.Time) Contact {
	return Contact{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: now.UTC(),
		Status:    StatusUnread,
	}
}
