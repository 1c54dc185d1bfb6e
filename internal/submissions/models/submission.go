// Package models defines the four public submission kinds. Each kind comes as
// a pair: a create request that validates and normalizes itself at the trust
// boundary, and a persisted record built from it by a pure constructor. The
// split keeps storage shape changes from silently changing validation rules.
package models

import (
	"time"
)

// Statuses assigned at creation. No endpoint in this service mutates them;
// review happens through administrative tooling outside this codebase.
const (
	StatusPending = "pending"
	StatusUnread  = "unread"
)

// Submission is the base shape shared by donation, membership, and volunteer
// records. Invariants:
//   - ID is a generated UUID, unique within the collection, immutable
//   - Phone is stored normalized (exactly 10 digits, first digit 6-9)
//   - CreatedAt is set once, in UTC
type Submission struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone" bson:"phone"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	Status    string    `json:"status" bson:"status"`
}

// Created implements store.Record.
func (s Submission) Created() time.Time {
	return s.CreatedAt
}

func newSubmission(id, name, email, phone string, now time.Time) Submission {
	return Submission{
		ID:        id,
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now.UTC(),
		Status:    StatusPending,
	}
}
