package models

import (
	"strings"
	"time"

	dErrors "github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/domain-errors"
)

// Donation is the persisted record for one donation submission.
// Amount is kept verbatim as entered; no numeric parsing happens here.
type Donation struct {
	Submission `bson:",inline"`
	Amount     string `json:"amount" bson:"amount"`
	Message    string `json:"message,omitempty" bson:"message,omitempty"`
}

// DonationCreate is the raw payload of POST /api/donations.
type DonationCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Amount  string `json:"amount"`
	Message string `json:"message"`
}

// Validate normalizes the request in place and reports the first violated
// field constraint. Implements httputil.Validatable.
func (r *DonationCreate) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if err := validateName(r.Name); err != nil {
		return err
	}
	r.Email = strings.TrimSpace(r.Email)
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	phone, err := NormalizePhone(r.Phone)
	if err != nil {
		return err
	}
	r.Phone = phone
	if r.Amount == "" {
		return dErrors.New(dErrors.CodeValidation, "amount is required")
	}
	if r.Message != "" {
		if err := validateLength("message", r.Message, 0, 1000); err != nil {
			return err
		}
	}
	return nil
}

// NewDonation builds the persisted record from a validated request plus
// generated identifier and timestamp. Pure, no I/O.
func NewDonation(req DonationCreate, id string, now time.Time) Donation {
	return Donation{
		Submission: newSubmission(id, req.Name, req.Email, req.Phone, now),
		Amount:     req.Amount,
		Message:    req.Message,
	}
}
