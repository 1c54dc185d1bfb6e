package models

import (
	"strings"
	"time"
)

// Volunteer is the persisted record for one volunteer registration.
// VolunteerID is a human-facing reference derived from epoch seconds at
// creation, distinct from the primary ID.
type Volunteer struct {
	Submission   `bson:",inline"`
	Skills       string `json:"skills" bson:"skills"`
	Availability string `json:"availability" bson:"availability"`
	VolunteerID  string `json:"volunteerId" bson:"volunteerId"`
}

// VolunteerCreate is the raw payload of POST /api/volunteers.
type VolunteerCreate struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Skills       string `json:"skills"`
	Availability string `json:"availability"`
}

// Validate normalizes the request in place and reports the first violated
// field constraint. Implements httputil.Validatable.
func (r *VolunteerCreate) Validate() error {
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
	if err := validateLength("skills", r.Skills, 10, 1000); err != nil {
		return err
	}
	return validateLength("availability", r.Availability, 5, 200)
}

// NewVolunteer builds the persisted record from a validated request plus
// generated identifiers and timestamp. Pure, no I/O.
func NewVolunteer(req VolunteerCreate, id, volunteerID string, now time.Time) Volunteer {
	return Volunteer{
		Submission:   newSubmission(id, req.Name, req.Email, req.Phone, now),
		Skills:       req.Skills,
		Availability: req.Availability,
		VolunteerID:  volunteerID,
	}
}
