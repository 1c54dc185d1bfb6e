package models

import (
	"strings"
	"time"

	dErrors "github.com/TdivyanshC/Swadeshi-Hind-Party/pkg/domain-errors"
)

// MembershipType is the membership tier chosen on the application form.
// Construct via ParseMembershipType at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type MembershipType string

const (
	MembershipIndividual MembershipType = "individual"
	MembershipFamily     MembershipType = "family"
	MembershipStudent    MembershipType = "student"
)

var validMembershipTypes = map[MembershipType]bool{
	MembershipIndividual: true,
	MembershipFamily:     true,
	MembershipStudent:    true,
}

// ParseMembershipType constructs a MembershipType from external input.
func ParseMembershipType(s string) (MembershipType, error) {
	t := MembershipType(s)
	if !validMembershipTypes[t] {
		return "", dErrors.New(dErrors.CodeValidation,
			"membershipType must be one of individual, family, student")
	}
	return t, nil
}

func (t MembershipType) String() string {
	return string(t)
}

// Membership is the persisted record for one membership application.
// MembershipNumber is a human-facing reference derived from epoch seconds at
// creation; it is distinct from ID and not backed by a uniqueness constraint.
type Membership struct {
	Submission       `bson:",inline"`
	MembershipType   MembershipType `json:"membershipType" bson:"membershipType"`
	Address          string         `json:"address" bson:"address"`
	MembershipNumber string         `json:"membershipNumber" bson:"membershipNumber"`
}

// MembershipCreate is the raw payload of POST /api/memberships.
type MembershipCreate struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	MembershipType string `json:"membershipType"`
	Address        string `json:"address"`

	// Parsed values (populated by Validate)
	parsedType MembershipType
}

// Validate normalizes the request in place and reports the first violated
// field constraint. Implements httputil.Validatable.
func (r *MembershipCreate) Validate() error {
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
	t, err := ParseMembershipType(r.MembershipType)
	if err != nil {
		return err
	}
	r.parsedType = t
	return validateLength("address", r.Address, 10, 500)
}

// ParsedType returns the validated membership type.
func (r *MembershipCreate) ParsedType() MembershipType {
	return r.parsedType
}

// NewMembership builds the persisted record from a validated request plus
// generated identifiers and timestamp. Pure, no I/O.
func NewMembership(req MembershipCreate, id, membershipNumber string, now time.Time) Membership {
	return Membership{
		Submission:       newSubmission(id, req.Name, req.Email, req.Phone, now),
		MembershipType:   req.parsedType,
		Address:          req.Address,
		MembershipNumber: membershipNumber,
	}
}
