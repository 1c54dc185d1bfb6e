// Package idgen produces the two kinds of identifiers submissions carry: a
// random UUID primary id, and human-facing reference numbers derived from the
// creation time.
package idgen

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Reference number prefixes.
const (
	MembershipPrefix = "SHP"
	VolunteerPrefix  = "VOL"
)

// NewSubmissionID returns a fresh random identifier for the id field of any
// record. UUID-class uniqueness, never sequential.
func NewSubmissionID() string {
	return uuid.NewString()
}

// ReferenceNumber returns prefix + seconds-since-epoch for the given instant.
// Second resolution is deliberate for compatibility with existing reference
// numbers in the field: two creations within the same second produce the same
// reference. The primary id remains the uniqueness guarantee.
func ReferenceNumber(prefix string, now time.Time) string {
	return prefix + strconv.FormatInt(now.Unix(), 10)
}
