package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact() ContactCreate {
	return ContactCreate{
		Name:    "Neha Gupta",
		Email:   "neha@example.com",
		Subject: "Volunteering query",
		Message: "I would like to know more about upcoming drives.",
	}
}

func TestContactCreateValidate(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		req := validContact()
		require.NoError(t, req.Validate())
	})

	t.Run("subject bounds", func(t *testing.T) {
		req := validContact()
		req.Subject = "Hi"
		require.Error(t, req.Validate())

		req = validContact()
		req.Subject = strings.Repeat("s", 201)
		require.Error(t, req.Validate())
	})

	t.Run("message bounds", func(t *testing.T) {
		req := validContact()
		req.Message = "short"
		require.Error(t, req.Validate())

		req = validContact()
		req.Message = strings.Repeat("m", 2001)
		require.Error(t, req.Validate())

		req = validContact()
		req.Message = strings.Repeat("m", 2000)
		require.NoError(t, req.Validate())
	})
}

func TestNewContact(t *testing.T) {
	req := validContact()
	require.NoError(t, req.Validate())

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	c := NewContact(req, "id-3", now)

	assert.Equal(t, "id-3", c.ID)
	assert.Equal(t, StatusUnread, c.Status)
	assert.Equal(t, time.UTC, c.CreatedAt.Location())
	assert.True(t, c.CreatedAt.Equal(now))
}
