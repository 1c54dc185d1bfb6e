// Package email validates email address syntax at trust boundaries.
// No deliverability checks are performed.
package email

import (
	"net/mail"
	"strings"
)

// Valid reports whether s is a syntactically valid bare email address
// (local@domain). Display-name forms ("A <a@b.c>") are rejected because form
// submissions carry the address alone. The domain must contain a dot so
// single-label hosts like "user@localhost" don't slip through public forms.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at < 1 {
		return false
	}
	domain := s[at+1:]
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}
