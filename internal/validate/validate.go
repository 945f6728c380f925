// Package validate holds the pure input checks run before any persistence
// call. All violated rules are collected in order rather than short-circuited,
// so a client gets complete feedback in one round trip.
package validate

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"blog/internal/apperr"
)

const (
	minPasswordLen = 4
	minTitleLen    = 5
	minContentLen  = 5
)

// UserInput checks registration input. Messages match what clients key on.
func UserInput(email, password string) []apperr.Message {
	var errs []apperr.Message
	if !validEmail(email) {
		errs = append(errs, apperr.Message{Message: "Invalid email!"})
	}
	if password == "" || utf8.RuneCountInString(password) < minPasswordLen {
		errs = append(errs, apperr.Message{Message: "Invalid password!"})
	}
	return errs
}

// PostInput checks create/update input for posts.
func PostInput(title, content string) []apperr.Message {
	var errs []apperr.Message
	if strings.TrimSpace(title) == "" || utf8.RuneCountInString(title) < minTitleLen {
		errs = append(errs, apperr.Message{Message: "Invalid title!"})
	}
	if strings.TrimSpace(content) == "" || utf8.RuneCountInString(content) < minContentLen {
		errs = append(errs, apperr.Message{Message: "Invalid content!"})
	}
	return errs
}

// validEmail accepts a single RFC 5322 address with a dotted domain.
// net/mail allows display names and local-only domains, so both are
// tightened here.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at < 1 {
		return false
	}
	domain := s[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
