// validate.go input validation helpers
package main

import (
	"net/mail"
	"net/url"
)

type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	f[field] = msg
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

func (f fieldErrors) requireString(field, value string) {
	if value == "" {
		f.add(field, "is required")
	}
}

func (f fieldErrors) checkEmail(field, value string) {
	if value == "" {
		f.add(field, "is required")
		return
	}
	if !validEmail(value) {
		f.add(field, "must be a valid email address")
	}
}

// checkURL validates nullable URL columns; null is fine, garbage is not.
func (f fieldErrors) checkURL(field string, value *string) {
	if value == nil {
		return
	}
	if !validURL(*value) {
		f.add(field, "must be an absolute URL")
	}
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	// Reject display-name forms like `Jane <jane@example.com>`.
	return err == nil && addr.Address == s
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.IsAbs() && u.Host != ""
}
