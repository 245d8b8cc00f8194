package validator

import (
	"net/mail"
	"strings"
)

const (
	// Minimum lengths carried over from the original API contract.
	MinTitleLen    = 5
	MinContentLen  = 5
	MinPasswordLen = 5
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateSignup(email, name, password string) ValidationErrors {
	errs := make(ValidationErrors)

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		errs.Add("name", "Name is required")
	} else if len(name) > 100 {
		errs.Add("name", "Name is too long")
	}

	if len(password) < MinPasswordLen {
		errs.Add("password", "Password is too short")
	}

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

// ValidatePost checks a create or update payload. Every violated field
// is reported, not just the first. An empty imageRef is only allowed
// when allowEmptyImage is set (update keeps the stored image then).
func ValidatePost(title, content, imageRef string, allowEmptyImage bool) ValidationErrors {
	errs := make(ValidationErrors)

	if len(strings.TrimSpace(title)) < MinTitleLen {
		errs.Add("title", "Title is too short")
	}

	if len(strings.TrimSpace(content)) < MinContentLen {
		errs.Add("content", "Content is too short")
	}

	if strings.TrimSpace(imageRef) == "" && !allowEmptyImage {
		errs.Add("image_url", "Image is required")
	}

	return errs
}

func ValidateStatus(status string) ValidationErrors {
	errs := make(ValidationErrors)

	status = strings.TrimSpace(status)
	if status == "" {
		errs.Add("status", "Status is required")
	} else if len(status) > 200 {
		errs.Add("status", "Status is too long")
	}

	return errs
}
