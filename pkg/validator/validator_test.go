package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePost(t *testing.T) {
	tests := []struct {
		name            string
		title           string
		content         string
		imageRef        string
		allowEmptyImage bool
		wantFields      []string
	}{
		{"valid input", "Hello World", "This is a test post", "images/a.png", false, nil},
		{"title one short of the minimum", "Hiya", "This is a test post", "images/a.png", false, []string{"title"}},
		{"title at the minimum", "Hello", "This is a test post", "images/a.png", false, nil},
		{"short content", "Hello World", "tiny", "images/a.png", false, []string{"content"}},
		{"missing image on create", "Hello World", "This is a test post", "", false, []string{"image_url"}},
		{"missing image allowed on update", "Hello World", "This is a test post", "", true, nil},
		{"everything wrong at once", "", "", "", false, []string{"title", "content", "image_url"}},
		{"whitespace does not count", "    ", "   \t  ", "  ", false, []string{"title", "content", "image_url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePost(tt.title, tt.content, tt.imageRef, tt.allowEmptyImage)

			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestValidateSignup(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		userName   string
		password   string
		wantFields []string
	}{
		{"valid input", "a@example.com", "Alice", "secret1", nil},
		{"bad email", "not-an-email", "Alice", "secret1", []string{"email"}},
		{"short password", "a@example.com", "Alice", "abcd", []string{"password"}},
		{"missing name", "a@example.com", "", "secret1", []string{"name"}},
		{"all wrong", "", "", "", []string{"email", "name", "password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateSignup(tt.email, tt.userName, tt.password)

			assert.Len(t, errs, len(tt.wantFields))
			for _, field := range tt.wantFields {
				assert.Contains(t, errs, field)
			}
		})
	}
}

func TestValidateStatus(t *testing.T) {
	assert.False(t, ValidateStatus("shipping").HasErrors())
	assert.True(t, ValidateStatus("").HasErrors())
	assert.True(t, ValidateStatus("   ").HasErrors())
}
