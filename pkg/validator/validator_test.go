package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNewUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  string
	}{
		{"valid", "mluukkai", "salainen", ""},
		{"missing username", "", "salainen", "must give both username and password"},
		{"missing password", "mluukkai", "", "must give both username and password"},
		{"missing both", "", "", "must give both username and password"},
		{"short username", "ml", "salainen", "username must be at least 3 characters long"},
		{"short password", "mluukkai", "sa", "password must be at least 3 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateNewUser(tt.username, tt.password)
			if tt.wantErr == "" {
				assert.False(t, errs.HasErrors())
				return
			}
			assert.True(t, errs.HasErrors())
			assert.Equal(t, tt.wantErr, errs.Message())
		})
	}
}

func TestValidateNewBlog(t *testing.T) {
	t.Parallel()

	assert.False(t, ValidateNewBlog("title", "http://example.com").HasErrors())

	errs := ValidateNewBlog("", "http://example.com")
	assert.Equal(t, "title is required", errs["title"])

	errs = ValidateNewBlog("title", "")
	assert.Equal(t, "url is required", errs["url"])

	errs = ValidateNewBlog("", "")
	assert.Len(t, errs, 2)
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	assert.False(t, ValidateLogin("mluukkai", "salainen").HasErrors())
	assert.True(t, ValidateLogin("", "salainen").HasErrors())
	assert.True(t, ValidateLogin("mluukkai", "").HasErrors())
}
