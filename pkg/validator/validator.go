package validator

import "strings"

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// Message returns a single human-readable message, for callers that surface
// one error line instead of the per-field map.
func (v ValidationErrors) Message() string {
	for _, msg := range v {
		return msg
	}
	return ""
}

func ValidateNewUser(username, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(username) == "" || password == "" {
		errs.Add("credentials", "must give both username and password")
		return errs
	}

	if len(username) < 3 {
		errs.Add("username", "username must be at least 3 characters long")
	}
	if len(password) < 3 {
		errs.Add("password", "password must be at least 3 characters long")
	}

	return errs
}

func ValidateLogin(username, password string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(username) == "" || password == "" {
		errs.Add("credentials", "must give both username and password")
	}

	return errs
}

// ValidateNewBlog checks the fields required on create. Author is optional,
// likes default to zero upstream.
func ValidateNewBlog(title, url string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(title) == "" {
		errs.Add("title", "title is required")
	}
	if strings.TrimSpace(url) == "" {
		errs.Add("url", "url is required")
	}

	return errs
}
