package ui

import "strings"

// FieldErrors maps form field names to inline error messages. An empty map
// means the form is valid.
type FieldErrors map[string]string

// LoginForm is the login page form.
type LoginForm struct {
	Email    string
	Password string
}

// Validate returns inline errors for missing or malformed fields.
func (f *LoginForm) Validate() FieldErrors {
	errs := FieldErrors{}
	email := strings.TrimSpace(f.Email)
	if email == "" {
		errs["email"] = "Please enter your email address."
	} else if !ValidateEmail(email) {
		errs["email"] = "Please enter a valid email address."
	}
	if strings.TrimSpace(f.Password) == "" {
		errs["password"] = "Please enter your password."
	}
	return errs
}

// SignUpForm is the registration page form.
type SignUpForm struct {
	Name      string
	Email     string
	Password  string
	ImagePath string
}

// Validate returns inline errors for missing or malformed fields.
func (f *SignUpForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Please enter your full name"
	}
	email := strings.TrimSpace(f.Email)
	if email == "" {
		errs["email"] = "Please enter your email address"
	} else if !ValidateEmail(email) {
		errs["email"] = "Please enter a valid email address"
	}
	if f.Password == "" {
		errs["password"] = "Please enter your password"
	} else if len(f.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	}
	return errs
}
