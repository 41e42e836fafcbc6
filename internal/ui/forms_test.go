package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginFormValidate(t *testing.T) {
	form := LoginForm{Email: "user@example.com", Password: "secret123"}
	assert.Empty(t, form.Validate())

	form = LoginForm{}
	errs := form.Validate()
	assert.Equal(t, "Please enter your email address.", errs["email"])
	assert.Equal(t, "Please enter your password.", errs["password"])

	form = LoginForm{Email: "not-an-email", Password: "secret123"}
	errs = form.Validate()
	assert.Equal(t, "Please enter a valid email address.", errs["email"])
	assert.NotContains(t, errs, "password")
}

func TestSignUpFormValidate(t *testing.T) {
	form := SignUpForm{Name: "Jane Doe", Email: "jane@example.com", Password: "longenough"}
	assert.Empty(t, form.Validate())

	form = SignUpForm{}
	errs := form.Validate()
	assert.Equal(t, "Please enter your full name", errs["name"])
	assert.Equal(t, "Please enter your email address", errs["email"])
	assert.Equal(t, "Please enter your password", errs["password"])

	form = SignUpForm{Name: "Jane", Email: "jane@example.com", Password: "short"}
	errs = form.Validate()
	assert.Equal(t, "Password must be at least 8 characters", errs["password"])
}

func TestAuthScreen(t *testing.T) {
	assert.True(t, authScreen(ScreenLanding))
	assert.True(t, authScreen(ScreenLogin))
	assert.True(t, authScreen(ScreenSignUp))
	assert.False(t, authScreen(ScreenDashboard))
	assert.False(t, authScreen(ScreenTest))
}
