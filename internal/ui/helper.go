package ui

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[\w-]+(\.[\w-]+)*@([\w-]+\.)+[a-zA-Z]{2,7}$`)

// ValidateEmail reports whether the address looks deliverable.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Initials returns up to two initials from a display name, for the avatar
// fallback.
func Initials(name string) string {
	if name == "" {
		return ""
	}
	var initials strings.Builder
	for _, word := range strings.Fields(name) {
		initials.WriteString(string([]rune(word)[0]))
		if initials.Len() >= 2 {
			break
		}
	}
	s := []rune(initials.String())
	if len(s) > 2 {
		s = s[:2]
	}
	return strings.ToUpper(string(s))
}
