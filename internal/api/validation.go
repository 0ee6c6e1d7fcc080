package api

import (
	"regexp"
	"strings"
)

var (
	emailRegex       = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	youtubeLinkRegex = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+$`)
)

var validRoles = []string{"ROLE_ADMIN", "ROLE_USER"}

// validateUserParameters checks a registration payload. Returns the first
// failing rule's message, or "" when valid.
func validateUserParameters(username, email, password, role string) string {
	if username == "" || email == "" || password == "" || role == "" {
		return "Fill in the required fields"
	}
	if strings.TrimSpace(username) == "" {
		return "Invalid username"
	}
	if !emailRegex.MatchString(email) {
		return "Invalid email"
	}
	if len(password) < 6 {
		return "The password must be at least 6 characters long"
	}
	for _, r := range validRoles {
		if role == r {
			return ""
		}
	}
	return "Invalid role"
}

// validateCredentials checks a login payload before any store access.
func validateCredentials(email, password string) string {
	if email == "" || password == "" {
		return "Please provide email and password"
	}
	if strings.TrimSpace(email) == "" || !emailRegex.MatchString(email) {
		return "Invalid email format"
	}
	if strings.TrimSpace(password) == "" {
		return "Please provide a password"
	}
	return ""
}

// validateMusicFields checks the editable music columns shared by create
// and update. link_cifra is deliberately unvalidated.
func validateMusicFields(title, artiste, category, linkYT string) string {
	if strings.TrimSpace(title) == "" {
		return "Invalid title"
	}
	if strings.TrimSpace(artiste) == "" {
		return "Invalid artiste name"
	}
	if strings.TrimSpace(category) == "" {
		return "Invalid category"
	}
	if !youtubeLinkRegex.MatchString(linkYT) {
		return "Invalid YouTube link"
	}
	return ""
}
