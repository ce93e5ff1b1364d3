package utils

import (
	"strings"
	"unicode"

	"github.com/MKhiriev/hefin/models"
)

// avatarPalette is the fixed set of avatar background colors.
var avatarPalette = [...]string{
	"#ef4444", "#f97316", "#eab308", "#22c55e",
	"#06b6d4", "#3b82f6", "#8b5cf6", "#ec4899",
}

// Initials returns the upper-cased first letter of every space-separated
// part of name.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, " ") {
		for _, r := range part {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// AvatarColor picks a palette color from the sum of the email's code points.
func AvatarColor(email string) string {
	sum := 0
	for _, r := range email {
		sum += int(r)
	}
	return avatarPalette[sum%len(avatarPalette)]
}

// NewUserProfile builds the public profile for user.
func NewUserProfile(user models.User) models.UserProfile {
	return models.UserProfile{
		ID:          user.UserID,
		Name:        user.Name,
		Email:       user.Email,
		Initials:    Initials(user.Name),
		AvatarColor: AvatarColor(user.Email),
	}
}
