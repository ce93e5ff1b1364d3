package validators

import "regexp"

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether email has the local@domain.tld shape the site
// accepts.
func ValidateEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// PasswordStrength is the result of checking a sign-up password.
type PasswordStrength struct {
	HasLength bool `json:"hasLength"`
	HasUpper  bool `json:"hasUpper"`
	HasLower  bool `json:"hasLower"`
	HasNumber bool `json:"hasNumber"`
}

// IsStrong reports whether every requirement holds.
func (p PasswordStrength) IsStrong() bool {
	return p.HasLength && p.HasUpper && p.HasLower && p.HasNumber
}

// CheckPassword evaluates password against the sign-up requirements: at
// least 8 characters, an ASCII upper-case letter, a lower-case letter and
// a digit.
func CheckPassword(password string) PasswordStrength {
	var s PasswordStrength
	s.HasLength = len([]rune(password)) >= 8
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			s.HasUpper = true
		case r >= 'a' && r <= 'z':
			s.HasLower = true
		case r >= '0' && r <= '9':
			s.HasNumber = true
		}
	}
	return s
}

// minSignInPasswordLength is the shortest password the sign-in form accepts.
const minSignInPasswordLength = 6

// ValidSignInPassword reports whether password passes the sign-in check.
func ValidSignInPassword(password string) bool {
	return len([]rune(password)) >= minSignInPasswordLength
}
