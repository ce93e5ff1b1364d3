package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	accepted := []string{"a@b.co", "jane.doe@example.com", "x+y@sub.domain.org"}
	rejected := []string{"", "plain", "a@b", "a b@c.com", "@b.com", "a@.", "a@b c.com"}

	for _, e := range accepted {
		assert.True(t, ValidateEmail(e), e)
	}
	for _, e := range rejected {
		assert.False(t, ValidateEmail(e), e)
	}
}

func TestCheckPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     PasswordStrength
	}{
		{"strong", "Passw0rd", PasswordStrength{true, true, true, true}},
		{"too short", "Pa0", PasswordStrength{false, true, true, true}},
		{"no upper", "password1", PasswordStrength{true, false, true, true}},
		{"no lower", "PASSWORD1", PasswordStrength{true, true, false, true}},
		{"no digit", "Password", PasswordStrength{true, true, true, false}},
		{"empty", "", PasswordStrength{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckPassword(tt.password)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name == "strong", got.IsStrong())
		})
	}
}

func TestValidSignInPassword(t *testing.T) {
	assert.False(t, ValidSignInPassword(""))
	assert.False(t, ValidSignInPassword("12345"))
	assert.True(t, ValidSignInPassword("123456"))
}
