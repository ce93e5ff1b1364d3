package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayloadCipher_EmptySecret(t *testing.T) {
	_, err := NewPayloadCipher("")
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestPayloadCipher_RoundTrip(t *testing.T) {
	c, err := NewPayloadCipher("correct horse battery staple")
	require.NoError(t, err)

	plaintext := []byte(`{"bloodPressure":"120/80"}`)
	blob, err := c.Seal(plaintext)
	require.NoError(t, err)
	assert.False(t, bytes.Contains(blob, []byte("bloodPressure")))

	got, err := c.Open(blob)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestPayloadCipher_NonceIsRandom(t *testing.T) {
	c, err := NewPayloadCipher("secret")
	require.NoError(t, err)

	a, err := c.Seal([]byte("same"))
	require.NoError(t, err)
	b, err := c.Seal([]byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestPayloadCipher_SameSecretSameKey(t *testing.T) {
	first, err := NewPayloadCipher("shared")
	require.NoError(t, err)
	second, err := NewPayloadCipher("shared")
	require.NoError(t, err)

	blob, err := first.Seal([]byte("portable"))
	require.NoError(t, err)

	got, err := second.Open(blob)
	require.NoError(t, err)
	assert.Equal(t, []byte("portable"), got)
}

func TestPayloadCipher_OpenFailures(t *testing.T) {
	c, err := NewPayloadCipher("secret")
	require.NoError(t, err)
	other, err := NewPayloadCipher("other secret")
	require.NoError(t, err)

	blob, err := c.Seal([]byte("payload"))
	require.NoError(t, err)

	t.Run("too short", func(t *testing.T) {
		_, err := c.Open([]byte{1, 2, 3})
		assert.ErrorIs(t, err, ErrCiphertextTooShort)
	})

	t.Run("wrong key", func(t *testing.T) {
		_, err := other.Open(blob)
		assert.ErrorIs(t, err, ErrDecrypt)
	})

	t.Run("tampered", func(t *testing.T) {
		tampered := bytes.Clone(blob)
		tampered[len(tampered)-1] ^= 0xff
		_, err := c.Open(tampered)
		assert.ErrorIs(t, err, ErrDecrypt)
	})
}
