// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto seals record payloads at rest.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

var (
	ErrEmptySecret        = errors.New("payload secret is empty")
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrDecrypt            = errors.New("error decrypting payload")
)

// keySalt domain-separates the payload key from other uses of the secret.
const keySalt = "hefin/payload-key/v1"

// PayloadCipher encrypts and authenticates payload bytes.
type PayloadCipher interface {
	// Seal returns nonce ‖ ciphertext.
	Seal(plaintext []byte) ([]byte, error)
	// Open reverses Seal and fails with ErrDecrypt on a wrong key or a
	// tampered blob.
	Open(blob []byte) ([]byte, error)
}

type aesGCMCipher struct {
	aead cipher.AEAD

	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewPayloadCipher derives a 256-bit AES-GCM key from secret with Argon2id
// (1 pass, 64 MiB, 4 lanes).
func NewPayloadCipher(secret string) (PayloadCipher, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}

	c := &aesGCMCipher{
		argonTime:    1,
		argonMemory:  64 * 1024,
		argonThreads: 4,
		argonKeyLen:  32,
	}

	key := argon2.IDKey([]byte(secret), []byte(keySalt), c.argonTime, c.argonMemory, c.argonThreads, c.argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("error creating cipher: %w", err)
	}
	c.aead, err = cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("error creating gcm: %w", err)
	}

	return c, nil
}

func (c *aesGCMCipher) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(plaintext)+c.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("error reading nonce: %w", err)
	}

	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

func (c *aesGCMCipher) Open(blob []byte) ([]byte, error) {
	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}
	return plaintext, nil
}
