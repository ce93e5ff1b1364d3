// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashSHA256Header is the header carrying a hex HMAC-SHA256 of the body.
const HashSHA256Header = "HashSHA256"

// SignBody returns the hex-encoded HMAC-SHA256 of body keyed by hashKey.
func SignBody(body []byte, hashKey string) string {
	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyBody reports whether signature is the HMAC of body under hashKey.
// The comparison runs in constant time.
func VerifyBody(body []byte, signature, hashKey string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(hashKey))
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), expected)
}
