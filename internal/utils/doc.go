// Package utils holds small helpers shared by the HEFIN server layers:
// typed context keys, HMAC body signing, JSON response writing, JWT issuing
// and parsing, identifier generation and user profile decoration.
package utils
