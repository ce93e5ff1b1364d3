// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the HEFIN command-line client
// uses to talk to the server.
//
// [ServerAdapter] hides the REST details. Error values defined in errors.go
// are mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/hefin/models"
)

// ServerAdapter defines communication with the HEFIN server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent authenticated
	// requests. Login calls it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Health fetches the server health status.
	Health(ctx context.Context) (models.HealthStatus, error)

	// Version fetches the plain-text server version.
	Version(ctx context.Context) (string, error)

	// SubmitContact posts a contact form and returns the id the server
	// assigned to it.
	SubmitContact(ctx context.Context, req models.ContactRequest) (string, error)

	// Financing runs the health financing calculator on the server.
	Financing(ctx context.Context, req models.FinancingRequest) (models.FinancingResults, error)

	// HSA runs the health savings account projection on the server.
	HSA(ctx context.Context, req models.HSARequest) (models.HSAResult, error)

	// Login signs in and stores the returned bearer token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	// Me fetches the profile of the signed-in user.
	Me(ctx context.Context) (models.UserProfile, error)
}
