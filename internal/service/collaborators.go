// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/session-wallet/models"
)

//go:generate mockgen -source=collaborators.go -destination=../mock/collaborators_mock.go -package=mock

// PasswordPrompter asks the user for a new account password.
type PasswordPrompter interface {
	// PromptPassword blocks until the user answers. A cancelled prompt
	// returns ErrDeclined.
	PromptPassword(ctx context.Context) (string, error)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	// Confirm blocks until the user answers. nil means yes, ErrDeclined
	// means no.
	Confirm(ctx context.Context, message string) error
}

// Navigator switches the client to another screen.
type Navigator interface {
	Navigate(route models.Route)
}
