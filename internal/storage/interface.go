package storage

import (
	"errors"

	"github.com/kwheeler/goalpost/internal/models"
)

// ErrNotFound is returned by Load when the user has no stored document.
// Callers must treat it as "first sign-in", distinct from a load failure.
var ErrNotFound = errors.New("user state not found")

// Provider persists one whole UserState document per user. There are no
// partial updates: Save overwrites the entire document, last writer wins.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Documents
	Load(userID string) (models.UserState, error)
	Save(userID string, state models.UserState) error

	// Utils
	GetConfigPath() string
}
