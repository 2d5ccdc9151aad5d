// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a person who signed in through an OAuth provider.
// The email is the identity key: bearer credentials carry it as their subject
// and reviews record it as their author.
type User struct {
	ID            uuid.UUID    // Internal identifier.
	Email         string       // Unique identity key, stored exactly as the provider returned it.
	Name          string       // Display name reported by the provider.
	Picture       *string      // Avatar URL, when the provider supplies one.
	OAuthProvider ProviderType // Provider that authenticated the user.
	OAuthID       string       // Provider-specific subject identifier.
	CreatedAt     time.Time    // First successful login.
	LastLogin     time.Time    // Bumped on every successful login.
}
