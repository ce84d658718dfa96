package model

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies the account a request acts on behalf of. UserID is the
// account's unique identifier (the email, as in the stored blob keys).
// Task collections are keyed by Scope, and the store rejects calls whose
// scope does not match the active user.
type Scope struct {
	UserID string
	Name   string
}

// IsZero reports whether the scope carries no user.
func (s Scope) IsZero() bool {
	return s.UserID == ""
}
