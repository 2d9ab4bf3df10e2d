package model

// Scope identifies one chat session: a visitor talking to one owner's
// assistant. All per-session state (pending meeting negotiation, rate
// limits) is partitioned by this pair.
type Scope struct {
	VisitorID string
	OwnerID   string
}

// SessionKey returns the map key for session-scoped stores.
func (s Scope) SessionKey() string {
	return s.VisitorID + "|" + s.OwnerID
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
