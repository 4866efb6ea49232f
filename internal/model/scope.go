package model

// Scope carries the identity of the guest a request acts on behalf of.
type Scope struct {
	UserID   string
	Username string
}

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
