package model

// Environment names accepted in config.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)
