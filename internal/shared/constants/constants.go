package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	HeaderXRequestID = "X-Request-ID"

	// Context keys set by the auth middleware
	ContextKeyUserID    = "user_id"
	ContextKeySessionID = "session_id"

	// Singleton row identifiers
	ConfigVersionID = "current"
	SystemStateID   = "mirror"
)
