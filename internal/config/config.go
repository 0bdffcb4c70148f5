package config

// Config is the full service configuration. Every value comes from the environment, with a
// default when the variable is unset.
type Config interface {
	EnvConfig
	CorsConfig
	ComplianceConfig
	ProviderConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetLogLevel() string
	IsDev() bool
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	Compliance
	Provider
}

func New() Config {
	return mainConfig{}
}
