package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	portEnvVar     = "PORT"
	appNameVar     = "APP_NAME"
	envVar         = "ENV"
	logLevelEnvVar = "LOG_LEVEL"

	devEnv = "DEV"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if !strings.HasPrefix(port, ":") {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "OAuth Compliance")
}

func (EnvVars) GetEnv() string {
	return GetEnv(envVar, devEnv)
}

// GetLogLevel returns a zerolog level name (debug, info, warn, error).
func (EnvVars) GetLogLevel() string {
	return strings.ToLower(GetEnv(logLevelEnvVar, "info"))
}

func (e EnvVars) IsDev() bool {
	return strings.EqualFold(e.GetEnv(), devEnv)
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvBool parses envVar with strconv.ParseBool, falling back to defaultValue when the
// variable is unset or unparseable.
func GetEnvBool(envVar string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(envVar))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetEnvInt parses envVar as a base 10 integer, falling back to defaultValue when the
// variable is unset or unparseable.
func GetEnvInt(envVar string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(envVar))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetEnvList splits a comma separated variable, dropping empty items.
func GetEnvList(envVar string, defaultValue []string) []string {
	raw := os.Getenv(envVar)
	if raw == "" {
		return defaultValue
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
