package cli

import (
	"cmp"
	"os"
)

// envVarPrefix is the prefix for all goscdoc environment variables.
const envVarPrefix = "GOSCDOC_"

// Environment variables. They tune diagnostics on stderr and never change
// the generated page.
const (
	// EnvLogLevel sets the log level: debug, info, warn or error.
	EnvLogLevel = envVarPrefix + "LOG_LEVEL"

	// EnvColor sets the color mode for stderr: auto, always or never.
	EnvColor = envVarPrefix + "COLOR"
)

const (
	defaultLogLevel  = "info"
	defaultColorMode = "auto"
)

// LogLevelFromEnv returns the log level named by GOSCDOC_LOG_LEVEL, or "info".
func LogLevelFromEnv() string {
	return cmp.Or(os.Getenv(EnvLogLevel), defaultLogLevel)
}

// colorModeFromEnv returns the color mode named by GOSCDOC_COLOR, or "auto".
func colorModeFromEnv() string {
	return cmp.Or(os.Getenv(EnvColor), defaultColorMode)
}
