package util

import (
	"os"
	"strings"
)

const EnvironmentPrefix = "PUNCTUALITY_"

// GetEnvironmentVariables returns the PUNCTUALITY_ variables of the environment keyed by their
// name without the prefix
func GetEnvironmentVariables() map[string]string {
	environmentVariables := map[string]string{}

	for _, variable := range os.Environ() {
		name, value, found := strings.Cut(variable, "=")
		if !found || !strings.HasPrefix(name, EnvironmentPrefix) {
			continue
		}

		environmentVariables[strings.TrimPrefix(name, EnvironmentPrefix)] = value
	}

	return environmentVariables
}

func GetEnvironmentVariable(name string, fallback string) string {
	if value := os.Getenv(EnvironmentPrefix + name); value != "" {
		return value
	}
	return fallback
}
