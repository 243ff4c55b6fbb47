package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/travigo/punctuality/pkg/util"
)

func TestGetEnvironmentVariables(t *testing.T) {
	t.Setenv("PUNCTUALITY_MONGODB_DATABASE", "zvv")
	t.Setenv("PUNCTUALITY_FILTER", "Line == \"2\"")
	t.Setenv("OTHER_MONGODB_DATABASE", "other")

	env := util.GetEnvironmentVariables()

	assert.Equal(t, "zvv", env["MONGODB_DATABASE"])
	assert.Equal(t, "Line == \"2\"", env["FILTER"])
	assert.NotContains(t, env, "OTHER_MONGODB_DATABASE")
	assert.NotContains(t, env, "PUNCTUALITY_MONGODB_DATABASE")
}

func TestGetEnvironmentVariable(t *testing.T) {
	t.Setenv("PUNCTUALITY_LOG_FORMAT", "JSON")
	t.Setenv("PUNCTUALITY_DEBUG", "")

	assert.Equal(t, "JSON", util.GetEnvironmentVariable("LOG_FORMAT", "CONSOLE"))
	assert.Equal(t, "NO", util.GetEnvironmentVariable("DEBUG", "NO"))
}
