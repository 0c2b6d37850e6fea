package todo_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHealthEndpoints(t *testing.T) {
	client := setupTodoContainer(t)

	require.NoError(t, client.Healthcheck(t.Context()))

	health, err := client.Livez(t.Context())
	assertHealthy(t, health, err)
	require.NotEmpty(t, health.Version)

	health, err = client.Readyz(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}
