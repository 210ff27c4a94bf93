package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DYNAMODB_TABLE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("DYNAMODB_ENDPOINT", "")
	t.Setenv("HTTP_ADDRESS", "")

	cfg := Load()

	require.Equal(t, "TaskTrackerTable", cfg.TableName)
	require.Equal(t, "us-east-1", cfg.Region)
	require.Equal(t, "", cfg.DynamoEndpoint)
	require.Equal(t, ":8080", cfg.HTTPAddress)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DYNAMODB_TABLE", "StagingTasks")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("DYNAMODB_ENDPOINT", "http://localhost:8000")
	t.Setenv("HTTP_ADDRESS", ":9090")

	cfg := Load()

	require.Equal(t, "StagingTasks", cfg.TableName)
	require.Equal(t, "eu-west-1", cfg.Region)
	require.Equal(t, "http://localhost:8000", cfg.DynamoEndpoint)
	require.Equal(t, ":9090", cfg.HTTPAddress)
}
