// Package config centralises configuration parsing for the task tracker.
package config

import "os"

// Config captures runtime configuration values. The table name and
// region select the store instance; nothing else is tunable at runtime.
type Config struct {
	TableName      string
	Region         string
	DynamoEndpoint string // Optional endpoint override for dynamodb-local.
	HTTPAddress    string // Listen address for the local dev server.
}

// Load reads environment variables into Config, applying the defaults
// the deployment assumes.
func Load() Config {
	return Config{
		TableName:      getEnv("DYNAMODB_TABLE", "TaskTrackerTable"),
		Region:         getEnv("AWS_REGION", "us-east-1"),
		DynamoEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		HTTPAddress:    getEnv("HTTP_ADDRESS", ":8080"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
