package database

import (
	"telemed-service/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMongoConnectionString(t *testing.T) {
	tests := []struct {
		name     string
		mongoCfg config.MongoDB
		expected string
	}{
		{
			name:     "uri takes precedence",
			mongoCfg: config.MongoDB{URI: "mongodb+srv://cluster.example", Host: "ignored", Port: "1"},
			expected: "mongodb+srv://cluster.example",
		},
		{
			name:     "built with credentials",
			mongoCfg: config.MongoDB{Host: "db", Port: "27017", Username: "app", Password: "secret"},
			expected: "mongodb://app:secret@db:27017",
		},
		{
			name:     "built without credentials",
			mongoCfg: config.MongoDB{Host: "localhost", Port: "27017"},
			expected: "mongodb://localhost:27017",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driverConfig := &config.DriverConfig{MongoDB: tt.mongoCfg}
			assert.Equal(t, tt.expected, MongoConnectionString(driverConfig))
		})
	}
}
