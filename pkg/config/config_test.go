package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvironmentDefaults(t *testing.T) {
	config, err := FromEnvironment(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017/", config.MongoConnection)
	assert.Equal(t, "atomo", config.MongoDatabase)
	assert.Equal(t, uint64(5), config.MongoConnectAttempts)
	assert.False(t, config.EventsEnabled())
	assert.Empty(t, config.ElasticsearchAddress)
}

func TestFromEnvironmentOverrides(t *testing.T) {
	config, err := FromEnvironment(map[string]string{
		"DATABASE_URL":                   "mongodb://fallback:27017/",
		"ATOMO_MONGODB_CONNECTION":       "mongodb://mongo:27017/",
		"DATABASE_NAME":                  "lines",
		"ATOMO_MONGODB_CONNECT_ATTEMPTS": "2",
		"ATOMO_REDIS_ADDRESS":            "redis:6379",
		"ATOMO_REDIS_DATABASE":           "3",
		"ATOMO_ELASTICSEARCH_ADDRESS":    "https://elastic:9200",
	})
	require.NoError(t, err)

	assert.Equal(t, "mongodb://mongo:27017/", config.MongoConnection)
	assert.Equal(t, "lines", config.MongoDatabase)
	assert.Equal(t, uint64(2), config.MongoConnectAttempts)
	assert.True(t, config.EventsEnabled())
	assert.Equal(t, 3, config.RedisDatabase)
	assert.Equal(t, "https://elastic:9200", config.ElasticsearchAddress)
}

func TestFromEnvironmentInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"connection scheme": {"ATOMO_MONGODB_CONNECTION": "postgres://localhost"},
		"attempts":          {"ATOMO_MONGODB_CONNECT_ATTEMPTS": "lots"},
		"zero attempts":     {"ATOMO_MONGODB_CONNECT_ATTEMPTS": "0"},
		"redis database":    {"ATOMO_REDIS_DATABASE": "first"},
		"redis address":     {"ATOMO_REDIS_ADDRESS": "not an address"},
		"elastic address":   {"ATOMO_ELASTICSEARCH_ADDRESS": "::"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnvironment(env)
			assert.Error(t, err)
		})
	}
}

func TestFromEnvironmentListen(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		listen string
	}{
		{name: "default", env: map[string]string{}, listen: ":8080"},
		{name: "port", env: map[string]string{"PORT": "8000"}, listen: ":8000"},
		{name: "explicit listen wins", env: map[string]string{"PORT": "8000", "ATOMO_LISTEN": "127.0.0.1:9000"}, listen: "127.0.0.1:9000"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config, err := FromEnvironment(test.env)
			require.NoError(t, err)
			assert.Equal(t, test.listen, config.Listen)
		})
	}

	_, err := FromEnvironment(map[string]string{"PORT": "http"})
	assert.Error(t, err)
}
