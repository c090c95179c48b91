package config

import (
	"fmt"
	"strconv"

	"github.com/atomo10/atomo/pkg/util"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const defaultMongoConnectionString = "mongodb://localhost:27017/"
const defaultMongoDatabase = "atomo"
const defaultConnectAttempts = 5
const defaultListen = ":8080"

type Config struct {
	// Listen is the web API address, ATOMO_LISTEN or ":$PORT" when only PORT is set
	Listen string `validate:"required"`

	MongoConnection      string `validate:"required,startswith=mongodb"`
	MongoDatabase        string `validate:"required"`
	MongoConnectAttempts uint64 `validate:"gte=1"`

	// Line events are only published when a Redis address is configured
	RedisAddress  string `validate:"omitempty,hostname_port"`
	RedisPassword string
	RedisDatabase int `validate:"gte=0"`

	ElasticsearchAddress  string `validate:"omitempty,url"`
	ElasticsearchUsername string
	ElasticsearchPassword string
}

// Load reads the configuration from the environment, after loading a .env file if one is present
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded environment from .env")
	}

	return FromEnvironment(util.GetEnvironmentVariables())
}

func FromEnvironment(env map[string]string) (*Config, error) {
	config := &Config{
		MongoConnection: util.GetEnvironmentVariable(env, "ATOMO_MONGODB_CONNECTION",
			util.GetEnvironmentVariable(env, "DATABASE_URL", defaultMongoConnectionString)),
		MongoDatabase: util.GetEnvironmentVariable(env, "ATOMO_MONGODB_DATABASE",
			util.GetEnvironmentVariable(env, "DATABASE_NAME", defaultMongoDatabase)),
		MongoConnectAttempts: defaultConnectAttempts,

		Listen: util.GetEnvironmentVariable(env, "ATOMO_LISTEN", defaultListen),

		RedisAddress:  env["ATOMO_REDIS_ADDRESS"],
		RedisPassword: env["ATOMO_REDIS_PASSWORD"],

		ElasticsearchAddress:  env["ATOMO_ELASTICSEARCH_ADDRESS"],
		ElasticsearchUsername: env["ATOMO_ELASTICSEARCH_USERNAME"],
		ElasticsearchPassword: env["ATOMO_ELASTICSEARCH_PASSWORD"],
	}

	if value := env["ATOMO_MONGODB_CONNECT_ATTEMPTS"]; value != "" {
		attempts, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ATOMO_MONGODB_CONNECT_ATTEMPTS: %q", value)
		}
		config.MongoConnectAttempts = attempts
	}

	if port := env["PORT"]; port != "" && env["ATOMO_LISTEN"] == "" {
		if _, err := strconv.ParseUint(port, 10, 16); err != nil {
			return nil, fmt.Errorf("invalid PORT: %q", port)
		}
		config.Listen = ":" + port
	}

	if value := env["ATOMO_REDIS_DATABASE"]; value != "" {
		database, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid ATOMO_REDIS_DATABASE: %q", value)
		}
		config.RedisDatabase = database
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) EventsEnabled() bool {
	return c.RedisAddress != ""
}
