package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// ConfigService implements the Service interface
type ConfigService struct {
	logger Logger
}

// NewConfigService creates a new configuration service
func NewConfigService(logger Logger) *ConfigService {
	return &ConfigService{
		logger: logger,
	}
}

// Load loads the configuration from the specified path
func (s *ConfigService) Load(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	// Use test configuration file if ENV is set to test
	if os.Getenv("ENV") == "test" {
		v.SetConfigName("config_test")
	} else {
		v.SetConfigName("config")
	}
	v.SetConfigType("yaml")

	s.setDefaults(v)

	// Secrets come from the environment, never from the checked-in file
	v.SetEnvPrefix("VIDVAULT")
	v.AutomaticEnv()
	v.BindEnv("hosting.apiKey", "VIDVAULT_HOSTING_API_KEY")
	v.BindEnv("storage.s3.accessKeyId", "VIDVAULT_S3_ACCESS_KEY_ID")
	v.BindEnv("storage.s3.secretAccessKey", "VIDVAULT_S3_SECRET_ACCESS_KEY")
	v.BindEnv("database.password", "VIDVAULT_DB_PASSWORD")
	v.BindEnv("auth.jwt.secret", "VIDVAULT_JWT_SECRET")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	if err := s.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}

	s.logger.LogInfo("Configuration loaded successfully", nil)
	return &config, nil
}

// setDefaults sets default values for configuration
func (s *ConfigService) setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.publicHost", "localhost")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("database.pool.maxOpen", 100)
	v.SetDefault("database.pool.maxIdle", 10)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("storage.s3.useSSL", true)
	v.SetDefault("storage.s3.bucket", "videos")
	v.SetDefault("storage.s3.listLimit", 100)
	v.SetDefault("hosting.baseUrl", "https://media.cm/api")
	v.SetDefault("sources.links", true)
	v.SetDefault("sources.storage", true)
	v.SetDefault("sources.hosting", true)
	v.SetDefault("video.maxUploadSize", 50*1024*1024) // 50 MiB
	v.SetDefault("auth.jwt.accessTokenTTL", "15m")
	v.SetDefault("auth.jwt.sessionTTL", "168h")
	v.SetDefault("auth.cookieName", "vidvault_session")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")
}

// validate performs validation on the configuration
func (s *ConfigService) validate(config *Config) error {
	if config.Server.Port <= 0 {
		return fmt.Errorf("invalid server port")
	}

	if config.Sources.Links {
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if config.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if config.Database.Dbname == "" {
			return fmt.Errorf("database name is required")
		}
		if config.Database.Port <= 0 {
			return fmt.Errorf("invalid database port")
		}
	}

	if config.Sources.Storage && config.Storage.S3.Endpoint == "" {
		return fmt.Errorf("s3 endpoint is required when the storage source is active")
	}

	if config.Sources.Hosting && config.Hosting.BaseURL == "" {
		return fmt.Errorf("hosting base URL is required when the hosting source is active")
	}

	if config.Auth.JWT.Secret == "" {
		return fmt.Errorf("jwt secret is required")
	}

	return nil
}
