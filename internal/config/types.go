package config

import (
	"time"

	"github.com/vidvault/vidvault/backend/internal/logger"
)

// Config represents the application configuration
type Config struct {
	Environment string        `mapstructure:"environment" yaml:"environment"`
	Server      ServerConfig  `mapstructure:"server" yaml:"server"`
	Database    DatabaseConfig `mapstructure:"database" yaml:"database"`
	Redis       RedisConfig   `mapstructure:"redis" yaml:"redis"`
	Storage     StorageConfig `mapstructure:"storage" yaml:"storage"`
	Hosting     HostingConfig `mapstructure:"hosting" yaml:"hosting"`
	Sources     SourcesConfig `mapstructure:"sources" yaml:"sources"`
	Video       VideoConfig   `mapstructure:"video" yaml:"video"`
	Auth        AuthConfig    `mapstructure:"auth" yaml:"auth"`
	Logging     logger.Config `mapstructure:"logging" yaml:"logging"`
}

// ServerConfig represents server configuration settings.
// PublicHost is the hostname the site is served from; the Twitch player
// requires it as the `parent` query parameter on embeds.
type ServerConfig struct {
	Port       int    `mapstructure:"port"`
	PublicHost string `mapstructure:"publicHost"`
}

// DatabaseConfig represents database configuration settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Dbname   string `mapstructure:"dbname"`
	Port     int    `mapstructure:"port"`
	Sslmode  string `mapstructure:"sslmode"`
	Timezone string `mapstructure:"timezone"`
	Pool     struct {
		MaxOpen int `mapstructure:"maxOpen"`
		MaxIdle int `mapstructure:"maxIdle"`
	} `mapstructure:"pool"`
}

// RedisConfig represents Redis configuration settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// StorageConfig represents object storage configuration settings
type StorageConfig struct {
	S3 S3Config `mapstructure:"s3"`
}

// S3Config represents S3 configuration settings
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
	UseSSL          bool   `mapstructure:"useSSL"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	ListLimit       int    `mapstructure:"listLimit"`
}

// HostingConfig represents third-party hosting API settings.
// The API key is server-held and must never reach the browser.
type HostingConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
	APIKey  string `mapstructure:"apiKey"`
}

// SourcesConfig selects which source adapters are active. Which stores
// back the library is a deployment choice, not a behavioral one.
type SourcesConfig struct {
	Links   bool `mapstructure:"links"`
	Storage bool `mapstructure:"storage"`
	Hosting bool `mapstructure:"hosting"`
}

// VideoConfig represents upload validation settings
type VideoConfig struct {
	MaxUploadSize int64 `mapstructure:"maxUploadSize"`
}

// AuthConfig represents authentication configuration settings
type AuthConfig struct {
	JWT struct {
		Secret         string        `mapstructure:"secret"`
		AccessTokenTTL time.Duration `mapstructure:"accessTokenTTL"`
		SessionTTL     time.Duration `mapstructure:"sessionTTL"`
	} `mapstructure:"jwt"`
	CookieName string `mapstructure:"cookieName"`
}
