package storage

import "time"

// Config represents object storage configuration
type Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
	UseSSL          bool   `mapstructure:"useSSL"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
	ListLimit       int    `mapstructure:"listLimit"`
	MaxUploadSize   int64  `mapstructure:"maxUploadSize"`
}

// Object describes one stored video file
type Object struct {
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	PublicURL   string    `json:"publicUrl"`
}

// ProgressFunc receives incremental upload progress notifications
type ProgressFunc func(transferred, total int64)
