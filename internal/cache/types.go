package cache

// Config represents Redis configuration settings
type Config struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ErrNotFound is returned by Get when the key does not exist
type ErrNotFound struct {
	Key string
}

func (e *ErrNotFound) Error() string {
	return "key not found: " + e.Key
}
