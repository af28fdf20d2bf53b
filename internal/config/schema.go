package config

// Config is the full cronjobctl configuration, loaded from a TOML file.
type Config struct {
	API     APIConfig     `toml:"api"`
	Upload  UploadConfig  `toml:"upload"`
	Polling PollingConfig `toml:"polling"`
	Logging LoggingConfig `toml:"logging"`
	Metrics MetricsConfig `toml:"metrics"`
	State   StateConfig   `toml:"state"`
}

// APIConfig configures the backend REST client.
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	Token          string `toml:"token"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	MaxRetries     int    `toml:"max_retries"`
}

// UploadConfig configures the bulk-upload flow.
type UploadConfig struct {
	DefaultGithubOwner string `toml:"default_github_owner"`
}

// PollingConfig holds per-view refresh intervals in seconds.
type PollingConfig struct {
	JobsIntervalSeconds          int `toml:"jobs_interval_seconds"`
	NotificationsIntervalSeconds int `toml:"notifications_interval_seconds"`
	ExecutionsIntervalSeconds    int `toml:"executions_interval_seconds"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// MetricsConfig configures the Prometheus endpoint of long-running
// commands such as watch.
type MetricsConfig struct {
	Enabled    bool   `toml:"enabled"`
	ListenAddr string `toml:"listen_addr"`
}

// StateConfig configures the local state store that keeps session
// tokens between invocations.
type StateConfig struct {
	Path string `toml:"path"`
}
