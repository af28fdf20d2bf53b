package config

// applyDefaults fills in zero-valued fields after unmarshalling.
func applyDefaults(cfg *Config) {
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = 30
	}
	if cfg.API.MaxRetries == 0 {
		cfg.API.MaxRetries = 3
	}

	if cfg.Polling.JobsIntervalSeconds == 0 {
		cfg.Polling.JobsIntervalSeconds = 30
	}
	if cfg.Polling.NotificationsIntervalSeconds == 0 {
		cfg.Polling.NotificationsIntervalSeconds = 60
	}
	if cfg.Polling.ExecutionsIntervalSeconds == 0 {
		cfg.Polling.ExecutionsIntervalSeconds = 60
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	if cfg.Metrics.ListenAddr == "" {
		cfg.Metrics.ListenAddr = "127.0.0.1:9464"
	}

	if cfg.State.Path == "" {
		cfg.State.Path = "~/.cronjobctl/state.json"
	}
}
