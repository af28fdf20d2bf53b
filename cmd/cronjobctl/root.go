package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/16mdiqbal/cronjobctl/internal/api"
	"github.com/16mdiqbal/cronjobctl/internal/config"
	"github.com/16mdiqbal/cronjobctl/internal/logger"
	"github.com/16mdiqbal/cronjobctl/internal/state"
)

var (
	flagConfigPath string
	flagOutput     string
	flagLogLevel   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cronjobctl",
	Short: "Cron Job Manager CLI",
	Long: `cronjobctl manages scheduled jobs on a Cron Job Manager backend:
listing and editing jobs, validating and previewing cron expressions,
and bulk-uploading jobs from CSV files with local pre-validation.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfigPath, "config", "c", "", "config file (default ~/.cronjobctl/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "table", "output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "override logging.level from the config")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(bulkuploadCmd)
	rootCmd.AddCommand(cronCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(watchCmd)
}

func configPath() string {
	if flagConfigPath != "" {
		return flagConfigPath
	}
	return config.DefaultPath()
}

// mustLoadConfig loads and validates the configuration, exiting on any
// problem so subcommands can assume a sane config.
func mustLoadConfig() *config.Config {
	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		fmt.Fprintln(os.Stderr, "Configuration validation failed:")
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  - %v\n", e)
		}
		os.Exit(1)
	}
	return cfg
}

func mustLogger(cfg *config.Config) *logger.Logger {
	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	return log
}

// newSession opens the on-disk token store configured in state.path.
func newSession(cfg *config.Config) *state.Session {
	path, err := config.ExpandPath(cfg.State.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve state path: %v\n", err)
		os.Exit(1)
	}
	session := state.NewSession(state.NewFileKV(path))
	if cfg.API.Token != "" {
		// a token in the config takes precedence over the stored session
		if err := session.SetTokens(cfg.API.Token, ""); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to store API token: %v\n", err)
			os.Exit(1)
		}
	}
	return session
}

func newClient(cfg *config.Config, log *logger.Logger, opts ...api.Option) *api.Client {
	base := []api.Option{
		api.WithSession(newSession(cfg)),
		api.WithLogger(log),
		api.WithTimeout(time.Duration(cfg.API.TimeoutSeconds) * time.Second),
		api.WithRetry(cfg.API.MaxRetries, 300*time.Millisecond, 3*time.Second),
	}
	return api.New(cfg.API.BaseURL, append(base, opts...)...)
}

func fatal(log *logger.Logger, msg string, err error) {
	log.Error(msg, err)
	os.Exit(1)
}
