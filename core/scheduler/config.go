package scheduler

// Config holds configuration for the reconciliation scheduler.
type Config struct {
	// Schedule is a cron expression or descriptor (e.g., "@every 1m", "*/5 * * * *").
	Schedule string `mapstructure:"schedule" default:"@every 1m"`
	// TickTimeoutSeconds bounds a single tick. Zero disables the timeout.
	TickTimeoutSeconds int `mapstructure:"tick_timeout_seconds" default:"55"`
	// RunOnStart runs one tick immediately when the scheduler starts.
	RunOnStart bool `mapstructure:"run_on_start" default:"true"`
}
