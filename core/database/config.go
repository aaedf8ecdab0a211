package database

// Config holds configuration for the optional database connection.
type Config struct {
	// Enabled loads tracked items from the database instead of reconcile.tracked.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Migrate creates or updates the tracked_items table at startup.
	Migrate bool `mapstructure:"migrate" default:"false"`
	// Host is the database host.
	Host string `mapstructure:"host" default:"localhost"`
	// Port is the database port.
	Port int `mapstructure:"port" default:"3306"`
	// User is the database user.
	User string `mapstructure:"user" default:"root"`
	// Password is the database password.
	Password string `mapstructure:"password" default:""`
	// Name is the database name, or the file path for sqlite.
	Name string `mapstructure:"name" default:"price_sync"`
	// Driver is the database driver (mysql, sqlite).
	Driver string `mapstructure:"driver" default:"mysql"`
	// TimeoutSeconds bounds connection setup and I/O.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
