package cmd

// Config carries the process configuration loaded from the environment.
// Database settings are optional: with no DBHost the engine runs purely in
// memory and skips snapshot persistence.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// SnapshotIntervalSeconds controls how often the snapshot job saves
	// the store. Empty means the default of 30 seconds.
	SnapshotIntervalSeconds string

	// MenuItems is the comma-separated list of menu item references the
	// placement validator accepts.
	MenuItems string
}
