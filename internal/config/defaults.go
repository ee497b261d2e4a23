package config

const (
	defaultLogDir         = "~/.local/share/blademedia/logs"
	defaultMoviesDir      = "media/movies"
	defaultTVDir          = "media/tv"
	defaultTVYear         = 2025
	defaultNotifyTimeout  = 10
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultHistoryEnabled = false
)

// Default returns a Config populated with repository defaults. The library
// root is left empty and resolved to the current working directory during
// normalization.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Library: Library{
			MoviesDir: defaultMoviesDir,
			TVDir:     defaultTVDir,
			TVYear:    defaultTVYear,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyTimeout,
		},
		History: History{
			Enabled: defaultHistoryEnabled,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
