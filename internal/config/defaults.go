package config

const (
	defaultConfigPath       = "~/.config/tracker2nuke/config.toml"
	projectConfigName       = "tracker2nuke.toml"
	defaultLogDir           = "~/.local/share/tracker2nuke/logs"
	defaultDataDir          = "~/.local/share/tracker2nuke"
	DefaultLogFormat        = "console"
	DefaultLogLevel         = "info"
	defaultHistoryListLimit = 20
	maxHistoryListLimit     = 1000
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:  defaultLogDir,
			DataDir: defaultDataDir,
		},
		Scene: Scene{
			BackupOnWrite: true,
		},
		History: History{
			Enabled:   true,
			ListLimit: defaultHistoryListLimit,
		},
		Logging: Logging{
			Format: DefaultLogFormat,
			Level:  DefaultLogLevel,
		},
	}
}
