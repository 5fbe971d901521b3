package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"tracker2nuke/internal/fileutil"
)

//go:embed sample_config.toml
var sampleConfig string

// ErrConfigExists is returned by WriteSample when it would replace a file.
var ErrConfigExists = errors.New("config file already exists")

// EnvConfigPath names the environment variable consulted when no --config
// flag is given.
const EnvConfigPath = "TRACKER2NUKE_CONFIG"

// Paths contains directory configuration.
type Paths struct {
	LogDir  string `toml:"log_dir"`
	DataDir string `toml:"data_dir"`
}

// Output controls where generated scripts go.
type Output struct {
	// Clipboard sends scripts to the system clipboard instead of stdout.
	Clipboard bool `toml:"clipboard"`
	// SelectedOnly makes `export` default to selected tracks.
	SelectedOnly bool `toml:"selected_only"`
}

// Scene controls how scene documents are written back.
type Scene struct {
	BackupOnWrite bool `toml:"backup_on_write"`
}

// History contains configuration for the export history database.
type History struct {
	Enabled   bool `toml:"enabled"`
	ListLimit int  `toml:"list_limit"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	// File additionally writes logs to <log_dir>/tracker2nuke.log.
	File bool `toml:"file"`
}

// Config encapsulates all configuration values for tracker2nuke.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Output  Output  `toml:"output"`
	Scene   Scene   `toml:"scene"`
	History History `toml:"history"`
	Logging Logging `toml:"logging"`
}

// Load resolves the config file, decodes it over the defaults, then
// normalizes and validates the result. A missing file is not an error; exists
// reports whether one was read.
func Load(path string) (cfg *Config, resolved string, exists bool, err error) {
	resolved, exists, err = locate(path)
	if err != nil {
		return nil, "", false, err
	}

	loaded := Default()
	if exists {
		data, err := os.ReadFile(resolved)
		if err != nil {
			return nil, "", false, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &loaded); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolved, err)
		}
	}

	if err := loaded.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := loaded.Validate(); err != nil {
		return nil, "", false, err
	}
	return &loaded, resolved, exists, nil
}

// locate picks the config file. An explicit path or $TRACKER2NUKE_CONFIG is
// used as given even when absent. Otherwise the user config wins over
// ./tracker2nuke.toml, and the user config path is reported when neither
// exists.
func locate(path string) (string, bool, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvConfigPath))
	}
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		found, err := isFile(expanded)
		return expanded, found, err
	}

	candidates := []string{defaultConfigPath, projectConfigName}
	resolved := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		expanded, err := expandPath(candidate)
		if err != nil {
			return "", false, err
		}
		found, err := isFile(expanded)
		if err != nil {
			return "", false, err
		}
		if found {
			return expanded, true, nil
		}
		resolved = append(resolved, expanded)
	}
	return resolved[0], false, nil
}

func isFile(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case err == nil:
		return !info.IsDir(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat config: %w", err)
	}
}

// EnsureDirectories creates the log and data directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LogDir, c.Paths.DataDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// HistoryPath returns the export history database location.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.DataDir, "history.db")
}

// LogPath returns the log file location used when logging.file is set.
func (c *Config) LogPath() string {
	return filepath.Join(c.Paths.LogDir, "tracker2nuke.log")
}

// ExpandPath resolves a leading ~ and makes the path absolute.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return "", nil
	}
	if pathValue == "~" || strings.HasPrefix(pathValue, "~/") || strings.HasPrefix(pathValue, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = filepath.Join(home, pathValue[1:])
	}
	absolute, err := filepath.Abs(pathValue)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// WriteSample writes the annotated sample config to path, or to the user
// config location when path is empty, and returns where it went. An existing
// file is only replaced when overwrite is set.
func WriteSample(path string, overwrite bool) (string, error) {
	if path == "" {
		path = defaultConfigPath
	}
	target, err := expandPath(path)
	if err != nil {
		return "", err
	}
	if !overwrite {
		found, err := isFile(target)
		if err != nil {
			return "", err
		}
		if found {
			return target, fmt.Errorf("%w at %s (use --overwrite to replace it)", ErrConfigExists, target)
		}
	}
	if err := fileutil.WriteFileAtomic(target, []byte(sampleConfig), 0o644); err != nil {
		return "", fmt.Errorf("write sample config: %w", err)
	}
	return target, nil
}
