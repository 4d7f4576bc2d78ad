package app

import (
	"fmt"
	"os"
	"path/filepath"
)

// GetDefaults returns application default paths, checking environment variables first.
// Environment variables:
//   - PACKLIST_CONFIG_PATH: config file location (default: ~/.config/packlist.toml)
//   - PACKLIST_HOME: base directory for packlist data (default: ~/.local/share/packlist)
func GetDefaults() (map[string]string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	baseDir, err := getBaseDir()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"config_path": configPath,
		"base_dir":    baseDir,
		"log_dir":     filepath.Join(baseDir, "log"),
	}, nil
}

// getConfigPath returns the config file path, checking PACKLIST_CONFIG_PATH
// first, then falling back to the default ~/.config/packlist.toml.
func getConfigPath() (string, error) {
	if path := os.Getenv("PACKLIST_CONFIG_PATH"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "packlist.toml"), nil
}

// getBaseDir returns the base directory for packlist data, checking
// PACKLIST_HOME first, then falling back to the XDG default
// ~/.local/share/packlist.
func getBaseDir() (string, error) {
	if path := os.Getenv("PACKLIST_HOME"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", "packlist"), nil
}
