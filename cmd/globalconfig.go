package cmd

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	globalConfigName      = ".hostnet.yml"
	containerGlobalConfig = "/root/.hostnet.yml"
)

// GlobalConfigPath is the per-user config file mounted into every container
// command. Its contents belong to the container tool.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, globalConfigName), nil
}

// EnsureGlobalConfig makes sure the global config path holds a regular file.
// Docker creates a directory when a bind-mount source is missing, so an empty
// directory left behind by such a run is replaced as well.
func EnsureGlobalConfig() (string, error) {
	path, err := GlobalConfigPath()
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return "", fmt.Errorf("stat global config: %w", err)
	case info.IsDir():
		logger.Debug("replacing directory at global config path", "path", path)
		if err := os.Remove(path); err != nil {
			return "", fmt.Errorf("remove global config directory: %w", err)
		}
	default:
		return path, nil
	}

	if err := os.WriteFile(path, nil, 0600); err != nil {
		return "", fmt.Errorf("create global config: %w", err)
	}
	return path, nil
}
