package cmd

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultImage   = "ghcr.io/clockworkempire/theme-dev:latest"
	defaultDevPort = "4000"
)

// Settings configures the CLI itself. None of it is passed to the container.
type Settings struct {
	Image     string `yaml:"image"`
	BundleDir string `yaml:"bundle_dir"`
	DevPort   string `yaml:"dev_port"`
}

// settingsPath returns where the CLI settings file lives, or "" when the
// platform has no user config directory.
func settingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "hostnet", "cli.yaml")
}

func parseSettingsFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		logger.Warn("ignoring malformed settings file", "path", path, "err", err)
		return &Settings{}, nil
	}
	return &s, nil
}

// LoadSettings reads the settings file, applies environment overrides and
// fills in defaults. An unreadable file is logged and treated as absent.
func LoadSettings() Settings {
	var s Settings
	if p := settingsPath(); p != "" {
		parsed, err := parseSettingsFile(p)
		if err != nil {
			logger.Warn("cannot read settings file", "path", p, "err", err)
		} else if parsed != nil {
			logger.Debug("loaded settings", "path", p)
			s = *parsed
		}
	}

	if v := os.Getenv("HOSTNET_IMAGE"); v != "" {
		s.Image = v
	}
	if v := os.Getenv("HOSTNET_BUNDLE_DIR"); v != "" {
		s.BundleDir = v
	}

	if s.Image == "" {
		s.Image = defaultImage
	}
	if s.DevPort == "" {
		s.DevPort = defaultDevPort
	}
	if s.BundleDir == "" {
		s.BundleDir = defaultBundleDir()
	}
	return s
}

// defaultBundleDir is <dir of executable>/../share/hostnet.
func defaultBundleDir() string {
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("share", "hostnet")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "..", "share", "hostnet")
}
