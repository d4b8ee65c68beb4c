package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// configFile is the serve configuration file looked up in the directory
// formic runs in.
const configFile = "formic.yaml"

// serveConfig carries the resolved serve settings.
type serveConfig struct {
	Port    int    `yaml:"port"`
	Open    bool   `yaml:"open"`
	App     string `yaml:"app"`
	EnvFile string `yaml:"env_file"`
}

func defaultServeConfig() serveConfig {
	return serveConfig{
		Port: 8000,
		Open: true,
		App:  ".",
	}
}

// flagOverrides holds the command line values that take precedence over the
// environment and the config file.
type flagOverrides struct {
	port    int
	portSet bool
	noOpen  bool
	envFile string
	app     string
}

// resolveServeConfig resolves the serve settings from dir. Later sources win:
// defaults, then formic.yaml, then FORMIC_* environment variables (with the
// env file loaded first), then command line flags.
func resolveServeConfig(dir string, flags flagOverrides) (serveConfig, error) {
	cfg := defaultServeConfig()
	if err := loadConfigFile(filepath.Join(dir, configFile), &cfg); err != nil {
		return cfg, err
	}

	envFile := cfg.EnvFile
	if v := os.Getenv("FORMIC_ENV_FILE"); v != "" {
		envFile = v
	}
	if flags.envFile != "" {
		envFile = flags.envFile
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return cfg, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else if def := filepath.Join(dir, ".env"); fileExists(def) {
		// godotenv never overrides variables already set in the environment.
		if err := godotenv.Load(def); err != nil {
			return cfg, fmt.Errorf("load %s: %w", def, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if flags.portSet {
		cfg.Port = flags.port
	}
	if flags.noOpen {
		cfg.Open = false
	}
	if flags.app != "" {
		cfg.App = flags.app
	}
	return cfg, nil
}

// loadConfigFile merges path into cfg. A missing file keeps the defaults.
func loadConfigFile(path string, cfg *serveConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// applyEnv merges FORMIC_* environment variables into cfg.
func applyEnv(cfg *serveConfig) error {
	if v := os.Getenv("FORMIC_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FORMIC_PORT: %w", err)
		}
		cfg.Port = port
	}
	if v := os.Getenv("FORMIC_OPEN"); v != "" {
		open, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FORMIC_OPEN: %w", err)
		}
		cfg.Open = open
	}
	if v := os.Getenv("FORMIC_APP"); v != "" {
		cfg.App = v
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
