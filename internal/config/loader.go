package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// DefaultPath is read when CONFIG_PATH is unset. A missing default file is fine.
const DefaultPath = "./config.yaml"

// Load builds the configuration in layers, later ones winning:
//
//  1. env-default tags
//  2. the YAML file at CONFIG_PATH (or DefaultPath if it exists)
//  3. the process environment, seeded from envFiles (".env" when none given)
//
// Dotenv files never override variables that are already set, and missing
// dotenv files are skipped. An explicit CONFIG_PATH must exist.
func Load(envFiles ...string) (*Config, error) {
	if err := loadDotenv(envFiles); err != nil {
		return nil, err
	}

	var cfg Config
	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	switch _, err := os.Stat(path); {
	case err == nil:
		// ReadConfig applies the environment on top of the file.
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func loadDotenv(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("config: read %v: %w", present, err)
	}
	return nil
}
