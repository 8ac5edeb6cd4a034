package config

import (
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFile loads environment variables from .env/.env.local files.
// Existing process environment variables are not overwritten; a missing file
// is silently ignored.
func loadEnvFile() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
	}
}

// applyEnvOverrides applies HOMEGEN_* environment overrides after file load.
// Env wins over file values but loses to nothing: CLI flags are applied later
// by the command layer.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("HOMEGEN_ENGINE"); v != "" {
		config.Engine.Command = v
	}
	if v := os.Getenv("HOMEGEN_REGISTRY_INDEX"); v != "" {
		config.Registry.PackageIndex = v
	}
	if v := os.Getenv("HOMEGEN_OUTPUT_DIR"); v != "" {
		config.Output.Directory = v
	}
}
