package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv and ResolvePath
const (
	EnvConfig = "LURKDASH_CONFIG"
	EnvDebug  = "LURKDASH_DEBUG"
	EnvAudio  = "LURKDASH_AUDIO"
)

// LoadEnv loads .env style files into the process environment without overriding set variables
// Missing files are skipped; with no arguments ".env" is tried
func LoadEnv(files ...string) (loaded []string, err error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("loading %s: %w", f, err)
		}
		loaded = append(loaded, f)
	}
	return loaded, nil
}

// ResolvePath picks the config file: explicit flag, then LURKDASH_CONFIG, then DefaultPath
func ResolvePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(EnvConfig); v != "" {
		return v
	}
	return DefaultPath
}

// ApplyEnv overrides file settings from the environment
func ApplyEnv(cfg *Config) error {
	if err := envBool(EnvDebug, &cfg.Log.Debug); err != nil {
		return err
	}
	return envBool(EnvAudio, &cfg.Audio.Enabled)
}

func envBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}
