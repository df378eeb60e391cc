package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/longkey1/gptc/internal/gptc"
	"github.com/spf13/viper"
)

// expandEnvVar expands environment variable references in the given value
// Supports both $VAR and ${VAR} syntax
// If the environment variable is not set, returns empty string.
func expandEnvVar(value string) (string, error) {
	if !strings.HasPrefix(value, "$") {
		return value, nil
	}

	var envVarName string
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVarName = value[2 : len(value)-1]
	} else {
		envVarName = strings.TrimPrefix(value, "$")
	}
	if envVarName == "" {
		return "", fmt.Errorf("invalid environment variable reference: %q", value)
	}

	return os.Getenv(envVarName), nil
}

// LoadAPIKey reads the API key from path. The whole trimmed file content is the key.
func LoadAPIKey(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: key file is not configured. Set it in config file (key_file), environment variable (GPTC_KEY_FILE) or --key-file flag", gptc.ErrCredentialUnavailable)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", gptc.ErrCredentialUnavailable, err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", fmt.Errorf("%w: key file %s is empty", gptc.ErrCredentialUnavailable, path)
	}
	return key, nil
}

// ResolvePath converts a relative path to absolute path if needed
func ResolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}

	// Relative paths are taken from the config file directory when one is used
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("error getting current working directory: %v", err)
		}
		return filepath.Join(cwd, path), nil
	}

	configDir := filepath.Dir(configFile)
	if !filepath.IsAbs(configDir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("error getting current working directory: %v", err)
		}
		configDir = filepath.Join(cwd, configDir)
	}

	return filepath.Join(configDir, path), nil
}
