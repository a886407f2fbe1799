/*
Copyright 2026 Accion Labs.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL is the public pet-store deployment the suites target.
	DefaultBaseURL = "https://petstore3.swagger.io/api/v3"

	// DefaultSessionStatePath is where the bootstrap persists the credential set.
	DefaultSessionStatePath = "auth.json"

	// DefaultResultsDir is where report evidence and metadata are written.
	DefaultResultsDir = "allure-results"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type TestConfig struct {
	BaseURL          string
	SessionStatePath string
	ResultsDir       string
	RequestTimeout   time.Duration
	SkipIntegration  bool
	UseFakePetStore  bool
	LogRequests      bool
	LogResponses     bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Credentials are deliberately not part of this, see AssembleCredentials.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:          getStringWithDefault("BASE_URL", DefaultBaseURL),
		SessionStatePath: getStringWithDefault("SESSION_STATE_PATH", DefaultSessionStatePath),
		ResultsDir:       getStringWithDefault("RESULTS_DIR", DefaultResultsDir),
		RequestTimeout:   getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		SkipIntegration:  getBoolWithDefault("SKIP_INTEGRATION", false),
		UseFakePetStore:  getBoolWithDefault("USE_FAKE_PETSTORE", false),
		LogRequests:      getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:     getBoolWithDefault("LOG_RESPONSES", false),
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// getStringWithDefault gets a string from environment variable or returns default.
func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		".env",          // From the repository root
		"../../.env",    // From test/api
		"../../../.env", // From test/api/suites
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Load never overrides variables that are already set.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

func validateConfig(config *TestConfig) error {
	u, err := url.Parse(config.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: BASE_URL %q: %w", ErrInvalidConfig, config.BaseURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: BASE_URL %q must be an absolute http(s) URL", ErrInvalidConfig, config.BaseURL)
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("%w: REQUEST_TIMEOUT must be positive", ErrInvalidConfig)
	}

	return nil
}
