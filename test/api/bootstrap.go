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
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-logr/logr"
	"github.com/onsi/ginkgo/v2/types"
)

// EnvironmentFile is the report metadata file name within the results directory.
const EnvironmentFile = "environment.properties"

const (
	projectLabel      = "PetStore"
	organizationLabel = "Accion Labs"
)

// EnvironmentProperty is a single key=value line of report metadata.
type EnvironmentProperty struct {
	Key   string
	Value string
}

// Environment returns the report metadata describing this run.
func Environment(baseURL string) []EnvironmentProperty {
	return []EnvironmentProperty{
		{Key: "OS", Value: runtime.GOOS + " " + runtime.GOARCH},
		{Key: "Go", Value: runtime.Version()},
		{Key: "BaseURL", Value: baseURL},
		{Key: "Runner", Value: "Ginkgo " + types.VERSION},
		{Key: "Project", Value: projectLabel},
		{Key: "Organization", Value: organizationLabel},
	}
}

// WriteEnvironment writes properties to the metadata file in dir, creating
// dir if it does not exist.
func WriteEnvironment(dir string, properties []EnvironmentProperty) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating results directory: %w", err)
	}

	lines := make([]string, 0, len(properties))

	for _, p := range properties {
		lines = append(lines, p.Key+"="+p.Value)
	}

	path := filepath.Join(dir, EnvironmentFile)

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil { //nolint:gosec // report output is meant to be world readable
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// Bootstrap runs once per test run, before any spec. It assembles the
// credential set, persists it as session state and records the environment
// metadata. Any error here must abort the run.
func Bootstrap(logger logr.Logger, config *TestConfig, lookup LookupFunc) (*Session, error) {
	credentials, err := AssembleCredentials(lookup)
	if err != nil {
		return nil, err
	}

	logger.Info("credentials assembled", "headers", credentials.Names())

	if err := SaveSessionState(config.SessionStatePath, credentials); err != nil {
		return nil, err
	}

	logger.Info("session state written", "path", config.SessionStatePath)

	if err := WriteEnvironment(config.ResultsDir, Environment(config.BaseURL)); err != nil {
		return nil, err
	}

	logger.V(1).Info("environment metadata written", "dir", config.ResultsDir)

	return &Session{
		BaseURL:     config.BaseURL,
		Credentials: credentials,
		Config:      config,
	}, nil
}
