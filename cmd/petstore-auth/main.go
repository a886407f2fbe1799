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
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/accionlabs/petstore-api-tests/test/api"
)

// Options override the environment derived test configuration.
type Options struct {
	BaseURL          string
	SessionStatePath string
	ResultsDir       string
	Verbose          bool
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.BaseURL, "base-url", "", "Pet-store base URL recorded in the report metadata, defaults to BASE_URL.")
	f.StringVar(&o.SessionStatePath, "session-state", "", "Path to write the session state to, defaults to SESSION_STATE_PATH.")
	f.StringVar(&o.ResultsDir, "results-dir", "", "Directory to write report metadata to, defaults to RESULTS_DIR.")
	f.BoolVarP(&o.Verbose, "verbose", "v", false, "Enable debug logging.")
}

// apply layers any flags that were set over config.
func (o *Options) apply(config *api.TestConfig) {
	if o.BaseURL != "" {
		config.BaseURL = o.BaseURL
	}

	if o.SessionStatePath != "" {
		config.SessionStatePath = o.SessionStatePath
	}

	if o.ResultsDir != "" {
		config.ResultsDir = o.ResultsDir
	}
}

func fail(err error) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "session bootstrap failed: %v\n", err)
	os.Exit(1)
}

func main() {
	var options Options

	options.AddFlags(pflag.CommandLine)

	pflag.Parse()

	zapConfig := zap.NewDevelopmentConfig()
	if !options.Verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	zapLog, err := zapConfig.Build()
	if err != nil {
		fail(err)
	}

	defer func() {
		_ = zapLog.Sync()
	}()

	logger := zapr.NewLogger(zapLog).WithName("petstore-auth")

	config, err := api.LoadTestConfig()
	if err != nil {
		fail(err)
	}

	options.apply(config)

	session, err := api.Bootstrap(logger, config, os.LookupEnv)
	if err != nil {
		fail(err)
	}

	color.Green("Session state for %s written to %s", session.BaseURL, config.SessionStatePath)
	fmt.Printf("Authenticating with: %v\n", session.Credentials.Names())
}
