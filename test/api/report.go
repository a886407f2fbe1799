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
	"mime"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
)

const mediaTypeJSON = "application/json"

// Reporter is the append-only destination for test evidence.
type Reporter interface {
	// Step runs body as a named report step.
	Step(name string, body func())
	// Attach adds content to the current step.
	Attach(name string, content []byte, mediaType string)
}

// Attachment is a report entry value carrying its media type.
type Attachment struct {
	MediaType string `json:"mediaType"`
	Content   string `json:"content"`
}

func (a Attachment) String() string {
	return a.Content
}

// GinkgoReporter reports into the running Ginkgo spec.
type GinkgoReporter struct {
	visibility ginkgo.ReportEntryVisibility
}

// NewGinkgoReporter returns a reporter whose attachments are shown on failure
// or with -v, matching the rest of the suite's output.
func NewGinkgoReporter() *GinkgoReporter {
	return &GinkgoReporter{
		visibility: ginkgo.ReportEntryVisibilityFailureOrVerbose,
	}
}

func (r *GinkgoReporter) Step(name string, body func()) {
	ginkgo.By(name, body)
}

func (r *GinkgoReporter) Attach(name string, content []byte, mediaType string) {
	ginkgo.AddReportEntry(name, Attachment{MediaType: mediaType, Content: string(content)}, r.visibility)
}

// DirReporter writes every attachment to its own file in a results directory.
// Files are never rewritten so any number of processes can share a directory.
type DirReporter struct {
	dir string
}

func NewDirReporter(dir string) (*DirReporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating results directory: %w", err)
	}

	return &DirReporter{dir: dir}, nil
}

func (r *DirReporter) Step(_ string, body func()) {
	body()
}

func (r *DirReporter) Attach(name string, content []byte, mediaType string) {
	path := filepath.Join(r.dir, uuid.NewString()+"-attachment"+extensionFor(mediaType))

	//nolint:gosec // report output is meant to be world readable
	if err := os.WriteFile(path, content, 0o644); err != nil {
		ginkgo.GinkgoWriter.Printf("WARNING: failed to write attachment %q: %v\n", name, err)
	}
}

func extensionFor(mediaType string) string {
	if mediaType == mediaTypeJSON {
		return ".json"
	}

	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return exts[0]
	}

	return ".txt"
}

// TeeReporter fans evidence out to several reporters. Steps nest so the body
// runs exactly once.
type TeeReporter []Reporter

func (t TeeReporter) Step(name string, body func()) {
	run := body

	for i := len(t) - 1; i >= 0; i-- {
		reporter, next := t[i], run
		run = func() { reporter.Step(name, next) }
	}

	run()
}

func (t TeeReporter) Attach(name string, content []byte, mediaType string) {
	for _, reporter := range t {
		reporter.Attach(name, content, mediaType)
	}
}
