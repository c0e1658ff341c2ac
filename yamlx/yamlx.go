/*
   Copyright 2025 The DIRPX Authors

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

// Package yamlx serializes audit manifests as YAML documents for offline
// tooling.
package yamlx

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"dirpx.dev/unsafety/apis"
)

// Version identifies the manifest document schema. Readers should reject
// documents with a version they do not understand instead of guessing.
const Version = "unsafety.dirpx.dev/v1"

// Document is the on-disk shape of an audit manifest.
//
// The document is deliberately free of timestamps, hostnames, or anything
// else environment-dependent: two builds of the same source must produce
// byte-identical manifests so that audits can be diffed in review.
type Document struct {
	// Version is the schema identifier, always Version for documents
	// produced by this package.
	Version string `yaml:"version"`

	// Sites lists every declared risky-code site in registration order.
	Sites []apis.RiskSite `yaml:"sites"`
}

// Write serializes the given sites as a manifest document.
//
// No redaction or filtering is performed here: whatever is present in the
// sites is exposed as-is. Callers that must withhold internal links or
// owners should filter the slice first.
func Write(w io.Writer, sites []apis.RiskSite) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Version: Version, Sites: sites}); err != nil {
		return fmt.Errorf("yamlx: encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("yamlx: close encoder: %w", err)
	}
	return nil
}

// Read decodes one manifest document and verifies its schema version.
// This is the entry point for tools that post-process manifests (diffing,
// policy checks, reporting).
func Read(r io.Reader) (Document, error) {
	var d Document
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return Document{}, fmt.Errorf("yamlx: decode manifest: %w", err)
	}
	if d.Version != Version {
		return Document{}, fmt.Errorf("yamlx: unsupported manifest version %q (want %q)", d.Version, Version)
	}
	return d, nil
}
