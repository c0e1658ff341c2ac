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

package apis

// Tag is a single key/value annotation in view form.
//
// Tags are an append-only multiset: the same key may appear more than once
// and consumers must not collapse duplicates. Order is the order in which
// the annotations were attached.
type Tag struct {
	// Key is the tag name, e.g. "subsystem".
	Key string `json:"key" yaml:"key"`

	// Value is the tag payload, e.g. "net".
	Value string `json:"value" yaml:"value"`
}

// Descriptor is a flat, serialization-friendly snapshot of one justification.
//
// This type intentionally uses plain strings (not the internal Kind value
// type) so that it can live in the public "apis" layer and be consumed by
// exporters (YAML, proto) and by user-defined audit pipelines.
//
// Implementations SHOULD store only normalized, validated kinds here; all
// slices are in attachment order.
type Descriptor struct {
	// Kind is the canonical justification kind, e.g. "USES_FOREIGN_CODE".
	Kind string `json:"kind" yaml:"kind"`

	// Owners lists accountable persons or teams. MAY be empty.
	Owners []string `json:"owners,omitempty" yaml:"owners,omitempty"`

	// Bugs lists bug-tracker references. MAY be empty.
	Bugs []string `json:"bugs,omitempty" yaml:"bugs,omitempty"`

	// Links lists URLs to design docs and similar pages. MAY be empty.
	Links []string `json:"links,omitempty" yaml:"links,omitempty"`

	// Tags lists key/value annotations, duplicates retained. MAY be empty.
	Tags []Tag `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Messages lists free-text notes for auditors. MAY be empty.
	Messages []string `json:"messages,omitempty" yaml:"messages,omitempty"`
}
