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

// Package protox converts audit views into protobuf well-known types for
// analysis pipelines that exchange metadata as proto payloads.
package protox

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/unsafety/apis"
)

// DescriptorStruct converts a justification descriptor into a
// *structpb.Struct. Empty attribute lists are omitted, mirroring the
// descriptor's own omitempty JSON shape.
func DescriptorStruct(d apis.Descriptor) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(descriptorMap(d))
	if err != nil {
		return nil, fmt.Errorf("protox: descriptor %q: %w", d.Kind, err)
	}
	return s, nil
}

// SiteStruct converts a risky-code site into a *structpb.Struct, including
// all of its justification descriptors.
func SiteStruct(site apis.RiskSite) (*structpb.Struct, error) {
	m := map[string]any{
		"file": site.File,
		"line": site.Line,
	}
	if site.Subsystem != "" {
		m["subsystem"] = site.Subsystem
	}
	js := make([]any, len(site.Justifications))
	for i, d := range site.Justifications {
		js[i] = descriptorMap(d)
	}
	m["justifications"] = js

	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("protox: site %s:%d: %w", site.File, site.Line, err)
	}
	return s, nil
}

// MarshalSite serializes a site as canonical protobuf JSON.
//
// protojson (not encoding/json) must be used on the struct value so that
// well-known-type semantics are preserved for consumers on other runtimes.
func MarshalSite(site apis.RiskSite) ([]byte, error) {
	s, err := SiteStruct(site)
	if err != nil {
		return nil, err
	}
	b, err := protojson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("protox: marshal site %s:%d: %w", site.File, site.Line, err)
	}
	return b, nil
}

// descriptorMap builds the structpb-compatible representation of a
// descriptor. Values are limited to the types structpb.NewStruct accepts.
func descriptorMap(d apis.Descriptor) map[string]any {
	m := map[string]any{
		"kind": d.Kind,
	}
	if v := anyStrings(d.Owners); v != nil {
		m["owners"] = v
	}
	if v := anyStrings(d.Bugs); v != nil {
		m["bugs"] = v
	}
	if v := anyStrings(d.Links); v != nil {
		m["links"] = v
	}
	if len(d.Tags) > 0 {
		tags := make([]any, len(d.Tags))
		for i, t := range d.Tags {
			tags[i] = map[string]any{"key": t.Key, "value": t.Value}
		}
		m["tags"] = tags
	}
	if v := anyStrings(d.Messages); v != nil {
		m["messages"] = v
	}
	return m
}

// anyStrings widens []string to the []any shape structpb requires.
// Returns nil for empty input.
func anyStrings(src []string) []any {
	if len(src) == 0 {
		return nil
	}
	out := make([]any, len(src))
	for i, s := range src {
		out[i] = s
	}
	return out
}
