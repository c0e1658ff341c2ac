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

package protox

import (
	"encoding/json"
	"testing"

	"dirpx.dev/unsafety/apis"
)

func testSite() apis.RiskSite {
	return apis.RiskSite{
		File:      "internal/storage/arena.go",
		Line:      41,
		Subsystem: "storage-core",
		Justifications: []apis.Descriptor{
			{
				Kind:   "IMPLEMENTS_MEMORY_MANAGER",
				Owners: []string{"storage-team"},
				Bugs:   []string{"BUG-7"},
				Tags: []apis.Tag{
					{Key: "reviewed", Value: "2025-11-03"},
					{Key: "reviewed", Value: "2025-12-01"},
				},
			},
		},
	}
}

func TestDescriptorStruct(t *testing.T) {
	d := apis.Descriptor{
		Kind:     "USES_FOREIGN_CODE",
		Owners:   []string{"alice", "bob"},
		Messages: []string{"pointers are pinned"},
	}

	s, err := DescriptorStruct(d)
	if err != nil {
		t.Fatalf("DescriptorStruct: %v", err)
	}

	f := s.GetFields()
	if f["kind"].GetStringValue() != "USES_FOREIGN_CODE" {
		t.Fatalf("kind = %q", f["kind"].GetStringValue())
	}
	owners := f["owners"].GetListValue().GetValues()
	if len(owners) != 2 || owners[1].GetStringValue() != "bob" {
		t.Fatalf("owners = %v", owners)
	}
	// Empty attributes are omitted, not encoded as empty lists.
	if _, ok := f["bugs"]; ok {
		t.Fatal("empty bugs must be omitted")
	}
}

func TestSiteStruct(t *testing.T) {
	s, err := SiteStruct(testSite())
	if err != nil {
		t.Fatalf("SiteStruct: %v", err)
	}

	f := s.GetFields()
	if f["file"].GetStringValue() != "internal/storage/arena.go" {
		t.Fatalf("file = %q", f["file"].GetStringValue())
	}
	if f["line"].GetNumberValue() != 41 {
		t.Fatalf("line = %v", f["line"].GetNumberValue())
	}
	if f["subsystem"].GetStringValue() != "storage-core" {
		t.Fatalf("subsystem = %q", f["subsystem"].GetStringValue())
	}

	js := f["justifications"].GetListValue().GetValues()
	if len(js) != 1 {
		t.Fatalf("justifications = %d", len(js))
	}
	jf := js[0].GetStructValue().GetFields()
	if jf["kind"].GetStringValue() != "IMPLEMENTS_MEMORY_MANAGER" {
		t.Fatalf("kind = %q", jf["kind"].GetStringValue())
	}
	// Duplicate tag keys survive as independent entries.
	tags := jf["tags"].GetListValue().GetValues()
	if len(tags) != 2 {
		t.Fatalf("tags = %d, want multiset preserved", len(tags))
	}
}

func TestMarshalSite_ProducesCanonicalJSON(t *testing.T) {
	b, err := MarshalSite(testSite())
	if err != nil {
		t.Fatalf("MarshalSite: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["file"] != "internal/storage/arena.go" {
		t.Fatalf("file = %v", decoded["file"])
	}
	if decoded["subsystem"] != "storage-core" {
		t.Fatalf("subsystem = %v", decoded["subsystem"])
	}
	if _, ok := decoded["justifications"].([]any); !ok {
		t.Fatalf("justifications shape = %T", decoded["justifications"])
	}
}
