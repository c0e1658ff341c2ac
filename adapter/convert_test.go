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

package adapter

import (
	"reflect"
	"testing"

	"dirpx.dev/unsafety"
	"dirpx.dev/unsafety/apis"
	"dirpx.dev/unsafety/registry"
)

func TestToDescriptor(t *testing.T) {
	j := unsafety.UsesForeignCode.
		Owner("alice").
		Bug("BUG-123").
		Link("https://example.com/design").
		Tag("abi", "c").
		Tag("abi", "sysv").
		Message("pointers handed to libfoo are pinned")

	d := ToDescriptor(j)

	want := apis.Descriptor{
		Kind:   "USES_FOREIGN_CODE",
		Owners: []string{"alice"},
		Bugs:   []string{"BUG-123"},
		Links:  []string{"https://example.com/design"},
		Tags: []apis.Tag{
			{Key: "abi", Value: "c"},
			{Key: "abi", Value: "sysv"},
		},
		Messages: []string{"pointers handed to libfoo are pinned"},
	}
	if !reflect.DeepEqual(d, want) {
		t.Fatalf("descriptor = %+v, want %+v", d, want)
	}
}

func TestToDescriptor_BareEntry(t *testing.T) {
	d := ToDescriptor(unsafety.Performance)
	if d.Kind != "PERFORMANCE" {
		t.Fatalf("kind = %q", d.Kind)
	}
	if d.Owners != nil || d.Bugs != nil || d.Links != nil || d.Tags != nil || d.Messages != nil {
		t.Fatal("bare entry must convert to a bare descriptor")
	}
}

func TestToDescriptor_CopiesAttributeStorage(t *testing.T) {
	j := unsafety.Performance.Owner("core-team")
	d := ToDescriptor(j)

	d.Owners[0] = "corrupted"
	if j.Owners[0] != "core-team" {
		t.Fatal("descriptor shares storage with the justification")
	}
}

func TestToDescriptors_PreservesOrder(t *testing.T) {
	ds := ToDescriptors([]unsafety.Justification{
		unsafety.Performance,
		unsafety.UsesVectorIntrinsics,
	})
	if len(ds) != 2 || ds[0].Kind != "PERFORMANCE" || ds[1].Kind != "USES_VECTOR_INTRINSICS" {
		t.Fatalf("descriptors = %+v", ds)
	}

	if ToDescriptors(nil) != nil {
		t.Fatal("empty input must convert to nil")
	}
}

func TestToRiskSite(t *testing.T) {
	e := registry.Entry{
		File: "internal/storage/arena.go",
		Line: 41,
		Justifications: []unsafety.Justification{
			unsafety.ImplementsMemoryManager.Owner("storage-team"),
		},
	}

	s := ToRiskSite(e, "storage-core")
	if s.File != e.File || s.Line != e.Line {
		t.Fatalf("location = %s:%d", s.File, s.Line)
	}
	if s.Subsystem != "storage-core" {
		t.Fatalf("subsystem = %q", s.Subsystem)
	}
	if len(s.Justifications) != 1 || s.Justifications[0].Kind != "IMPLEMENTS_MEMORY_MANAGER" {
		t.Fatalf("justifications = %+v", s.Justifications)
	}
}
