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

package manifest

import (
	"strings"
	"testing"

	"dirpx.dev/unsafety"
	"dirpx.dev/unsafety/registry"
)

func testEntries() []registry.Entry {
	return []registry.Entry{
		{
			File: "/build/src/project/internal/storage/arena.go",
			Line: 41,
			Justifications: []unsafety.Justification{
				unsafety.ImplementsMemoryManager.Owner("storage-team"),
			},
		},
		{
			File: "/build/src/project/internal/hash/simd/xxh3.go",
			Line: 12,
			Justifications: []unsafety.Justification{
				unsafety.Performance,
				unsafety.UsesVectorIntrinsics.Tag("cpu", "avx2"),
			},
		},
		{
			File: "/build/src/project/cmd/tool/main.go",
			Line: 7,
			Justifications: []unsafety.Justification{
				unsafety.UsesForeignCode.Bug("BUG-99"),
			},
		},
	}
}

func testManifest(t *testing.T) *Manifest {
	t.Helper()
	m, err := New(testEntries(),
		WithRoot("/build/src/project"),
		WithSubsystem("internal/storage", "storage-core"),
		WithSubsystem("internal/*/simd", "vector-kernels"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestSubsystem_Resolution(t *testing.T) {
	m := testManifest(t)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"prefix", "internal/storage/arena.go", "storage-core"},
		{"wildcard", "internal/hash/simd/xxh3.go", "vector-kernels"},
		{"fallback", "cmd/tool/main.go", FallbackSubsystem},
		{"root trimmed", "/build/src/project/internal/storage/pool.go", "storage-core"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Subsystem(tt.path); got != tt.want {
				t.Fatalf("Subsystem(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSites_ResolvedAndTrimmed(t *testing.T) {
	m := testManifest(t)

	sites := m.Sites()
	if len(sites) != 3 {
		t.Fatalf("sites = %d, want 3", len(sites))
	}

	s := sites[0]
	if s.File != "internal/storage/arena.go" || s.Line != 41 {
		t.Fatalf("site 0 location = %s:%d", s.File, s.Line)
	}
	if s.Subsystem != "storage-core" {
		t.Fatalf("site 0 subsystem = %q", s.Subsystem)
	}
	if len(s.Justifications) != 1 || s.Justifications[0].Kind != "IMPLEMENTS_MEMORY_MANAGER" {
		t.Fatalf("site 0 justifications = %+v", s.Justifications)
	}

	multi := sites[1]
	if len(multi.Justifications) != 2 {
		t.Fatalf("site 1 must keep both reasons, got %d", len(multi.Justifications))
	}
	if multi.Justifications[1].Tags[0].Value != "avx2" {
		t.Fatal("tag lost in conversion")
	}

	// The returned slice is a snapshot.
	sites[2].Subsystem = "corrupted"
	if m.Sites()[2].Subsystem == "corrupted" {
		t.Fatal("Sites() leaked internal state")
	}
}

func TestNew_EmptyEntries(t *testing.T) {
	m, err := New(nil, WithSubsystem("internal", "core"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if len(m.Sites()) != 0 {
		t.Fatal("empty input must produce an empty manifest")
	}
}

func TestNew_InvalidPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"empty", ""},
		{"all wildcards", "*/*"},
		{"empty segment", "internal//storage"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(nil, WithSubsystem(tt.prefix, "x"))
			if err == nil {
				t.Fatalf("New accepted invalid prefix %q", tt.prefix)
			}
			if !strings.Contains(err.Error(), "manifest:") {
				t.Fatalf("error %q lacks package context", err)
			}
		})
	}
}

func TestWithFallback(t *testing.T) {
	m, err := New(nil, WithFallback("unreviewed"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.Subsystem("anything/at/all.go"); got != "unreviewed" {
		t.Fatalf("fallback = %q", got)
	}
}
