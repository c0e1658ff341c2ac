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
	"fmt"
	"strings"

	"dirpx.dev/unsafety/adapter"
	"dirpx.dev/unsafety/apis"
	"dirpx.dev/unsafety/manifest/internal/pathtrie"
	"dirpx.dev/unsafety/registry"
)

// New constructs an immutable Manifest snapshot from the given registry
// entries.
//
// Build process overview:
//
//  1. Apply user-provided options (subsystem rules, fallback, root).
//  2. Validate all subsystem prefixes and compile them into a segment trie
//     supporting longest-prefix-match with '*' as a single-segment wildcard.
//  3. Resolve every entry's subsystem and freeze the resulting sites.
//
// The resulting Manifest is fully thread-safe and designed for long-lived
// reuse. No shared references to the builder or to caller-provided state
// remain after New returns.
//
// Errors returned from this function indicate invalid prefixes or
// configuration issues during trie construction.
func New(entries []registry.Entry, opts ...Option) (*Manifest, error) {
	// (0) Start with an empty builder and apply options.
	b := newBuilder()
	for _, opt := range opts {
		opt(b)
	}

	// (1) Compile subsystem rules into a trie.
	t := pathtrie.New[string]()
	for _, r := range b.rules {
		p := normalizePath(r.prefix, "")
		if p == "" {
			return nil, fmt.Errorf("manifest: empty subsystem prefix for label %q", r.label)
		}
		if err := t.Insert(p, r.label); err != nil {
			return nil, fmt.Errorf("manifest: cannot insert subsystem prefix %q: %w", r.prefix, err)
		}
	}

	m := &Manifest{
		trie:     t,
		root:     b.root,
		fallback: b.fallback,
	}

	// (2) Resolve and freeze sites. Entries are kept in registration order
	// so manifests stay deterministic for a given binary.
	m.sites = make([]apis.RiskSite, 0, len(entries))
	for _, e := range entries {
		rel := normalizePath(e.File, b.root)
		site := adapter.ToRiskSite(e, m.subsystemFor(rel))
		site.File = rel
		m.sites = append(m.sites, site)
	}

	return m, nil
}

// Manifest is an immutable audit snapshot: resolved risky-code sites plus
// the subsystem index used to label them. Lookups are O(path depth) and safe
// for concurrent use once constructed.
type Manifest struct {
	// trie resolves subsystem labels by longest-prefix-match over
	// slash-separated paths ('*' matches one segment).
	trie *pathtrie.Trie[string]

	// root is the path prefix trimmed from entry files before matching,
	// so rules can be written repo-relative.
	root string

	// fallback is the label used when no rule matches a path.
	fallback string

	// sites holds the frozen, resolved view of the input entries.
	sites []apis.RiskSite
}

// Manifest implements the apis.Index contract used by exporters.
var _ apis.Index = (*Manifest)(nil)

// Sites returns the resolved risky-code sites in registration order.
// The returned slice is a fresh copy; treat the element payloads as
// read-only.
func (m *Manifest) Sites() []apis.RiskSite {
	out := make([]apis.RiskSite, len(m.sites))
	copy(out, m.sites)
	return out
}

// Subsystem resolves the subsystem label for the given source path.
//
// Resolution order (highest to lowest):
//  1. deepest matching subsystem prefix rule (LPM, '*' = one segment);
//  2. the configured fallback label.
//
// The path is normalized the same way entry files are: the configured root
// prefix and any leading slash are trimmed first.
func (m *Manifest) Subsystem(path string) string {
	rel := normalizePath(path, m.root)
	return m.subsystemFor(rel)
}

// subsystemFor resolves an already-normalized path.
func (m *Manifest) subsystemFor(rel string) string {
	if v, ok := m.trie.Match(rel); ok {
		return v
	}
	return m.fallback
}

// Explain produces a textual trace of how the subsystem label for a path was
// resolved. This is primarily a diagnostic tool: it shows whether a prefix
// rule matched (and which pattern) or the fallback applied.
//
// Example output:
//
//	path="internal/storage/arena.go"
//	subsystem: source=prefix pattern="internal/storage" -> "storage-core"
//
// Notes:
//   - source ∈ {prefix | fallback}
//   - pattern is the rule as it was stored in the trie (may contain "*")
func (m *Manifest) Explain(path string) string {
	rel := normalizePath(path, m.root)

	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "path=%q\n", rel)
	if v, ok, pat := m.trie.MatchWithPattern(rel); ok {
		_, _ = fmt.Fprintf(&b, "subsystem: source=prefix pattern=%q -> %q", pat, v)
	} else {
		_, _ = fmt.Fprintf(&b, "subsystem: source=fallback -> %q", m.fallback)
	}
	return b.String()
}

// normalizePath trims the configured root prefix and any leading slash, so
// that trie patterns written repo-relative match files reported with
// build-environment absolute paths.
func normalizePath(path, root string) string {
	if root != "" {
		path = strings.TrimPrefix(path, root)
	}
	return strings.TrimPrefix(path, "/")
}
