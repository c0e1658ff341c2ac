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

// Package unsafety provides annotations for describing and auditing usages of
// risky code: memory-unsafe access through package unsafe, cgo calls, raw
// pointer manipulation, and similar operations the toolchain cannot verify.
//
// The package has no effect on the behavior of annotated code. Its purpose is
// to let developers record *why* risky code exists, and to let audit tooling
// enumerate every risky region in a codebase together with its justification.
//
// Instead of this:
//
//	// Scary interop code:
//	ptr := allocateForeignObject()
//	useForeignObject(ptr, 42)
//	freeForeignObject(ptr)
//
// developers can do this:
//
//	unsafety.Because(unsafety.UsesForeignCode).Do(func() {
//	    // Scary interop code:
//	    ptr := allocateForeignObject()
//	    useForeignObject(ptr, 42)
//	    freeForeignObject(ptr)
//	})
//
// Justifications are immutable values. They can be enriched with owners, bug
// references, links, tags and messages, and derived justifications can be
// bound to package-level variables for reuse:
//
//	var fancyNetworkDriver = unsafety.ImplementsDeviceDriver.
//	    Bug("https://bugs.example.com/1234").
//	    Owner("foo").
//	    Owner("bar").
//	    Link("https://example.com/fancy_driver_design.html")
//
// See dirpx.dev/unsafety/registry for making such declarations discoverable
// by audit tooling.
package unsafety

import "dirpx.dev/unsafety/kind"

// Tag is a single key/value annotation on a Justification.
//
// Tags form an append-only multiset: attaching the same key twice yields two
// independent entries. No last-writer-wins or dedup policy is applied — audit
// tooling sees every pair in the order it was attached.
type Tag struct {
	// Key is the tag name, e.g. "subsystem" or "reviewed".
	Key string

	// Value is the tag payload, e.g. "net" or "2025-11-03".
	Value string
}

// Justification is the canonical annotation value for a risky code region.
//
// It carries:
//   - Kind: stable, machine-readable identity of the justification (required);
//   - Owners: accountable persons or teams;
//   - Bugs: bug-tracker references (numbers or URLs);
//   - Links: URLs to design docs or other relevant pages;
//   - Tags: arbitrary key/value annotations;
//   - Messages: free-text notes addressed to auditors.
//
// All attribute helpers (Owner, Bug, Link, Tag, Message) return a new value
// with freshly copied attribute slices, so Justification values can be safely
// shared, stored in package-level variables, and derived from concurrently.
// The Kind is set at construction and never changes through derivation.
type Justification struct {
	// Kind is the primary classification of the justification, e.g.
	// kind.UsesForeignCode or kind.Performance. Must be a normalized kind
	// from unsafety/kind.
	Kind kind.Kind

	// Owners identifies owners or experts accountable for this part of the
	// design. Names, user ids, or email addresses. Append-only.
	Owners []string

	// Bugs holds identifiers in a bug-tracking system. Typically URLs or bug
	// numbers. Append-only.
	Bugs []string

	// Links holds URLs to relevant documents, such as design docs.
	// Append-only.
	Links []string

	// Tags holds arbitrary key/value annotations. Append-only multiset:
	// repeated keys are retained, not overwritten.
	Tags []Tag

	// Messages holds free-text notes for auditors. Unlike code comments,
	// these are part of the machine-readable record. Append-only, ordered.
	Messages []string
}

// New constructs a Justification with the given kind and no other attributes.
//
// Usage:
//
//	var parsesUntrustedPages = unsafety.New(kind.MustParse("PARSES_UNTRUSTED_PAGES"),
//	    unsafety.WithOwner("storage-team"),
//	    unsafety.WithLink("https://example.com/page_layout.html"),
//	)
//
// It always returns a value with its own attribute storage and applies all
// provided options in order.
func New(k kind.Kind, opts ...Option) Justification {
	j := Justification{Kind: k}
	for _, opt := range opts {
		j = opt(j)
	}
	return j
}

// Owner returns a copy of j with one more accountable owner appended.
// The original justification is not modified.
func (j Justification) Owner(owner string) Justification {
	j.Owners = appendCopy(j.Owners, owner)
	return j
}

// Bug returns a copy of j with one more bug reference appended. This might be
// a simple identifier, such as "42", although it will typically be a URL in a
// bug-tracking database. The original justification is not modified.
func (j Justification) Bug(bugID string) Justification {
	j.Bugs = appendCopy(j.Bugs, bugID)
	return j
}

// Link returns a copy of j with one more document link (URL) appended.
// The original justification is not modified.
func (j Justification) Link(url string) Justification {
	j.Links = appendCopy(j.Links, url)
	return j
}

// Tag returns a copy of j with one more key/value annotation appended.
//
// Repeated keys accumulate — each call adds an independent entry and earlier
// entries are never replaced. The original justification is not modified.
func (j Justification) Tag(key, value string) Justification {
	// Full copy, same as appendCopy: two derivations from a shared base must
	// never write into the same backing array.
	tags := make([]Tag, len(j.Tags), len(j.Tags)+1)
	copy(tags, j.Tags)
	j.Tags = append(tags, Tag{Key: key, Value: value})
	return j
}

// Message returns a copy of j with one more free-text note appended. This is
// different from a code comment because the note is visible to audit tooling.
// The original justification is not modified.
func (j Justification) Message(message string) Justification {
	j.Messages = appendCopy(j.Messages, message)
	return j
}

// appendCopy appends v to a freshly allocated copy of src.
//
// A plain append would let two justifications derived from the same base
// share (and overwrite) one backing array when the base has spare capacity.
// Copying keeps every derived value fully independent.
func appendCopy(src []string, v string) []string {
	dst := make([]string, len(src), len(src)+1)
	copy(dst, src)
	return append(dst, v)
}
