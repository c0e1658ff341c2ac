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

package registry

import (
	"runtime"
	"sync"

	"dirpx.dev/unsafety"
)

// Entry is one recorded declaration: a source location plus the
// justifications declared there.
type Entry struct {
	// File is the source file of the Declare call, as reported by the
	// runtime. Build-environment absolute; see manifest.WithRoot for
	// trimming.
	File string

	// Line is the 1-based line of the Declare call within File.
	Line int

	// Justifications holds the declared records in declaration order.
	// Never empty.
	Justifications []unsafety.Justification
}

var (
	// mu guards entries during package-initialization-time registration.
	// After program load the registry is effectively read-only; the mutex
	// stays only so that Entries can be called while a lazily-loaded plugin
	// is still initializing.
	mu      sync.RWMutex
	entries []Entry
)

// Declare records the justification together with its declaration site and
// returns it unchanged.
//
// Declare is meant to initialize package-level variables, so that
// registration cost is paid once at program load and never on the wrapped
// code path. The returned value is the argument itself — Declare is
// transparent in the same sense unsafety.Because is.
func Declare(j unsafety.Justification) unsafety.Justification {
	record(2, []unsafety.Justification{j})
	return j
}

// DeclareAll records several justifications as a single site. Like Because,
// it requires at least one justification at compile time. It returns nothing
// because a multi-justification declaration has no single value to bind;
// callers keep their own references:
//
//	var (
//	    fastChecksum = unsafety.Performance.Owner("net-team")
//	    simdChecksum = unsafety.UsesVectorIntrinsics.Owner("net-team")
//	)
//
//	func init() { registry.DeclareAll(fastChecksum, simdChecksum) }
func DeclareAll(first unsafety.Justification, more ...unsafety.Justification) {
	js := make([]unsafety.Justification, 0, 1+len(more))
	js = append(js, first)
	js = append(js, more...)
	record(2, js)
}

// record captures the caller's source location and appends one entry.
// skip counts stack frames above record itself, as in runtime.Caller.
func record(skip int, js []unsafety.Justification) {
	file, line := "", 0
	if _, f, l, ok := runtime.Caller(skip); ok {
		file, line = f, l
	}
	mu.Lock()
	entries = append(entries, Entry{File: file, Line: line, Justifications: js})
	mu.Unlock()
}

// Entries returns a snapshot of every recorded declaration, in registration
// order. The snapshot is a fresh copy: mutating it does not affect the
// registry, and later registrations do not grow it.
func Entries() []Entry {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Len returns the number of recorded declarations.
func Len() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(entries)
}
