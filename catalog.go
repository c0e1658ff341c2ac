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

package unsafety

import "dirpx.dev/unsafety/kind"

// The canonical catalog.
//
// Each value below is a ready-to-use Justification for one of the recurring
// reasons risky code exists. Catalog entries carry only their Kind — deriving
// from an entry (catalog.Owner("foo"), ...) produces a distinct value and
// never changes the entry itself.
//
// Most real usages should start from one of these instead of calling New
// directly, so that audit tooling can pattern-match against a shared
// vocabulary. The per-kind semantics are documented in unsafety/kind.
var (
	// UsesForeignCode justifies code that calls into foreign (non-Go) code.
	UsesForeignCode = New(kind.UsesForeignCode)

	// UsedByForeignCode justifies code that is called by foreign code and
	// must correctly exchange data and control flow with it.
	UsedByForeignCode = New(kind.UsedByForeignCode)

	// Performance justifies code that safely implements an algorithm
	// requiring maximum performance and takes over the elided checks itself.
	Performance = New(kind.Performance)

	// ImplementsSafeTransmute justifies a legal type conversion the host
	// type system cannot currently express.
	ImplementsSafeTransmute = New(kind.ImplementsSafeTransmute)

	// ImplementsContainer justifies container internals (vectors, maps,
	// pools) that manage raw storage for their elements.
	ImplementsContainer = New(kind.ImplementsContainer)

	// ImplementsDeviceDriver justifies device-driver code needing direct
	// memory access, e.g. memory-mapped I/O registers.
	ImplementsDeviceDriver = New(kind.ImplementsDeviceDriver)

	// ImplementsMemoryManager justifies memory-manager implementations
	// (heaps, page tables). Containers use a memory manager; they are not
	// part of one.
	ImplementsMemoryManager = New(kind.ImplementsMemoryManager)

	// UsesVectorIntrinsics justifies processor-specific intrinsic usage that
	// is not guaranteed present on all target processors.
	UsesVectorIntrinsics = New(kind.UsesVectorIntrinsics)
)

// catalog is the frozen kind -> entry index behind Lookup. It is populated
// once at package load and never mutated afterwards, so reads need no
// synchronization.
var catalog = func() map[kind.Kind]Justification {
	m := make(map[kind.Kind]Justification, 8)
	for _, j := range []Justification{
		UsesForeignCode,
		UsedByForeignCode,
		Performance,
		ImplementsSafeTransmute,
		ImplementsContainer,
		ImplementsDeviceDriver,
		ImplementsMemoryManager,
		UsesVectorIntrinsics,
	} {
		m[j.Kind] = j
	}
	return m
}()

// Lookup returns the canonical catalog entry for the given kind.
//
// Only the standard vocabulary is indexed here; project-specific kinds
// return (zero value, false). Lookup never exposes mutable state — entries
// have no attribute storage to share.
func Lookup(k kind.Kind) (Justification, bool) {
	j, ok := catalog[k]
	return j, ok
}

// Catalog returns the canonical entries in the stable vocabulary order
// (kind.Standard). The returned slice is a fresh copy on every call.
func Catalog() []Justification {
	ks := kind.Standard()
	out := make([]Justification, 0, len(ks))
	for _, k := range ks {
		out = append(out, catalog[k])
	}
	return out
}
