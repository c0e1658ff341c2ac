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

package kind

// Cross-boundary interop kinds
//
// These kinds cover code that exchanges data or control flow with code the
// host toolchain cannot verify — typically C libraries, system calls, or
// other foreign runtimes.
const (
	// UsesForeignCode marks risky code that calls into foreign code (such as
	// a C library). Foreign code cannot be verified by the host language's
	// safety rules, so the calling side carries the proof obligation: it must
	// uphold the foreign ABI, ownership and aliasing contracts itself.
	//
	// Audit tooling typically wants an owner and a link to the interop
	// contract attached to justifications of this kind.
	UsesForeignCode Kind = "USES_FOREIGN_CODE"

	// UsedByForeignCode marks risky code that is called *by* foreign code
	// (such as a callback registered with a C library). The code is risky
	// because it must correctly receive data and control flow from a caller
	// the host language knows nothing about.
	//
	// Distinct from UsesForeignCode: the direction of the boundary crossing
	// matters for auditing, since the invariants to check are different.
	UsedByForeignCode Kind = "USED_BY_FOREIGN_CODE"
)

// Performance and type-system escape kinds
//
// These kinds cover code that steps outside the checked subset of the
// language for speed or expressiveness, while still promising to uphold the
// invariants the checks would have enforced.
const (
	// Performance marks risky code that implements an algorithm requiring
	// maximum performance. The code itself is responsible for ensuring that
	// bounds checks, overflow checks and similar guards have effectively been
	// performed before they are skipped.
	//
	// Justifications of this kind should normally carry a Message explaining
	// which checks are elided and why that is sound.
	Performance Kind = "PERFORMANCE"

	// ImplementsSafeTransmute marks risky code that performs a legal type
	// conversion which cannot currently be expressed in the host type system.
	// The conversion is believed safe; the type system simply has no way to
	// state the invariant that makes it so.
	ImplementsSafeTransmute Kind = "IMPLEMENTS_SAFE_TRANSMUTE"

	// UsesVectorIntrinsics marks risky code that uses processor-specific
	// intrinsics, such as vector (SIMD) instructions. Some intrinsics are
	// risky because they are not guaranteed to be present on all target
	// processors; executing one on a processor that lacks it is undefined
	// behavior.
	UsesVectorIntrinsics Kind = "USES_VECTOR_INTRINSICS"
)

// Low-level infrastructure kinds
//
// These kinds cover the small set of components that legitimately need raw
// memory access: containers, allocators, and device drivers.
const (
	// ImplementsContainer marks risky code that implements a container type,
	// such as a vector, map, or pool. Container internals manage raw storage
	// on behalf of their element type and must maintain the safety invariants
	// the element-facing API promises.
	ImplementsContainer Kind = "IMPLEMENTS_CONTAINER"

	// ImplementsMemoryManager marks risky code that is part of a memory
	// manager implementation, such as a heap or a page table.
	//
	// This is distinct from ImplementsContainer: a container implementation
	// *uses* a memory manager, but is not part of the implementation of one.
	ImplementsMemoryManager Kind = "IMPLEMENTS_MEMORY_MANAGER"

	// ImplementsDeviceDriver marks risky code that is part of a device driver
	// and must access memory directly — for example, memory-mapped I/O
	// registers (MMIO).
	ImplementsDeviceDriver Kind = "IMPLEMENTS_DEVICE_DRIVER"
)

// Standard returns the standard vocabulary of kinds in a stable, documented
// order. The returned slice is a fresh copy on every call; callers may
// reorder or extend it freely.
func Standard() []Kind {
	return []Kind{
		UsesForeignCode,
		UsedByForeignCode,
		Performance,
		ImplementsSafeTransmute,
		ImplementsContainer,
		ImplementsDeviceDriver,
		ImplementsMemoryManager,
		UsesVectorIntrinsics,
	}
}
