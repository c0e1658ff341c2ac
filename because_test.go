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

import (
	"errors"
	"testing"
	"unsafe"
)

func TestDo_RunsRegionExactlyOnce(t *testing.T) {
	calls := 0
	Because(UsesForeignCode).Do(func() {
		calls++
	})
	if calls != 1 {
		t.Fatalf("region ran %d times, want 1", calls)
	}
}

func TestEval_ReturnsRegionValueUnchanged(t *testing.T) {
	compute := func(x int) int { return x*x + 1 }

	direct := compute(7)
	wrapped := Eval(Because(Performance.Owner("alice")), func() int {
		return compute(7)
	})
	if wrapped != direct {
		t.Fatalf("Eval = %d, direct = %d", wrapped, direct)
	}
}

func TestEval2_PassesBothValuesThrough(t *testing.T) {
	sentinel := errors.New("boom")
	v, err := Eval2(Because(UsesForeignCode), func() (string, error) {
		return "payload", sentinel
	})
	if v != "payload" {
		t.Fatalf("value = %q", v)
	}
	if !errors.Is(err, sentinel) {
		t.Fatal("error value was not passed through unchanged")
	}
}

func TestBecause_ListFormBehavesLikeSingleForm(t *testing.T) {
	compute := func() int { return 42 }

	single := Eval(Because(Performance), compute)
	multi := Eval(Because(Performance, ImplementsDeviceDriver), compute)
	if single != multi {
		t.Fatalf("single = %d, multi = %d; extra justifications must not change behavior", single, multi)
	}
}

func TestDo_PanicPassesThrough(t *testing.T) {
	defer func() {
		r := recover()
		if r != "scary" {
			t.Fatalf("recovered %v, want the region's own panic value", r)
		}
	}()
	Because(ImplementsMemoryManager).Do(func() {
		panic("scary")
	})
}

// TestDo_RealRiskyRegion exercises the construct around an actual unsafe
// operation, the way annotated code uses it.
func TestDo_RealRiskyRegion(t *testing.T) {
	buf := [4]byte{1, 2, 3, 4}

	var first byte
	Because(Performance.Message("index 0 of a fixed-size array")).Do(func() {
		first = *(*byte)(unsafe.Pointer(&buf[0]))
	})
	if first != 1 {
		t.Fatalf("first = %d", first)
	}
}

func TestScope_IsZeroSize(t *testing.T) {
	// The witness must add no runtime payload.
	if unsafe.Sizeof(Scope{}) != 0 {
		t.Fatalf("Scope size = %d bytes, want 0", unsafe.Sizeof(Scope{}))
	}
}

func TestAcknowledge_AcceptsAnyJustification(t *testing.T) {
	// Acknowledge has no behavior; this pins its signature as the typed
	// validation target Because relies on.
	Acknowledge(UsesForeignCode)
	Acknowledge(New(UsesForeignCode.Kind).Owner("x"))
}
