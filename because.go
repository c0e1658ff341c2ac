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

// Acknowledge does nothing. It exists only so that Because can force every
// justification expression through a typed call site: an argument that is not
// a Justification is rejected by the compiler, exactly at the expression that
// is wrong.
func Acknowledge(Justification) {}

// Scope is the zero-size witness that a risky region has been justified.
//
// A Scope carries no data: the justifications passed to Because live in the
// source (and, for declared ones, in the registry), not in the running
// program. The only way to obtain a Scope is through Because, which requires
// at least one justification.
type Scope struct{}

// Because associates one or more justifications with the risky region that
// follows. Two accepted shapes:
//
//	unsafety.Because(reason).Do(func() { ... })
//	unsafety.Because(reason1, reason2).Do(func() { ... })
//
// Every argument is passed through Acknowledge, so each justification
// expression is type-checked at this call site. A call with no justification
// at all does not compile — a risky region must have at least one.
//
// When a single region has more than one reason for being risky, prefer
// splitting it into separate regions with separate justifications; use the
// multi-justification form only when splitting is not possible.
func Because(first Justification, more ...Justification) Scope {
	Acknowledge(first)
	for _, j := range more {
		Acknowledge(j)
	}
	return Scope{}
}

// Do evaluates the region exactly as if it had been written without any
// wrapping: same result, same side effects, same panics. Do adds no control
// flow — no recover, no retry, no translation.
func (Scope) Do(region func()) {
	region()
}

// Eval evaluates a region that produces a value and returns that value
// unchanged. It is a free function because Go methods cannot be generic.
//
//	n := unsafety.Eval(unsafety.Because(unsafety.Performance), func() int {
//	    return fastPathLen(buf)
//	})
func Eval[T any](_ Scope, region func() T) T {
	return region()
}

// Eval2 is Eval for regions producing two values, most commonly (T, error).
// Both values are returned unchanged; an error result is not inspected,
// wrapped, or translated.
func Eval2[T1, T2 any](_ Scope, region func() (T1, T2)) (T1, T2) {
	return region()
}
