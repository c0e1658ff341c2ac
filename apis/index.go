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

package apis

// Index is an immutable, concurrency-safe view of subsystem-labeling rules.
// It resolves a source path (slash-separated, usually repo-relative) into the
// audit subsystem that location belongs to.
//
// Index labels locations for reporting; it enforces nothing. Deciding which
// justifications are acceptable where is left to external policy tooling.
type Index interface {
	// Subsystem returns the label for the given path. When no rule matches,
	// the index must fall back to its configured fallback label.
	Subsystem(path string) string

	// Explain returns a human-readable description of which rule matched.
	// Implementations may return an empty string in production builds.
	Explain(path string) string
}
