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

// Option configures the Manifest at build time.
// All options are applied to an internal builder and then frozen into an
// immutable Manifest.
type Option func(*builder)

// WithSubsystem adds a subsystem-labeling rule: any path under the given
// slash-separated prefix is labelled with name. A more specific prefix wins.
// Use "*" to match a single segment:
//
//	WithSubsystem("internal/storage", "storage-core")
//	WithSubsystem("internal/*/simd", "vector-kernels")
func WithSubsystem(prefix, name string) Option {
	return func(b *builder) { b.rules = append(b.rules, rule{prefix: prefix, label: name}) }
}

// WithFallback replaces the label applied when no rule matches
// (FallbackSubsystem by default).
func WithFallback(name string) Option {
	return func(b *builder) { b.fallback = name }
}

// WithRoot sets the path prefix trimmed from entry files before matching and
// before they appear in the manifest. runtime.Caller reports
// build-environment absolute paths; trimming the module root lets subsystem
// rules stay repo-relative.
func WithRoot(prefix string) Option {
	return func(b *builder) { b.root = prefix }
}
