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

// Package manifest builds deterministic, immutable audit manifests from
// declared justification sites (dirpx.dev/unsafety/registry).
//
// A manifest answers two questions for audit tooling:
//
//   - which risky-code sites exist in this binary, with which
//     justifications (Sites);
//   - which subsystem does each site belong to (Subsystem), resolved by
//     longest-prefix-match over slash-separated source paths, with "*" as a
//     single-segment wildcard.
//
// Subsystem labels are reporting metadata only. The manifest never decides
// whether a justification is *acceptable* in a subsystem — that judgement
// belongs to external policy tooling consuming the manifest.
//
// Manifests are built once from functional options and frozen; lookups are
// safe for concurrent use.
package manifest
