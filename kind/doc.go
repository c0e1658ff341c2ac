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

// Package kind provides parsing, normalization and validation for
// justification kinds.
//
// A "kind" is the stable, machine-readable identity of a justification, such
// as "USES_FOREIGN_CODE" or "IMPLEMENTS_DEVICE_DRIVER". Kinds are meant to be:
//
//   - short and stable;
//   - uppercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON/YAML payloads and for pattern-matching in
//     audit tooling.
//
// IMPORTANT: Empty kinds ("") are NOT allowed. Every justification MUST have
// a non-empty kind.
//
// This package defines the canonical representation, the functions that
// convert arbitrary user input to that canonical form, and the standard
// vocabulary of kinds shared by the whole unsafety ecosystem. The vocabulary
// is intentionally extensible — projects may declare their own kinds with
// MustParse, following the same shape.
package kind
