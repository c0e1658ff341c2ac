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

// RiskSite is one declared risky-code site in view form: where a
// justification was declared, which subsystem that location belongs to, and
// the full justification records.
//
// This is the unit that audit tooling enumerates. A site with more than one
// descriptor is a region that had several independent reasons for being
// risky.
type RiskSite struct {
	// File is the source file of the declaration. Exporters usually make
	// this repo-relative (see manifest.WithRoot).
	File string `json:"file" yaml:"file"`

	// Line is the 1-based declaration line within File.
	Line int `json:"line" yaml:"line"`

	// Subsystem is the audit label resolved for this location, e.g.
	// "storage-core". MAY be empty when no index was consulted.
	Subsystem string `json:"subsystem,omitempty" yaml:"subsystem,omitempty"`

	// Justifications holds the full records attached to this site,
	// in declaration order. Never empty for a well-formed site.
	Justifications []Descriptor `json:"justifications" yaml:"justifications"`
}
