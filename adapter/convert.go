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

// Package adapter converts concrete annotation values into the portable view
// types of dirpx.dev/unsafety/apis.
package adapter

import (
	"dirpx.dev/unsafety"
	"dirpx.dev/unsafety/apis"
	"dirpx.dev/unsafety/registry"
)

// ToDescriptor converts a justification into a portable Descriptor.
//
// The descriptor is intended for manifests, structured logging by audit
// tools, or proto propagation. All attribute slices are copied, so the
// descriptor stays valid regardless of what the caller does afterwards.
func ToDescriptor(j unsafety.Justification) apis.Descriptor {
	d := apis.Descriptor{
		Kind:     string(j.Kind),
		Owners:   copyStrings(j.Owners),
		Bugs:     copyStrings(j.Bugs),
		Links:    copyStrings(j.Links),
		Messages: copyStrings(j.Messages),
	}
	if len(j.Tags) > 0 {
		d.Tags = make([]apis.Tag, len(j.Tags))
		for i, t := range j.Tags {
			d.Tags[i] = apis.Tag{Key: t.Key, Value: t.Value}
		}
	}
	return d
}

// ToDescriptors converts a slice of justifications, preserving order.
// Returns nil for empty input.
func ToDescriptors(js []unsafety.Justification) []apis.Descriptor {
	if len(js) == 0 {
		return nil
	}
	out := make([]apis.Descriptor, len(js))
	for i, j := range js {
		out[i] = ToDescriptor(j)
	}
	return out
}

// ToRiskSite converts a registry entry plus its resolved subsystem label into
// a portable RiskSite. The file path is exposed exactly as given; callers
// that want repo-relative paths trim them before (or via manifest.WithRoot).
func ToRiskSite(e registry.Entry, subsystem string) apis.RiskSite {
	return apis.RiskSite{
		File:           e.File,
		Line:           e.Line,
		Subsystem:      subsystem,
		Justifications: ToDescriptors(e.Justifications),
	}
}

// copyStrings returns a fresh copy of src, or nil for empty input.
func copyStrings(src []string) []string {
	if len(src) == 0 {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}
