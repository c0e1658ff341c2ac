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

// FallbackSubsystem is the label applied to sites no rule matches. Keeping a
// visible non-empty default means every site in a manifest carries *some*
// subsystem, which makes "unlabelled risky code" trivially greppable.
const FallbackSubsystem = "unassigned"

type rule struct {
	// prefix is the raw, slash-separated path prefix (may contain "*").
	// It is validated/normalized when the trie is built in New.
	prefix string
	// label is the subsystem name to apply when this prefix matches.
	label string
}

type builder struct {
	// rules holds subsystem-labeling rules in the order they were added.
	rules []rule

	// root is the path prefix trimmed from entry files before matching.
	root string

	// fallback is used when no rule matches a path.
	fallback string
}

// newBuilder creates an empty builder with library defaults.
func newBuilder() *builder {
	return &builder{
		fallback: FallbackSubsystem,
	}
}
