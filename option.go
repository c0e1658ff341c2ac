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

// Option is a functional option for constructing a Justification.
// It always takes a Justification and returns a (possibly new) Justification.
type Option func(Justification) Justification

// WithOwner appends one accountable owner on construction.
// Intended to be used with New(...).
func WithOwner(owner string) Option {
	return func(j Justification) Justification {
		return j.Owner(owner)
	}
}

// WithBug appends one bug reference on construction.
// Intended to be used with New(...).
func WithBug(bugID string) Option {
	return func(j Justification) Justification {
		return j.Bug(bugID)
	}
}

// WithLink appends one document link on construction.
// Intended to be used with New(...).
func WithLink(url string) Option {
	return func(j Justification) Justification {
		return j.Link(url)
	}
}

// WithTag appends one key/value annotation on construction.
// Intended to be used with New(...).
func WithTag(key, value string) Option {
	return func(j Justification) Justification {
		return j.Tag(key, value)
	}
}

// WithMessage appends one free-text note on construction.
// Intended to be used with New(...).
func WithMessage(message string) Option {
	return func(j Justification) Justification {
		return j.Message(message)
	}
}
