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

// Package pathtrie implements a segment-aware prefix index for
// slash-separated source paths.
package pathtrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for slash-separated paths.
// Each node represents one path segment; the wildcard "*" matches exactly one
// segment. The trie supports longest-prefix-match (LPM) with segment
// boundaries, so a more specific rule wins over a shorter one.
type Trie[T any] struct {
	// children contains next segments, including "*" for a single-segment wildcard.
	children map[string]*Trie[T]
	// hasVal marks that this node carries a value for the prefix ending here.
	hasVal bool
	val    T
	// pattern is the canonical slash-joined prefix (with '*' if a wildcard
	// was used) for this node, set only when hasVal=true. It is used by
	// MatchWithPattern for Explain(), so we don't build strings during lookup.
	pattern string
}

var (
	// ErrInvalidPrefix is returned when inserting a prefix that is empty,
	// has empty segments, or consists only of wildcards.
	ErrInvalidPrefix = errors.New("pathtrie: invalid prefix")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds a slash-separated prefix to the trie and associates it with val.
//
// Examples:
//
//	"internal/storage"
//	"internal/net/driver"
//	"internal/*/simd"
//
// The wildcard "*" matches exactly one segment.
// A prefix made only of "*" segments is rejected, because it is too generic.
// Returns ErrInvalidPrefix on malformed input.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := splitAndValidate(prefix)
	if !ok || len(segs) == 0 {
		return ErrInvalidPrefix
	}

	// Require at least one non-wildcard segment to avoid catching everything.
	allWild := true
	for _, s := range segs {
		if s != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	if cur.pattern == "" {
		// build pattern once; cost is at build time, not on lookups
		cur.pattern = strings.Join(segs, "/")
	}
	return nil
}

// Match finds the best (deepest) prefix match for a full path.
// The path is treated as a slash-separated sequence of segments; a leading
// slash is ignored. Both exact segment matches and "*" wildcard branches are
// explored. It returns (value, true) on success.
// If nothing matches, it returns the zero value and false.
func (t *Trie[T]) Match(path string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(path)
	return v, ok
}

// MatchWithPattern is Match plus the stored rule pattern for Explain().
// It keeps the deepest node that had a value; the pattern string was built at
// insert time, so lookups allocate nothing.
func (t *Trie[T]) MatchWithPattern(path string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	path = strings.TrimPrefix(path, "/")

	bestDepth := -1
	var bestVal T
	var bestPat string

	// dfs scans the next segment starting at byte offset 'off', with 'depth'
	// segments already consumed.
	var dfs func(n *Trie[T], off, depth int)
	dfs = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if off >= len(path) {
			return
		}

		// parse next segment [off:next); empty segments ("//") stop the path
		i := off
		for i < len(path) && path[i] != '/' {
			i++
		}
		if i == off {
			return
		}
		seg := path[off:i] // substring; no heap alloc

		nextOff := i
		if nextOff < len(path) && path[nextOff] == '/' {
			nextOff++
		}

		// exact branch
		if next, ok := n.children[seg]; ok {
			dfs(next, nextOff, depth+1)
		}
		// wildcard branch
		if next, ok := n.children["*"]; ok {
			dfs(next, nextOff, depth+1)
		}
	}

	dfs(t, 0, 0)
	if bestDepth < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// splitAndValidate splits a slash-separated string into segments and
// validates each one. A leading slash is tolerated; empty segments are not.
// Returns (segments, true) on success, or (nil, false) on invalid input.
func splitAndValidate(s string) ([]string, bool) {
	s = strings.TrimPrefix(s, "/")
	if s == "" {
		return nil, false
	}
	segs := strings.Split(s, "/")
	for _, seg := range segs {
		if !validSegment(seg) {
			return nil, false
		}
	}
	return segs, true
}

// validSegment reports whether seg is a valid trie segment.
// Rules:
//   - empty segments are invalid;
//   - the segment "*" is allowed (single-segment wildcard);
//   - otherwise any segment without '/', '*', or whitespace is accepted,
//     since file and directory names are not constrained to an identifier
//     charset.
func validSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
		return true
	}
	for i := 0; i < len(seg); i++ {
		switch seg[i] {
		case '/', '*', ' ', '\t', '\n', '\r':
			return false
		}
	}
	return true
}
