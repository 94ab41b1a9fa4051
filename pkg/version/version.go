// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion   = errors.New("version string is empty")
	ErrNoComponents   = errors.New("version string has no parseable components")
	ErrComponentRange = errors.New("numeric version component out of range")
)

// Dev is the sentinel token for "the version currently being developed".
// Matching is case-insensitive.
const Dev = "dev"

// Component is a single parsed element of a version string. Numeric
// components compare numerically, text components lexicographically,
// and a numeric component sorts before a text component at the same
// position.
type Component struct {
	Number  int
	Text    string
	Numeric bool
}

// String returns the component as it appears in a version string.
func (c Component) String() string {
	if c.Numeric {
		return strconv.Itoa(c.Number)
	}
	return c.Text
}

// Version is an immutable, comparable representation of a loosely
// structured version string such as "2.8.1" or "2.11.0-SNAPSHOT".
// The special token "dev" resolves to the current build version with
// any ".dev" suffix truncated, while still displaying as "dev".
type Version struct {
	// Raw is the canonical display string: the literal "dev" for dev
	// instances, otherwise the parsed input.
	Raw string

	// IsDev reports whether the instance was constructed from the dev
	// sentinel token.
	IsDev bool

	// Components is the parsed representation used for ordering.
	Components []Component
}

// Parse parses a version string into a Version. The token "dev"
// (case-insensitive) resolves against the process-wide current build
// version; see Current and SetCurrent. All other inputs are parsed
// loosely: digit runs become numeric components, '.' is consumed as a
// separator, and any other run of characters becomes a text component.
//
// Returns an error if the input contains no parseable component.
func Parse(s string) (Version, error) {
	return ParseWithCurrent(s, Current())
}

// ParseWithCurrent parses a version string like Parse, but resolves the
// dev sentinel against the supplied current build version instead of the
// process-wide one. Use this when the current version is injected
// explicitly, for example from packaging metadata in tests.
func ParseWithCurrent(s, current string) (Version, error) {
	s = strings.TrimSpace(s)

	if strings.EqualFold(s, Dev) {
		resolved := current
		if i := strings.Index(resolved, ".dev"); i >= 0 {
			resolved = resolved[:i]
		}
		comps, err := tokenize(resolved)
		if err != nil {
			return Version{}, fmt.Errorf("resolving dev against current version %q: %w", current, err)
		}
		return Version{Raw: Dev, IsDev: true, Components: comps}, nil
	}

	comps, err := tokenize(s)
	if err != nil {
		return Version{}, err
	}
	return Version{Raw: s, Components: comps}, nil
}

// MustParse parses a version string and panics if parsing fails.
// Only use this for hardcoded strings, such as the package-level release
// catalog, or in tests. For runtime data use Parse and handle the error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// tokenize splits a version string into alternating numeric and text
// components. '.' is a pure separator and never produces a component.
func tokenize(s string) ([]Component, error) {
	if s == "" {
		return nil, ErrEmptyVersion
	}

	var comps []Component
	for i := 0; i < len(s); {
		switch c := s[i]; {
		case c == '.':
			i++

		case c >= '0' && c <= '9':
			j := i + 1
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(s[i:j])
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrComponentRange, s[i:j])
			}
			comps = append(comps, Component{Number: n, Numeric: true})
			i = j

		default:
			j := i + 1
			for j < len(s) && s[j] != '.' && (s[j] < '0' || s[j] > '9') {
				j++
			}
			comps = append(comps, Component{Text: s[i:j]})
			i = j
		}
	}

	if len(comps) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoComponents, s)
	}
	return comps, nil
}

// String returns the display form of the version: the literal "dev" for
// dev instances regardless of the resolved value, otherwise the parsed
// input string.
func (v Version) String() string {
	if v.IsDev {
		return Dev
	}
	return v.Raw
}
