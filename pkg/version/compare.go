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

import "strings"

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
//
// Components are compared element-wise in order. Numeric components
// compare numerically and text components lexicographically; when the
// types differ at a position, the numeric component sorts first. When
// one component sequence is a strict prefix of the other, the shorter
// version sorts first unless the longer version's trailing components
// are all numeric zeros, in which case the two are equal
// ("2.8" == "2.8.0").
//
// The result is a total order. Dev instances compare by their resolved
// components, not by the "dev" label.
func (v Version) Compare(other Version) int {
	n := len(v.Components)
	if len(other.Components) < n {
		n = len(other.Components)
	}

	for i := 0; i < n; i++ {
		if c := compareComponent(v.Components[i], other.Components[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(v.Components) > n:
		if allZero(v.Components[n:]) {
			return 0
		}
		return 1
	case len(other.Components) > n:
		if allZero(other.Components[n:]) {
			return 0
		}
		return -1
	default:
		return 0
	}
}

// Equal returns true if v and other represent the same version under
// loose ordering, including trailing-zero equivalence.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Less returns true if v sorts before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// LessOrEqual returns true if v sorts before other or equals it.
func (v Version) LessOrEqual(other Version) bool {
	return v.Compare(other) <= 0
}

// Greater returns true if v sorts after other.
func (v Version) Greater(other Version) bool {
	return v.Compare(other) > 0
}

// GreaterOrEqual returns true if v sorts after other or equals it.
func (v Version) GreaterOrEqual(other Version) bool {
	return v.Compare(other) >= 0
}

// compareComponent compares two components at the same position.
// Numeric sorts before text when the types differ.
func compareComponent(a, b Component) int {
	switch {
	case a.Numeric && b.Numeric:
		switch {
		case a.Number < b.Number:
			return -1
		case a.Number > b.Number:
			return 1
		default:
			return 0
		}
	case !a.Numeric && !b.Numeric:
		return strings.Compare(a.Text, b.Text)
	case a.Numeric:
		return -1
	default:
		return 1
	}
}

// allZero reports whether every component in the slice is the numeric
// zero component.
func allZero(comps []Component) bool {
	for _, c := range comps {
		if !c.Numeric || c.Number != 0 {
			return false
		}
	}
	return true
}
