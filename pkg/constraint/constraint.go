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

package constraint

import (
	"fmt"
	"strings"

	"github.com/disttest/vergate/pkg/errors"
	"github.com/disttest/vergate/pkg/version"
)

// Operator represents a comparison operator in constraint expressions.
type Operator string

const (
	// OperatorGTE represents ">=" (greater than or equal).
	OperatorGTE Operator = ">="

	// OperatorLTE represents "<=" (less than or equal).
	OperatorLTE Operator = "<="

	// OperatorGT represents ">" (greater than).
	OperatorGT Operator = ">"

	// OperatorLT represents "<" (less than).
	OperatorLT Operator = "<"

	// OperatorEQ represents "==" (equal under loose ordering).
	OperatorEQ Operator = "=="

	// OperatorNE represents "!=" (not equal).
	OperatorNE Operator = "!="

	// OperatorExact represents no operator (bare value, exact version).
	OperatorExact Operator = ""
)

// Constraint is a single parsed gate over versions, such as ">= 2.8" or
// "< dev". The bound is resolved at parse time, so a dev bound pins to
// the current build version like any other dev instance.
type Constraint struct {
	// Operator is the comparison operator (or empty for a bare value).
	Operator Operator

	// Bound is the version the operator compares against.
	Bound version.Version
}

// Parse parses a constraint expression into a Constraint.
// Examples:
//   - ">= 2.8"  -> applies to 2.8.0 and newer
//   - "< 2.10"  -> applies to anything before 2.10
//   - "2.8.1"   -> applies to 2.8.1 only
func Parse(expr string) (*Constraint, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New(errors.ErrCodeInvalidExpression, "constraint expression cannot be empty")
	}

	c := &Constraint{Operator: OperatorExact}

	// Check for operators (longest first to avoid matching ">" when ">=" is intended)
	operators := []Operator{OperatorGTE, OperatorLTE, OperatorNE, OperatorEQ, OperatorGT, OperatorLT}
	for _, op := range operators {
		if strings.HasPrefix(expr, string(op)) {
			c.Operator = op
			expr = strings.TrimSpace(strings.TrimPrefix(expr, string(op)))
			break
		}
	}

	if expr == "" {
		return nil, errors.New(errors.ErrCodeInvalidExpression, "constraint value cannot be empty after operator")
	}

	bound, err := version.Parse(expr)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidVersion,
			"cannot parse constraint bound", err, map[string]any{"value": expr})
	}
	c.Bound = bound

	return c, nil
}

// Matches reports whether the given version satisfies the constraint.
func (c *Constraint) Matches(v version.Version) bool {
	cmp := v.Compare(c.Bound)

	switch c.Operator {
	case OperatorGTE:
		return cmp >= 0
	case OperatorGT:
		return cmp > 0
	case OperatorLTE:
		return cmp <= 0
	case OperatorLT:
		return cmp < 0
	case OperatorNE:
		return cmp != 0
	case OperatorEQ, OperatorExact:
		return cmp == 0
	default:
		return false
	}
}

// String returns a string representation of the constraint.
func (c *Constraint) String() string {
	if c.Operator == OperatorExact {
		return c.Bound.String()
	}
	return fmt.Sprintf("%s %s", c.Operator, c.Bound)
}

// Set is a conjunction of constraints, modelling a version range such
// as ">= 2.8, < 2.10".
type Set []*Constraint

// ParseSet parses a comma-separated list of constraint expressions.
func ParseSet(expr string) (Set, error) {
	parts := strings.Split(expr, ",")

	set := make(Set, 0, len(parts))
	for _, part := range parts {
		c, err := Parse(part)
		if err != nil {
			return nil, err
		}
		set = append(set, c)
	}
	return set, nil
}

// Matches reports whether the given version satisfies every constraint
// in the set. An empty set matches everything.
func (s Set) Matches(v version.Version) bool {
	for _, c := range s {
		if !c.Matches(v) {
			return false
		}
	}
	return true
}

// String returns the comma-separated form of the set.
func (s Set) String() string {
	parts := make([]string, 0, len(s))
	for _, c := range s {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ", ")
}
