// Package constraint evaluates operator expressions over loose version
// values, providing the range primitive test suites use to gate
// scenarios by version.
//
// A constraint is an optional operator followed by a version:
//
//	c, _ := constraint.Parse(">= 2.8")
//	c.Matches(version.MustParse("2.8.1")) // true
//	c.Matches(version.MustParse("2.7.6")) // false
//
// A set of comma-separated constraints models a range; every member
// must match:
//
//	s, _ := constraint.ParseSet(">= 2.8, < 2.10")
//	s.Matches(version.MustParse("2.9.1")) // true
//	s.Matches(version.MustParse("dev"))   // false while dev is 2.11.x
//
// Bounds are ordinary version values, so "dev" is a valid bound and
// resolves against the current build version at parse time.
package constraint
