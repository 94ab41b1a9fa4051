// Package version provides loose version parsing and comparison with a
// dev sentinel for builds under development.
//
// # Overview
//
// This package models versions of the system under test as comparable
// values. Parsing is deliberately loose rather than strict semver: the
// input is split into alternating runs of digits and other characters,
// with '.' consumed as a pure separator. Each digit run becomes a
// numeric component and every other run a text component, so inputs
// like "2.8.1", "2.11.0-SNAPSHOT", and "2.8.rc1" all parse.
//
// # Ordering
//
// Versions are ordered by their component sequences:
//
//   - numeric components compare numerically, text components
//     lexicographically
//   - when types differ at a position, the numeric component sorts first
//   - a strict prefix sorts first, unless the longer side's trailing
//     components are all numeric zeros ("2.8" equals "2.8.0")
//
// The result is a total order exposed through Compare, Equal, Less,
// LessOrEqual, Greater, and GreaterOrEqual.
//
// # Dev Sentinel
//
// The token "dev" (case-insensitive) stands for the version currently
// being developed. It resolves at construction time against the current
// build version, with any ".dev" suffix truncated:
//
//	version.SetCurrent("2.11.0.dev3")
//	v, _ := version.Parse("dev") // orders as 2.11.0
//	fmt.Println(v)               // prints "dev"
//
// Display of a dev instance is always the literal "dev"; only ordering
// uses the resolved value.
//
// # Usage
//
// Parse a version string:
//
//	v, err := version.Parse("2.8.1")
//	if err != nil {
//	    // Handle error
//	}
//
// Gate a scenario on a minimum version:
//
//	if v.GreaterOrEqual(version.V2_8_0) {
//	    // applicable from 2.8.0 onward
//	}
//
// Reference releases by name:
//
//	version.Latest2_8 // newest 2.8.x point release
//	version.Latest    // newest released version
//	version.DevBranch // the development build
//
// # Error Handling
//
// Parse returns sentinel errors for invalid input:
//
//   - ErrEmptyVersion: input is empty after trimming
//   - ErrNoComponents: input contains only separators (e.g. ".")
//   - ErrComponentRange: a digit run does not fit in an int
//
// For constants and tests, MustParse panics on error.
package version
