// Package errors provides structured error types for better observability
// and programmatic error handling across the library.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidVersion,
//	    "cannot parse gate bound",
//	    parseErr,
//	    map[string]interface{}{
//	        "expression": expr,
//	        "value": val,
//	    },
//	)
package errors
