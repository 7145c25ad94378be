// Package internalcheck holds source-level policy tests for the gexiv2
// packages.
//
// It has no API. The tests load the module's packages with
// golang.org/x/tools/go/packages and fail on code that breaks the rules the
// binding relies on, such as native pointers escaping the backend package.
package internalcheck
