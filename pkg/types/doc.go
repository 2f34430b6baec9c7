// Package types defines the figure metadata record, style and policy
// configuration, page-level defaults, diagnostics, and standard errors for
// the figmeta resolution engine.
package types
