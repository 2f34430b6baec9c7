// Package figmeta exposes module-level build metadata.
package figmeta

// Version is the current figmeta release.
const Version = "0.1.0"
