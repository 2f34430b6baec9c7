package types

import "errors"

// Configuration errors, surfaced by Settings.Validate at build start.
var (
	ErrUnknownPlacement = errors.New("unknown placement")
	ErrUnknownShowField = errors.New("unknown show field")
)

// ErrStrictLicense is returned by the diagnostics collector when
// license.strict_check escalates the first missing or invalid license to
// a fatal build error.
var ErrStrictLicense = errors.New("license check failed")
