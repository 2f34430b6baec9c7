package types

import "time"

// DateLayout is the required date format for figure metadata.
const DateLayout = "2006-01-02"

// DateToday is the sentinel date value resolved to the build date before
// validation.
const DateToday = "today"

// IsValidDate reports whether s is a calendar-valid date in YYYY-MM-DD
// form. The sentinel "today" is not accepted here; callers resolve it
// first.
func IsValidDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
