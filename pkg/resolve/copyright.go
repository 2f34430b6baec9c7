package resolve

// CopyrightMode selects how a missing copyright is composed.
type CopyrightMode int

const (
	// ModeAuthorYear composes "{year} {author}" from the resolved author
	// and date.
	ModeAuthorYear CopyrightMode = iota
	// ModeConfig uses the host-level copyright string.
	ModeConfig
	// ModeAuthorYearConfig composes author/year and falls back to the
	// host-level string when both author and date are absent.
	ModeAuthorYearConfig
	// ModeConfigAuthorYear uses the host-level string and falls back to
	// the author/year composition when it is absent.
	ModeConfigAuthorYear
	// ModeLiteral returns the configured string verbatim.
	ModeLiteral
)

// ParseCopyrightMode maps a default_copyright setting to a mode. Any
// string that is not a known mode name is the literal itself.
func ParseCopyrightMode(s string) (CopyrightMode, string) {
	switch s {
	case "authoryear":
		return ModeAuthorYear, ""
	case "config":
		return ModeConfig, ""
	case "authoryear-config":
		return ModeAuthorYearConfig, ""
	case "config-authoryear":
		return ModeConfigAuthorYear, ""
	}
	return ModeLiteral, s
}

// ComposeCopyright derives a copyright string for a figure whose copyright
// was not supplied by any resolver source. The year is the first four
// characters of the date. An empty result means the composition is absent.
func ComposeCopyright(mode CopyrightMode, literal, author, date, configCopyright string) string {
	switch mode {
	case ModeAuthorYear:
		return authorYear(author, date)
	case ModeConfig:
		return configCopyright
	case ModeAuthorYearConfig:
		if s := authorYear(author, date); s != "" {
			return s
		}
		return configCopyright
	case ModeConfigAuthorYear:
		if configCopyright != "" {
			return configCopyright
		}
		return authorYear(author, date)
	}
	return literal
}

// authorYear builds "{year} {author}", degrading to whichever part is
// present.
func authorYear(author, date string) string {
	year := ""
	if len(date) >= 4 {
		year = date[:4]
	}
	switch {
	case year != "" && author != "":
		return year + " " + author
	case year != "":
		return year
	case author != "":
		return author
	}
	return ""
}
