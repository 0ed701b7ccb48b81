package vibe

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	UserMsg   int // User message accent
	ModelMsg  int // Assistant name and reply accent
	Error     int // Sentinel replies and startup errors
	Muted     int // Status bar, placeholders
	CodeBg    int // Code block background
	Accent    int // Headings, links
	Highlight int // Focused track card
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		UserMsg:   4,
		ModelMsg:  6,
		Error:     1,
		Muted:     8,
		CodeBg:    0,
		Accent:    5,
		Highlight: 14,
	}
}
