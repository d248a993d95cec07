package tui

// Terminal colours for hexref's own chrome. The colour being inspected is
// always drawn with its own hex; these only style labels and frames.
const (
	ColorBorder        = "#3A3F55" // card frames
	ColorPrimaryText   = "#E6EAF2" // titles and typed input
	ColorSecondaryText = "#B1B8C7" // row labels and placeholder
	ColorHelpText      = "240"     // key hints under the editor
	ColorAccent        = "#7C3AED" // input cursor

	// WCAG badges and advisories
	ColorError   = "#EF4444" // failed level, unparsable input
	ColorSuccess = "#22C55E" // passed level
	ColorWarning = "#F59E0B" // vibration and cultural cautions
)
