package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/SoroushXYZ/Bit-by-Bit/pkg/grid"
	"github.com/SoroushXYZ/Bit-by-Bit/pkg/placer"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorPurple = lipgloss.Color("135") // Purple - branding
	colorOrange = lipgloss.Color("208") // Orange - stocks
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleFresh    = lipgloss.NewStyle().Foreground(colorGreen)
	styleDegraded = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Component Type Styles
// =============================================================================

// typeGlyphs maps component types to the single character drawn per cell in
// the grid preview.
var typeGlyphs = map[grid.Type]string{
	grid.TypeBranding:   "B",
	grid.TypeHeadline:   "H",
	grid.TypeGithubRepo: "G",
	grid.TypeQuickLink:  "L",
	grid.TypeStock:      "S",
	grid.TypeDayNumber:  "D",
	grid.TypeBit:        "·",
	grid.TypeUnknown:    "?",
}

var typeStyles = map[grid.Type]lipgloss.Style{
	grid.TypeBranding:   lipgloss.NewStyle().Foreground(colorPurple),
	grid.TypeHeadline:   lipgloss.NewStyle().Foreground(colorCyan),
	grid.TypeGithubRepo: lipgloss.NewStyle().Foreground(colorBlue),
	grid.TypeQuickLink:  lipgloss.NewStyle().Foreground(colorGreen),
	grid.TypeStock:      lipgloss.NewStyle().Foreground(colorOrange),
	grid.TypeDayNumber:  lipgloss.NewStyle().Foreground(colorYellow),
	grid.TypeBit:        lipgloss.NewStyle().Foreground(colorDim),
	grid.TypeUnknown:    lipgloss.NewStyle().Foreground(colorGray),
}

// typeGlyph returns the styled preview character for a component type.
func typeGlyph(t grid.Type) string {
	glyph, ok := typeGlyphs[t]
	if !ok {
		glyph, t = "?", grid.TypeUnknown
	}
	return typeStyles[t].Render(glyph)
}

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// =============================================================================
// File Output
// =============================================================================

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints run statistics on a single line.
func printStats(components int, efficiency float64, source placer.Source) {
	parts := []string{
		fmt.Sprintf("%d components", components),
		fmt.Sprintf("%.1f%% filled", efficiency),
	}

	if source != "" {
		sourceStyle := styleFresh
		if source != placer.SourceFresh {
			sourceStyle = styleDegraded
		}
		parts = append(parts, sourceStyle.Render(string(source)))
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line)
}

// =============================================================================
// Utilities
// =============================================================================

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
