package core

import "strconv"

// Color represents a foreground color for a screen cell.
// Values are ANSI 256-color codes so the platform can pass them straight
// to the terminal, except 0, which means the terminal default and is never
// painted. Use ColorBlack for an explicit black.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault     Color = 0
	ColorBlack       Color = 16
	ColorRed         Color = 1
	ColorYellow      Color = 3
	ColorCyan        Color = 6
	ColorWhite       Color = 7
	ColorBrightWhite Color = 15
	ColorOrange      Color = 208
	ColorGray        Color = 245
)

// Code returns the ANSI code in the string form lipgloss expects.
// ColorDefault maps to the empty string (terminal default).
func (c Color) Code() string {
	if c == ColorDefault {
		return ""
	}
	return strconv.Itoa(int(c))
}
