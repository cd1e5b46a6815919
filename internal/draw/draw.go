// Package draw renders to ANSI terminals: a scaled half-block canvas,
// cursor helpers and a chunked writer for SSH-friendly output.
package draw

import (
	"fmt"
	"io"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Color is a canvas pixel color. The zero value is an empty pixel.
type Color uint8

const (
	ColorNone Color = iota
	ColorWhite
	ColorGray
	ColorOrange
	ColorYellow
	ColorPaleYellow
	ColorCyan
)

// ANSI escape sequences for terminal colors.
const (
	ColorReset = "\033[0m"

	colorWhite      = "\033[97m"
	colorGray       = "\033[90m"
	colorOrange     = "\033[38;5;208m"
	colorYellow     = "\033[38;5;220m"
	colorPaleYellow = "\033[38;5;230m"
	colorCyan       = "\033[96m"
)

// ANSI returns the foreground escape sequence for c.
func (c Color) ANSI() string {
	switch c {
	case ColorWhite:
		return colorWhite
	case ColorGray:
		return colorGray
	case ColorOrange:
		return colorOrange
	case ColorYellow:
		return colorYellow
	case ColorPaleYellow:
		return colorPaleYellow
	case ColorCyan:
		return colorCyan
	default:
		return ColorReset
	}
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// MoveCursor moves cursor to a specific position (1-based).
func MoveCursor(w io.Writer, x, y int) {
	fmt.Fprintf(w, "\033[%d;%dH", y, x)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
