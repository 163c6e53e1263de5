package core

// Color is a logical foreground color for a screen cell.
type Color uint8

// Palette used by game renderers.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorPink

	// NumColors is the size of the palette.
	NumColors int = iota
)

// xterm 256-color codes, indexed by Color.
var ansi256 = [NumColors]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
	ColorBrown:         "130",
	ColorPink:          "211",
}

// ANSI returns the xterm 256-color code for c.
// ColorDefault and out-of-range values return "" (terminal default).
func (c Color) ANSI() string {
	if int(c) >= NumColors {
		return ""
	}
	return ansi256[c]
}
