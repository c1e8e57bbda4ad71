package core

// Color is a foreground color for a screen cell. Frontends map it to ANSI
// codes or RGB values.
type Color uint8

// Colors used by the game screens.
const (
	ColorDefault      Color = iota
	ColorRed                // food, game over
	ColorGreen              // snake body
	ColorYellow             // leaderboard title
	ColorWhite              // text
	ColorGray               // walls, borders, hints
	ColorBrightGreen        // snake head, title
	ColorBrightYellow       // bonus fruit, current player
	ColorBrightCyan         // power fruit, slow mode
	ColorBrightWhite        // headings, HUD
)

var colorNames = [...]string{
	ColorDefault:      "default",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorYellow:       "yellow",
	ColorWhite:        "white",
	ColorGray:         "gray",
	ColorBrightGreen:  "bright-green",
	ColorBrightYellow: "bright-yellow",
	ColorBrightCyan:   "bright-cyan",
	ColorBrightWhite:  "bright-white",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
