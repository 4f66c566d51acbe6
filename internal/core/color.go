package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray

	// Terrain shades, darkest first within each family.
	ColorGrassDark
	ColorGrass
	ColorGrassLight
	ColorDirtDark
	ColorDirt
	ColorStoneDark
	ColorStone
	ColorStoneLight
	ColorSoil
	ColorCrop
)
