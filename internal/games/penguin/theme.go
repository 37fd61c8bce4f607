package penguin

import "github.com/vovakirdan/penguin-flap/internal/core"

// Theme is a cosmetic palette for the terminal renderer.
// The simulation never reads it.
type Theme struct {
	ID            string
	Title         string
	Backdrop      rune
	BackdropColor core.Color
	ObstacleColor core.Color
	CapColor      core.Color
	PlayerColor   core.Color
	GroundColor   core.Color
}

// DefaultThemeID is used when no theme is selected.
const DefaultThemeID = "ice"

var themes = []Theme{
	{
		ID:            "ice",
		Title:         "Ice Shelf",
		Backdrop:      '·',
		BackdropColor: core.ColorCyan,
		ObstacleColor: core.ColorBrightCyan,
		CapColor:      core.ColorBrightWhite,
		PlayerColor:   core.ColorBrightWhite,
		GroundColor:   core.ColorWhite,
	},
	{
		ID:            "dusk",
		Title:         "Polar Dusk",
		Backdrop:      '˙',
		BackdropColor: core.ColorOrange,
		ObstacleColor: core.ColorMagenta,
		CapColor:      core.ColorBrightYellow,
		PlayerColor:   core.ColorBrightYellow,
		GroundColor:   core.ColorOrange,
	},
	{
		ID:            "night",
		Title:         "Polar Night",
		Backdrop:      '✦',
		BackdropColor: core.ColorGray,
		ObstacleColor: core.ColorBlue,
		CapColor:      core.ColorCyan,
		PlayerColor:   core.ColorBrightGreen,
		GroundColor:   core.ColorGray,
	},
}

// Themes returns all themes in display order.
func Themes() []Theme {
	return append([]Theme(nil), themes...)
}

// ThemeByID looks up a theme.
func ThemeByID(id string) (Theme, bool) {
	for _, t := range themes {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}
