package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorAccent      = lipgloss.Color("#00F19F") // highlights, logo
	ColorSport       = lipgloss.Color("#0093E7") // workouts and sport calories
	ColorRate        = lipgloss.Color("#67AEE6") // weekly weight change
	ColorChart       = lipgloss.Color("#7BA1BB") // weight series
	ColorGoalHigh    = lipgloss.Color("#16EC06") // goal progress 100-67%
	ColorGoalMedium  = lipgloss.Color("#FFDE00") // goal progress 66-34%
	ColorGoalLow     = lipgloss.Color("#FF0026") // goal progress 33-0%
	ColorDeficit     = lipgloss.Color("#16EC06")
	ColorSurplus     = lipgloss.Color("#FF8A00")
	ColorNeutralGoal = lipgloss.Color("#67AEE6") // goal without data
)

var (
	ColorBgDark  = lipgloss.Color("#101518") // Darker end of gradient
	ColorBgLight = lipgloss.Color("#283339") // Lighter end of gradient
)
