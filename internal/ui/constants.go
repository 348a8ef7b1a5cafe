package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icon sizes in pixels (assets are resized to these before display)
const (
	WeatherIconSize   uint = 100
	NewspaperIconSize uint = 25
	HumidityIconSize  uint = 25
)

// Layout sizing
const (
	BlockPaddingX float32 = 100
	BlockPaddingY float32 = 60
	RowSpacing    float32 = 6 // between headline rows
)

// News
const (
	MaxHeadlines = 5
)

// Text fragments
const (
	MinMaxSeparator = "-"
	DashPlaceholder = "—"
)

// Clock layouts (strftime)
const (
	TimeLayout12h = "%I:%M %p"
	TimeLayout24h = "%H:%M"
	WeekdayLayout = "%A"
)

// Window
const (
	AppIconFile = "Sun.png"
)
