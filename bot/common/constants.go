package common

// Discord color constants
const (
	ColorPrimary = 0x5865F2 // Discord blurple
	ColorSuccess = 0x57F287 // Green
	ColorDanger  = 0xED4245 // Red
	ColorError   = 0xED4245 // Red (alias for ColorDanger)
	ColorWarning = 0xFEE75C // Yellow
	ColorInfo    = 0x3498DB // Blue
)

// Ball colors, shared with the stats chart
const (
	ColorRedBall  = 0xEF4444
	ColorBlueBall = 0x3B82F6
	ColorAI       = 0x8B5CF6 // Violet for AI suggestions
)

// Discord limits
const (
	MaxButtonsPerRow     = 5
	MaxActionRows        = 5
	MaxEmbedDescription  = 4096
	MaxEmbedFieldValue   = 1024
	MaxTextInputLength   = 1000
	MaxHistoryLinesShown = 10
)
