package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconWeb      = "🌐"
)

// Layout sizing
const (
	ChannelColumnWidth float32 = 220
	ProgramColumnWidth float32 = 260
	TimeColumnWidth    float32 = 150

	PictureSize float32 = 128

	// Offset of the split between channel and program panes
	ChannelSplitOffset = 0.3
	DetailSplitOffset  = 0.65
)

// Notification behavior
const (
	StatusAutoHide = 4 * time.Second
)
