package common

import (
	"fmt"
	"strings"
	"time"

	"unionlotto/domain/entities"
)

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays in user's local timezone
// Format types: "t" = short time, "T" = long time, "d" = short date, "D" = long date,
// "f" = short date/time, "F" = long date/time, "R" = relative time
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}

// FormatBalls renders a set as colored, zero-padded balls, e.g. "🔴 `01` `05` ... 🔵 `07`"
func FormatBalls(set *entities.LotterySet) string {
	var b strings.Builder
	b.WriteString("🔴")
	for _, red := range set.Reds {
		b.WriteString(" `")
		b.WriteString(entities.FormatNumber(red))
		b.WriteString("`")
	}
	b.WriteString("  🔵 `")
	b.WriteString(entities.FormatNumber(set.Blue))
	b.WriteString("`")
	return b.String()
}

// SourceIcon returns the emoji used for a set's source
func SourceIcon(source entities.SetSource) string {
	if source == entities.SetSourceAI {
		return "✨"
	}
	return "🎲"
}

// SourceLabel returns the human readable name of a set's source
func SourceLabel(source entities.SetSource) string {
	if source == entities.SetSourceAI {
		return "AI Pick"
	}
	return "Random"
}

// Truncate shortens s to at most max runes, marking the cut with an ellipsis
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

// Pluralize returns singular when n is 1 and plural otherwise
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
