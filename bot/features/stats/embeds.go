package stats

import (
	"fmt"
	"strings"

	"unionlotto/bot/common"
	"unionlotto/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// ChartFilename is the attachment name referenced by the stats embed
const ChartFilename = "lotto_stats.png"

// EmptyStatsMessage is shown instead of a chart when there is no history
const EmptyStatsMessage = "Generate some numbers to see statistics"

// BuildStatsEmbed creates the statistics embed. The chart attachment is referenced only when stats exist.
func BuildStatsEmbed(stats []entities.NumberStat, historySize int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📊 " + ChartTitle,
		Color: common.ColorInfo,
	}

	if len(stats) == 0 {
		embed.Description = EmptyStatsMessage
		return embed
	}

	embed.Image = &discordgo.MessageEmbedImage{
		URL: "attachment://" + ChartFilename,
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{
			Name:   "🔴 Hot Reds",
			Value:  summarize(stats, entities.CategoryRed),
			Inline: true,
		},
		{
			Name:   "🔵 Hot Blues",
			Value:  summarize(stats, entities.CategoryBlue),
			Inline: true,
		},
	}
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Based on %d %s", historySize, common.Pluralize(historySize, "set", "sets")),
	}
	return embed
}

// summarize lists up to five ranked numbers of one category as "NN ×count"
func summarize(stats []entities.NumberStat, category entities.Category) string {
	parts := make([]string, 0, 5)
	for _, stat := range stats {
		if stat.Category != category {
			continue
		}
		parts = append(parts, fmt.Sprintf("`%s` ×%d", stat.Label(), stat.Count))
		if len(parts) == 5 {
			break
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "\n")
}
