package lottery

import (
	"fmt"
	"strings"

	"unionlotto/bot/common"
	"unionlotto/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// CreateBatchEmbed creates the embed for a freshly generated batch
func CreateBatchEmbed(batch []*entities.LotterySet, historySize int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🎲 Your Lucky Numbers",
		Color: common.ColorRedBall,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d %s in history", historySize, common.Pluralize(historySize, "set", "sets")),
		},
	}

	if len(batch) == 1 {
		set := batch[0]
		if set.IsAI() {
			embed.Title = "✨ AI Lucky Numbers"
			embed.Color = common.ColorAI
		}
		embed.Description = singleSetDescription(set)
		return embed
	}

	embed.Fields = make([]*discordgo.MessageEmbedField, 0, len(batch))
	for idx, set := range batch {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("#%d", idx+1),
			Value:  common.FormatBalls(set),
			Inline: false,
		})
	}
	return embed
}

func singleSetDescription(set *entities.LotterySet) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(common.FormatBalls(set))
	if set.AIReasoning != "" {
		b.WriteString("\n\n*")
		b.WriteString(common.Truncate(set.AIReasoning, common.MaxEmbedDescription/2))
		b.WriteString("*")
	}
	return b.String()
}

// CreateHistoryEmbed lists the newest sets, numbered so the oldest is #1
func CreateHistoryEmbed(sets []*entities.LotterySet) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📜 Session History",
		Color: common.ColorInfo,
	}

	if len(sets) == 0 {
		embed.Description = "No numbers yet. Use `/lotto pick` to get started."
		return embed
	}

	shown := len(sets)
	if shown > common.MaxHistoryLinesShown {
		shown = common.MaxHistoryLinesShown
	}

	lines := make([]string, 0, shown+1)
	for idx := 0; idx < shown; idx++ {
		set := sets[idx]
		lines = append(lines, fmt.Sprintf("**#%d** %s %s\n%s\n`%s`",
			len(sets)-idx,
			common.SourceIcon(set.Source),
			common.FormatDiscordTimestamp(set.Timestamp, "T"),
			common.FormatBalls(set),
			set.CopyText(),
		))
	}
	if len(sets) > shown {
		lines = append(lines, fmt.Sprintf("...and %d more", len(sets)-shown))
	}

	embed.Description = common.Truncate(strings.Join(lines, "\n"), common.MaxEmbedDescription)
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("%d %s total", len(sets), common.Pluralize(len(sets), "set", "sets")),
	}
	return embed
}

// CreateClearPromptEmbed asks the user to confirm clearing the history
func CreateClearPromptEmbed(count int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Clear History",
		Color:       common.ColorWarning,
		Description: fmt.Sprintf("This removes all %d %s. Press the button to confirm.", count, common.Pluralize(count, "set", "sets")),
	}
}

// CreateClearedEmbed reports a completed clear
func CreateClearedEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "History cleared!",
		Color:       common.ColorSuccess,
		Description: "Statistics have been reset for this session.",
	}
}

// CreateCopyMessage formats a set so Discord users can copy it from a code block
func CreateCopyMessage(set *entities.LotterySet) string {
	return fmt.Sprintf("```\n%s\n```", set.CopyText())
}
