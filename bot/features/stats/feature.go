package stats

import (
	"bytes"
	"context"

	"unionlotto/bot/common"
	"unionlotto/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature represents the frequency statistics feature
type Feature struct {
	lotto     interfaces.LotterySession
	generator *FrequencyChartGenerator
}

// NewFeature creates a new stats feature instance
func NewFeature(lotto interfaces.LotterySession, generator *FrequencyChartGenerator) *Feature {
	if generator == nil {
		generator = NewFrequencyChartGenerator()
	}
	return &Feature{
		lotto:     lotto,
		generator: generator,
	}
}

// HandleCommand handles the /lotto stats subcommand
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleStats(s, i)
}

// HandleInteraction handles the stats button
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	f.handleStats(s, i)
}

func (f *Feature) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	// Chart rendering can exceed Discord's response window on slow hosts
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer response: %v", err)
		return
	}

	embed, file, err := f.BuildStatsMessage(ctx)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "Failed to build statistics"), true)
		return
	}

	if err := common.UpdateMessageWithFile(s, i, embed, file); err != nil {
		log.Errorf("Error sending statistics: %v", err)
	}
}

// BuildStatsMessage renders the stats embed and, when there is history, its chart attachment
func (f *Feature) BuildStatsMessage(ctx context.Context) (*discordgo.MessageEmbed, *discordgo.File, error) {
	stats, err := f.lotto.Stats(ctx)
	if err != nil {
		return nil, nil, err
	}

	size, err := f.lotto.Count(ctx)
	if err != nil {
		return nil, nil, err
	}

	embed := BuildStatsEmbed(stats, size)
	if len(stats) == 0 {
		return embed, nil, nil
	}

	png, err := f.generator.Generate(stats)
	if err != nil {
		return nil, nil, err
	}

	return embed, &discordgo.File{
		Name:        ChartFilename,
		ContentType: "image/png",
		Reader:      bytes.NewReader(png),
	}, nil
}
