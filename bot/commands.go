package bot

import (
	"fmt"

	"unionlotto/domain/services"

	"github.com/bwmarrin/discordgo"
)

// lottoCommand defines /lotto and its subcommands
func lottoCommand() *discordgo.ApplicationCommand {
	minCount := float64(1)

	return &discordgo.ApplicationCommand{
		Name:        "lotto",
		Description: "Union Lotto number generator",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "pick",
				Description: "Generate random Double Color Ball sets",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "count",
						Description: fmt.Sprintf("How many sets to generate (1-%d)", services.MaxBatchSize),
						Required:    false,
						MinValue:    &minCount,
						MaxValue:    float64(services.MaxBatchSize),
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "ai",
				Description: "Ask the AI for lucky numbers based on your day",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "history",
				Description: "Show the numbers generated this session",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "stats",
				Description: "Show the most frequent numbers this session",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "clear",
				Description: "Clear the session history",
			},
		},
	}
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		lottoCommand(),
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}
