package lottery

import (
	"strings"

	"unionlotto/bot/common"
	"unionlotto/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Feature represents the lottery number generator feature
type Feature struct {
	lotto interfaces.LotterySession
}

// NewFeature creates a new lottery feature instance
func NewFeature(lotto interfaces.LotterySession) *Feature {
	return &Feature{
		lotto: lotto,
	}
}

// HandleCommand routes /lotto subcommands owned by this feature
func (f *Feature) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		common.RespondWithError(s, i, "Please choose a subcommand")
		return
	}

	sub := options[0]
	switch sub.Name {
	case "pick":
		f.handlePick(s, i, pickCountOption(sub.Options))
	case "ai":
		f.handleAIButton(s, i)
	case "history":
		f.handleHistory(s, i)
	case "clear":
		f.handleClear(s, i)
	default:
		log.Warnf("Unknown lotto subcommand: %s", sub.Name)
		common.RespondWithError(s, i, "Unknown subcommand")
	}
}

// HandleInteraction handles lottery button interactions and modals
func (f *Feature) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		f.handleComponentInteraction(s, i)
	case discordgo.InteractionModalSubmit:
		f.handleModalSubmit(s, i)
	default:
		log.Warnf("Unknown interaction type in lottery: %v", i.Type)
	}
}

// handleComponentInteraction routes button clicks based on custom ID
func (f *Feature) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	switch {
	case customID == ButtonPickOne:
		f.handlePick(s, i, 1)
	case customID == ButtonPickFive:
		f.handlePick(s, i, 5)
	case customID == ButtonAI:
		f.handleAIButton(s, i)
	case customID == ButtonClearConfirm:
		f.handleClear(s, i)
	case strings.HasPrefix(customID, CopyButtonPrefix):
		f.handleCopyButton(s, i, strings.TrimPrefix(customID, CopyButtonPrefix))
	default:
		common.RespondWithError(s, i, "Unknown lottery interaction")
	}
}

// handleModalSubmit handles lottery modal submissions
func (f *Feature) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.ModalSubmitData().CustomID

	if customID == ModalAI {
		f.handleAIModalSubmit(s, i)
		return
	}

	log.Warnf("Unknown lottery modal customID: %s", customID)
	common.RespondWithError(s, i, "Unknown lottery modal")
}

// pickCountOption reads the optional count argument, defaulting to a single set
func pickCountOption(options []*discordgo.ApplicationCommandInteractionDataOption) int {
	for _, opt := range options {
		if opt.Name == "count" {
			return int(opt.IntValue())
		}
	}
	return 1
}
