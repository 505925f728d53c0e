package lottery

import (
	"context"
	"errors"
	"fmt"

	"unionlotto/bot/common"
	"unionlotto/domain/entities"
	"unionlotto/domain/interfaces"
	"unionlotto/domain/services"
	"unionlotto/infrastructure/observability"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const (
	aiFailureMessage       = "Failed to generate AI numbers. Try again."
	aiConfigurationMessage = "AI suggestions are not configured. Ask an admin to set GEMINI_API_KEY."
	aiEmptyPromptMessage   = "Tell me a little about your day, a dream, or a feeling first."
	aiSuccessMessage       = "AI numbers generated successfully!"
)

// handlePick generates a batch of random sets and shows them
func (f *Feature) handlePick(s *discordgo.Session, i *discordgo.InteractionCreate, count int) {
	ctx := context.Background()

	batch, err := f.lotto.PickRandom(ctx, count)
	if err != nil {
		common.HandleError(s, i, pickError(err, count), false)
		return
	}

	size, err := f.lotto.Count(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read history size")
		size = len(batch)
	}

	embed := CreateBatchEmbed(batch, size)
	if err := common.RespondWithEmbed(s, i, embed, CreateBatchComponents(batch), false); err != nil {
		log.Errorf("Error responding to pick: %v", err)
	}
}

// handleAIButton opens the AI modal
func (f *Feature) handleAIButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := common.RespondWithModal(s, i, CreateAIModal()); err != nil {
		log.Errorf("Error showing AI modal: %v", err)
	}
}

// handleAIModalSubmit asks the AI provider for a set based on the submitted context
func (f *Feature) handleAIModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userContext := modalContextValue(i.ModalSubmitData())

	// The provider call can take seconds, longer than Discord's 3s response window
	if err := common.DeferResponse(s, i, false); err != nil {
		log.Errorf("Failed to defer response: %v", err)
		return
	}

	done := observability.GetMetrics().MeasureAISuggestion()
	set, err := f.lotto.SuggestLucky(context.Background(), userContext)
	if err != nil {
		done(services.FailureReason(err))
		common.HandleError(s, i, suggestionError(err), true)
		return
	}
	done(observability.OutcomeSuccess)

	size, err := f.lotto.Count(context.Background())
	if err != nil {
		log.WithError(err).Warn("Failed to read history size")
		size = 1
	}

	content := "✅ " + aiSuccessMessage
	batch := []*entities.LotterySet{set}
	components := CreateBatchComponents(batch)
	_, err = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Embeds:     &[]*discordgo.MessageEmbed{CreateBatchEmbed(batch, size)},
		Components: &components,
	})
	if err != nil {
		log.Errorf("Error sending AI suggestion: %v", err)
	}
}

// handleHistory shows the newest sets
func (f *Feature) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sets, err := f.lotto.History(context.Background())
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "Failed to read history"), false)
		return
	}

	if err := common.RespondWithEmbed(s, i, CreateHistoryEmbed(sets), nil, false); err != nil {
		log.Errorf("Error responding to history: %v", err)
	}
}

// handleClear runs one step of the two-step clear confirmation
func (f *Feature) handleClear(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	result, err := f.lotto.RequestClear(ctx)
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "Failed to clear history"), false)
		return
	}

	var embed *discordgo.MessageEmbed
	components := []discordgo.MessageComponent{}

	switch result {
	case interfaces.ClearNothing:
		embed = &discordgo.MessageEmbed{
			Title:       "Clear History",
			Color:       common.ColorInfo,
			Description: "There is nothing to clear.",
		}
	case interfaces.ClearPending:
		count, err := f.lotto.Count(ctx)
		if err != nil {
			log.WithError(err).Warn("Failed to read history size")
		}
		embed = CreateClearPromptEmbed(count)
		components = CreateClearConfirmComponents()
	case interfaces.ClearDone:
		embed = CreateClearedEmbed()
	}

	respondToClear(s, i, embed, components)
}

// respondToClear replaces the confirmation message when the button was pressed, otherwise replies ephemerally
func respondToClear(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	responseType := discordgo.InteractionResponseChannelMessageWithSource
	if i.Type == discordgo.InteractionMessageComponent {
		responseType = discordgo.InteractionResponseUpdateMessage
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: responseType,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Error responding to clear: %v", err)
	}
}

// handleCopyButton replies with the set's copy text in a code block
func (f *Feature) handleCopyButton(s *discordgo.Session, i *discordgo.InteractionCreate, setID string) {
	sets, err := f.lotto.History(context.Background())
	if err != nil {
		common.HandleError(s, i, common.NewSystemError(err, "Failed to read history"), false)
		return
	}

	set := findSet(sets, setID)
	if set == nil {
		common.RespondWithError(s, i, "That set is no longer in the history")
		return
	}

	if err := common.RespondWithContent(s, i, CreateCopyMessage(set), nil, true); err != nil {
		log.Errorf("Error responding to copy: %v", err)
	}
}

func findSet(sets []*entities.LotterySet, id string) *entities.LotterySet {
	for _, set := range sets {
		if set.ID == id {
			return set
		}
	}
	return nil
}

// pickError maps a pick failure to a user facing error
func pickError(err error, count int) *common.BotError {
	if errors.Is(err, services.ErrInvalidBatchSize) {
		return common.NewUserError(
			fmt.Sprintf("You can pick between 1 and %d sets at a time", services.MaxBatchSize),
			fmt.Sprintf("Rejected pick of %d sets", count),
		)
	}
	return common.NewSystemError(err, "Failed to pick random sets")
}

// suggestionError maps an AI suggestion failure to a user facing error
func suggestionError(err error) *common.BotError {
	switch {
	case errors.Is(err, services.ErrConfiguration):
		botErr := common.NewUserError(aiConfigurationMessage, "AI provider is not configured")
		botErr.Err = err
		return botErr
	case errors.Is(err, services.ErrEmptyPrompt):
		return common.NewUserError(aiEmptyPromptMessage, "Empty AI prompt submitted")
	default:
		botErr := common.NewSystemError(err, "AI suggestion failed")
		botErr.UserMessage = aiFailureMessage
		botErr.Context = services.FailureReason(err)
		return botErr
	}
}
