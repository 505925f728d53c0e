package lottery

import (
	"fmt"

	"unionlotto/bot/common"
	"unionlotto/domain/entities"

	"github.com/bwmarrin/discordgo"
)

// Custom IDs routed to this feature. Every ID starts with "lotto_".
const (
	ButtonPickOne      = "lotto_pick_1"
	ButtonPickFive     = "lotto_pick_5"
	ButtonAI           = "lotto_ai"
	ButtonClearConfirm = "lotto_clear_confirm"
	ButtonStats        = "lotto_stats"
	CopyButtonPrefix   = "lotto_copy_"
	ModalAI            = "lotto_ai_modal"

	contextInputID = "context"
)

const aiPlaceholder = "e.g., 'Today is my 30th birthday and I feel great!' or 'I dreamt of golden dragons flying in the sky.'"

// CreateActionComponents creates the generator buttons shown under every result
func CreateActionComponents() discordgo.ActionsRow {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Pick 1",
				Style:    discordgo.PrimaryButton,
				CustomID: ButtonPickOne,
				Emoji: &discordgo.ComponentEmoji{
					Name: "🎲",
				},
			},
			discordgo.Button{
				Label:    "Pick 5",
				Style:    discordgo.PrimaryButton,
				CustomID: ButtonPickFive,
				Emoji: &discordgo.ComponentEmoji{
					Name: "🎰",
				},
			},
			discordgo.Button{
				Label:    "AI Lucky",
				Style:    discordgo.SuccessButton,
				CustomID: ButtonAI,
				Emoji: &discordgo.ComponentEmoji{
					Name: "✨",
				},
			},
			discordgo.Button{
				Label:    "Stats",
				Style:    discordgo.SecondaryButton,
				CustomID: ButtonStats,
				Emoji: &discordgo.ComponentEmoji{
					Name: "📊",
				},
			},
		},
	}
}

// CreateBatchComponents creates copy buttons for each set plus the generator buttons
func CreateBatchComponents(batch []*entities.LotterySet) []discordgo.MessageComponent {
	components := make([]discordgo.MessageComponent, 0, 2)

	if len(batch) > 0 {
		copyButtons := make([]discordgo.MessageComponent, 0, len(batch))
		for idx, set := range batch {
			if idx >= common.MaxButtonsPerRow {
				break
			}
			label := "Copy"
			if len(batch) > 1 {
				label = fmt.Sprintf("Copy #%d", idx+1)
			}
			copyButtons = append(copyButtons, discordgo.Button{
				Label:    label,
				Style:    discordgo.SecondaryButton,
				CustomID: CopyButtonPrefix + set.ID,
				Emoji: &discordgo.ComponentEmoji{
					Name: "📋",
				},
			})
		}
		components = append(components, discordgo.ActionsRow{Components: copyButtons})
	}

	return append(components, CreateActionComponents())
}

// CreateClearConfirmComponents creates the danger button that confirms a clear
func CreateClearConfirmComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Confirm Clear?",
					Style:    discordgo.DangerButton,
					CustomID: ButtonClearConfirm,
					Emoji: &discordgo.ComponentEmoji{
						Name: "🗑️",
					},
				},
			},
		},
	}
}

// CreateAIModal creates the modal that collects the user's mood or story
func CreateAIModal() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: ModalAI,
		Title:    "AI Lucky Assistant",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:    contextInputID,
						Label:       "Tell me about your day, a dream, or a feeling",
						Style:       discordgo.TextInputParagraph,
						Placeholder: aiPlaceholder,
						Required:    true,
						MinLength:   1,
						MaxLength:   common.MaxTextInputLength,
					},
				},
			},
		},
	}
}

// modalContextValue extracts the context text input from a submitted AI modal
func modalContextValue(data discordgo.ModalSubmitInteractionData) string {
	for _, comp := range data.Components {
		row, ok := comp.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, innerComp := range row.Components {
			textInput, ok := innerComp.(*discordgo.TextInput)
			if ok && textInput.CustomID == contextInputID {
				return textInput.Value
			}
		}
	}
	return ""
}
