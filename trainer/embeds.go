package trainer

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	ColorInfo    = 0x3498DB
	ColorAdvice  = 0x2ECC71
	ColorWarning = 0xF39C12
	ColorError   = 0xFF0000
)

// CreateBrandedEmbed creates a basic embed with the trainer branding
func CreateBrandedEmbed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   time.Now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Table Coach — practice tool, plays no real money",
		},
	}
}

// SendInteractionResponse sends an embed as the initial interaction response
func SendInteractionResponse(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		return fmt.Errorf("failed to send interaction response: %w", err)
	}
	return nil
}

// RespondWithError sends an ephemeral red error embed
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	embed := CreateBrandedEmbed("Error", message, ColorError)
	_ = SendInteractionResponse(s, i, embed, true)
}

// RoundsExhaustedEmbed tells the player their daily allowance is spent
func RoundsExhaustedEmbed(limit int) *discordgo.MessageEmbed {
	return CreateBrandedEmbed(
		"Daily Rounds Used",
		fmt.Sprintf("You've used all %d of today's training rounds. The counter resets every 24 hours; premium accounts get a larger allowance.", limit),
		ColorWarning,
	)
}
