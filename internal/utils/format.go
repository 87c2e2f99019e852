package utils

import (
	"fmt"
	"strings"

	dg "github.com/bwmarrin/discordgo"
)

func FormatUserMention(id string) string {
	return fmt.Sprintf("<@%s>", id)
}

// FormatInteraction renders an application command the way a user would
// type it, e.g. "/play a_braba:lofi hip hop".
func FormatInteraction(i *dg.InteractionCreate) string {
	if i == nil || i.Type != dg.InteractionApplicationCommand {
		return ""
	}

	data := i.ApplicationCommandData()
	parts := []string{"/" + data.Name}

	for _, opt := range data.Options {
		parts = append(parts, formatCommandOption(opt))
	}

	return strings.Join(parts, " ")
}

func formatCommandValue(opt *dg.ApplicationCommandInteractionDataOption) string {
	switch opt.Type {
	case dg.ApplicationCommandOptionString:
		if s, ok := opt.Value.(string); ok {
			return s
		}
		return fmt.Sprintf("%v", opt.Value)
	case dg.ApplicationCommandOptionUser:
		return FormatUserMention(fmt.Sprintf("%v", opt.Value))
	case dg.ApplicationCommandOptionNumber:
		if f, ok := opt.Value.(float64); ok {
			return fmt.Sprintf("%.2f", f)
		}
		return fmt.Sprintf("%v", opt.Value)
	default:
		return fmt.Sprintf("%v", opt.Value)
	}
}

func formatCommandOption(opt *dg.ApplicationCommandInteractionDataOption) string {
	switch opt.Type {
	case dg.ApplicationCommandOptionSubCommand, dg.ApplicationCommandOptionSubCommandGroup:
		subParts := []string{opt.Name}
		for _, subOpt := range opt.Options {
			subParts = append(subParts, formatCommandOption(subOpt))
		}
		return strings.Join(subParts, " ")
	default:
		return fmt.Sprintf("%s:%v", opt.Name, formatCommandValue(opt))
	}
}
