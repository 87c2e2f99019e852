package testutils

import (
	"io"
	"log/slog"

	dg "github.com/bwmarrin/discordgo"
)

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewCommandInteraction builds an application command interaction. A guild
// interaction carries the user as a member; a DM carries it directly.
func NewCommandInteraction(name, id, guildID, userID string, options ...*dg.ApplicationCommandInteractionDataOption) *dg.InteractionCreate {
	i := &dg.Interaction{
		ID:      id,
		Type:    dg.InteractionApplicationCommand,
		GuildID: guildID,
		Data: dg.ApplicationCommandInteractionData{
			ID:      "command-" + name,
			Name:    name,
			Options: options,
		},
	}

	user := &dg.User{ID: userID, Username: "user-" + userID}
	if guildID != "" {
		i.Member = &dg.Member{User: user}
	} else {
		i.User = user
	}

	return &dg.InteractionCreate{Interaction: i}
}

func StringOption(name, value string) *dg.ApplicationCommandInteractionDataOption {
	return &dg.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  dg.ApplicationCommandOptionString,
		Value: value,
	}
}
