package voice

import (
	dg "github.com/bwmarrin/discordgo"
	"github.com/glotchimo/nickbot/internal/discord"
	"github.com/graxinc/errutil"
)

//go:generate mockgen -destination=../mocks/voice.go -package=mocks github.com/glotchimo/nickbot/internal/voice Locator,Manager

type Locator interface {
	// Locate returns the voice channel the user is connected to. found is
	// false when the user is in none of the guild's voice channels.
	Locate(guildID, userID string) (channelID string, found bool, err error)
}

type ChannelLocator struct {
	s discord.Session
}

func NewChannelLocator(s discord.Session) *ChannelLocator {
	return &ChannelLocator{s: s}
}

// Locate walks the guild's voice channels in the order the API returns
// them and picks the first one the user is a member of.
func (l *ChannelLocator) Locate(guildID, userID string) (string, bool, error) {
	channels, err := l.s.GuildChannels(guildID)
	if err != nil {
		return "", false, errutil.With(err)
	}

	states, err := l.s.VoiceStates(guildID)
	if err != nil {
		return "", false, errutil.With(err)
	}

	members := make(map[string]map[string]struct{}, len(channels))
	for _, vs := range states {
		if vs == nil || vs.ChannelID == "" {
			continue
		}
		if members[vs.ChannelID] == nil {
			members[vs.ChannelID] = make(map[string]struct{})
		}
		members[vs.ChannelID][vs.UserID] = struct{}{}
	}

	for _, c := range channels {
		if c == nil || c.Type != dg.ChannelTypeGuildVoice {
			continue
		}
		if _, ok := members[c.ID][userID]; ok {
			return c.ID, true, nil
		}
	}

	return "", false, nil
}
