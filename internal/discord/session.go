package discord

import (
	dg "github.com/bwmarrin/discordgo"
	"github.com/graxinc/errutil"
)

//go:generate mockgen -destination=../mocks/session.go -package=mocks github.com/glotchimo/nickbot/internal/discord Session,VoiceConnection

// Session is the subset of the gateway client the command flow needs.
type Session interface {
	InteractionRespond(i *dg.Interaction, resp *dg.InteractionResponse) error
	InteractionResponseEdit(i *dg.Interaction, edit *dg.WebhookEdit) (*dg.Message, error)
	GuildChannels(guildID string) ([]*dg.Channel, error)
	VoiceStates(guildID string) ([]*dg.VoiceState, error)
	ChannelVoiceJoin(guildID, channelID string, mute, deaf bool) (VoiceConnection, error)
}

type DefaultSession struct {
	session *dg.Session
}

func NewSession(s *dg.Session) *DefaultSession {
	return &DefaultSession{session: s}
}

func (ds *DefaultSession) InteractionRespond(i *dg.Interaction, resp *dg.InteractionResponse) error {
	return ds.session.InteractionRespond(i, resp)
}

func (ds *DefaultSession) InteractionResponseEdit(i *dg.Interaction, edit *dg.WebhookEdit) (*dg.Message, error) {
	return ds.session.InteractionResponseEdit(i, edit)
}

func (ds *DefaultSession) GuildChannels(guildID string) ([]*dg.Channel, error) {
	return ds.session.GuildChannels(guildID)
}

// VoiceStates returns a snapshot of the guild's voice states from the
// gateway state cache.
func (ds *DefaultSession) VoiceStates(guildID string) ([]*dg.VoiceState, error) {
	g, err := ds.session.State.Guild(guildID)
	if err != nil {
		return nil, errutil.With(err)
	}

	ds.session.State.RLock()
	defer ds.session.State.RUnlock()

	states := make([]*dg.VoiceState, 0, len(g.VoiceStates))
	for _, vs := range g.VoiceStates {
		copied := *vs
		states = append(states, &copied)
	}

	return states, nil
}

func (ds *DefaultSession) ChannelVoiceJoin(guildID, channelID string, mute, deaf bool) (VoiceConnection, error) {
	vc, err := ds.session.ChannelVoiceJoin(guildID, channelID, mute, deaf)
	if err != nil {
		return nil, err
	}

	return &DefaultVoiceConnection{voiceConn: vc}, nil
}
