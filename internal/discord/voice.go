package discord

import dg "github.com/bwmarrin/discordgo"

type VoiceConnection interface {
	ChannelID() string
	IsReady() bool
	Disconnect() error
}

type DefaultVoiceConnection struct {
	voiceConn *dg.VoiceConnection
}

func (dvc *DefaultVoiceConnection) ChannelID() string {
	dvc.voiceConn.RLock()
	defer dvc.voiceConn.RUnlock()
	return dvc.voiceConn.ChannelID
}

func (dvc *DefaultVoiceConnection) IsReady() bool {
	dvc.voiceConn.RLock()
	defer dvc.voiceConn.RUnlock()
	return dvc.voiceConn.Ready
}

func (dvc *DefaultVoiceConnection) Disconnect() error {
	return dvc.voiceConn.Disconnect()
}
