package voice

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/glotchimo/nickbot/internal/discord"
	"github.com/glotchimo/nickbot/internal/utils"
)

var ErrClosed = errors.New("voice manager closed")

type Manager interface {
	Join(ctx context.Context, guildID, channelID string) error
	Leave(guildID string) error
	Forget(guildID string)
	Close()
}

// SessionManager owns at most one voice connection per guild. Joins for the
// same guild are serialized; different guilds proceed independently.
type SessionManager struct {
	s discord.Session
	l *slog.Logger

	guilds *keyedMutex

	mu          sync.RWMutex
	connections map[string]discord.VoiceConnection
	closed      bool
}

func NewSessionManager(s discord.Session, l *slog.Logger) *SessionManager {
	return &SessionManager{
		s:           s,
		l:           l,
		guilds:      newKeyedMutex(),
		connections: make(map[string]discord.VoiceConnection),
	}
}

func (m *SessionManager) Join(ctx context.Context, guildID, channelID string) error {
	unlock := m.guilds.Lock(guildID)
	defer unlock()

	if err := ctx.Err(); err != nil {
		return utils.Fail(utils.ErrVoiceJoin, "could not join voice channel", err)
	}

	m.mu.RLock()
	closed := m.closed
	current, ok := m.connections[guildID]
	m.mu.RUnlock()

	if closed {
		return utils.Fail(utils.ErrVoiceJoin, "could not join voice channel", ErrClosed)
	}

	if ok && current.IsReady() && current.ChannelID() == channelID {
		m.l.Debug("reusing voice connection", "guild", guildID, "channel", channelID)
		return nil
	}

	vc, err := m.s.ChannelVoiceJoin(guildID, channelID, false, false)
	if err != nil {
		m.l.Warn("error joining voice channel", "guild", guildID, "channel", channelID, "error", err)
		return utils.Fail(utils.ErrVoiceJoin, "could not join voice channel", err)
	}

	m.mu.Lock()
	m.connections[guildID] = vc
	m.mu.Unlock()

	m.l.Info("joined voice channel", "guild", guildID, "channel", channelID)
	return nil
}

func (m *SessionManager) Leave(guildID string) error {
	unlock := m.guilds.Lock(guildID)
	defer unlock()

	m.mu.Lock()
	vc, ok := m.connections[guildID]
	delete(m.connections, guildID)
	m.mu.Unlock()

	if !ok {
		return nil
	}

	return vc.Disconnect()
}

// Forget drops the tracked connection without disconnecting, for when the
// gateway already reported the bot out of voice.
func (m *SessionManager) Forget(guildID string) {
	m.mu.Lock()
	delete(m.connections, guildID)
	m.mu.Unlock()
}

func (m *SessionManager) Close() {
	m.mu.Lock()
	m.closed = true
	connections := m.connections
	m.connections = make(map[string]discord.VoiceConnection)
	m.mu.Unlock()

	for guildID, vc := range connections {
		if err := vc.Disconnect(); err != nil {
			m.l.Warn("error disconnecting voice", "guild", guildID, "error", err)
		}
	}
}
