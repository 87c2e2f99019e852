package bot

import (
	"context"
	"fmt"
	"runtime"
	"time"

	dg "github.com/bwmarrin/discordgo"
	"github.com/glotchimo/nickbot/internal/models"
)

const eventBufferSize = 1000

type EventType int

const (
	EventTypeInteraction EventType = iota
	EventTypeVoiceUpdate
)

type GuildEvent struct {
	Type EventType

	Interaction *dg.InteractionCreate
	VoiceUpdate *dg.VoiceStateUpdate
}

type GuildContext struct {
	Context context.Context
	Cancel  context.CancelFunc
	Events  chan GuildEvent
}

func (b *Bot) register(g *dg.Guild) {
	b.mu.Lock()
	if existing, ok := b.contexts[g.ID]; ok {
		existing.Cancel()
	}

	ctx, cancel := context.WithCancel(b.ctx)
	gc := &GuildContext{
		Context: ctx,
		Cancel:  cancel,
		Events:  make(chan GuildEvent, eventBufferSize),
	}
	b.contexts[g.ID] = gc
	b.mu.Unlock()

	b.l.Info("registered guild", "id", g.ID, "name", g.Name)

	go b.dispatch(g.ID, gc)
	go b.monitor(g.ID, gc)

	if b.d != nil {
		if err := b.d.PutGuild(b.ctx, models.Guild{ID: g.ID, Name: g.Name}); err != nil {
			b.l.Warn("error storing guild", "guild", g.ID, "error", err)
		}
	}
}

func (b *Bot) remove(g *dg.Guild) {
	b.mu.Lock()
	if gc, ok := b.contexts[g.ID]; ok {
		gc.Cancel()
		delete(b.contexts, g.ID)
	}
	b.mu.Unlock()

	if g.Unavailable {
		b.l.Warn("guild unavailable, keeping voice session", "guild", g.ID)
	} else if err := b.vm.Leave(g.ID); err != nil {
		b.l.Warn("error leaving voice", "guild", g.ID, "error", err)
	}

	b.l.Info("removed guild", "id", g.ID, "unavailable", g.Unavailable)
}

// enqueue reports false when the guild has no running context.
func (b *Bot) enqueue(guildID string, event GuildEvent) bool {
	b.mu.RLock()
	gc, ok := b.contexts[guildID]
	b.mu.RUnlock()

	if !ok {
		b.l.Debug("no context for guild event", "guild", guildID, "type", event.Type)
		return false
	}

	select {
	case gc.Events <- event:
		return true
	case <-gc.Context.Done():
		b.l.Debug("dropped event for cancelled guild context", "guild", guildID)
		return true
	default:
		b.l.Warn("event channel full, dropping event", "guild", guildID)
		return true
	}
}

func (b *Bot) dispatch(guildID string, gc *GuildContext) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			stack = stack[:runtime.Stack(stack, false)]
			b.l.Error("panic recovered", "guild", guildID, "recovered", r, "stack", string(stack))
			go b.dispatch(guildID, gc)
		}
	}()

	for {
		select {
		case <-gc.Context.Done():
			return
		case e := <-gc.Events:
			switch e.Type {
			case EventTypeInteraction:
				if e.Interaction == nil {
					b.l.Warn("received nil interaction in dispatch", "guild", guildID)
					continue
				}
				// Commands run under the bot context; a repeated GUILD_CREATE
				// replaces this loop without cancelling them.
				go b.run(b.ctx, e.Interaction)

			case EventTypeVoiceUpdate:
				b.voiceUpdate(e.VoiceUpdate)
			}
		}
	}
}

func (b *Bot) monitor(guildID string, gc *GuildContext) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	var lastWarningTime time.Time
	var consecutiveWarnings int

	for {
		select {
		case <-gc.Context.Done():
			return
		case <-ticker.C:
			size := len(gc.Events)
			capacity := cap(gc.Events)
			fill := float64(size) / float64(capacity) * 100

			if fill <= 60 {
				continue
			}

			now := time.Now()
			if now.Sub(lastWarningTime) > 5*time.Minute {
				consecutiveWarnings = 0
				lastWarningTime = now
			}
			consecutiveWarnings++

			b.l.Warn("event channel filling up",
				"guild", guildID,
				"size", size,
				"capacity", capacity,
				"percentage", fmt.Sprintf("%.1f%%", fill),
				"consecutive_warnings", consecutiveWarnings)

			if consecutiveWarnings >= 3 {
				b.l.Error("potential stuck handler detected; event channel consistently full",
					"guild", guildID,
					"size", size,
					"capacity", capacity,
					"warnings", consecutiveWarnings)
			}
		}
	}
}
