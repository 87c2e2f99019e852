package bot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	dg "github.com/bwmarrin/discordgo"
	"github.com/glotchimo/nickbot/internal/cache"
	"github.com/glotchimo/nickbot/internal/config"
	"github.com/glotchimo/nickbot/internal/database"
	"github.com/glotchimo/nickbot/internal/discord"
	"github.com/glotchimo/nickbot/internal/handlers"
	"github.com/glotchimo/nickbot/internal/handlers/commands"
	"github.com/glotchimo/nickbot/internal/media"
	"github.com/glotchimo/nickbot/internal/models"
	"github.com/glotchimo/nickbot/internal/response"
	"github.com/glotchimo/nickbot/internal/utils"
	"github.com/glotchimo/nickbot/internal/voice"
	"github.com/graxinc/errutil"
	"github.com/lmittmann/tint"
)

type Bot struct {
	mu     sync.RWMutex
	ctx    context.Context
	cancel context.CancelFunc
	conf   config.Config

	s  *dg.Session
	d  *database.Database
	c  *cache.Cache
	l  *slog.Logger
	vm voice.Manager
	r  *handlers.Router

	fatal    chan error
	contexts map[string]*GuildContext
}

func NewLogger(debug bool) *slog.Logger {
	if debug {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}))
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true}))
}

func NewBot(conf config.Config, l *slog.Logger) (*Bot, error) {
	b := Bot{
		conf:     conf,
		l:        l,
		fatal:    make(chan error, 1),
		contexts: make(map[string]*GuildContext),
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.ctx = ctx
	b.cancel = cancel

	var recorder handlers.Recorder
	if conf.DatabaseURL != "" {
		database, err := database.NewDatabase(b.l, conf.DatabaseURL)
		if err != nil {
			cancel()
			return nil, errutil.With(err)
		}
		b.d = database
		recorder = database
	} else {
		b.l.Info("database disabled, invocations will not be stored")
	}

	cache, err := cache.NewCache(conf.CacheURL, b.l)
	if err != nil {
		b.closeStores()
		cancel()
		return nil, errutil.With(err)
	}
	b.c = cache

	session, err := dg.New("Bot " + conf.Token)
	if err != nil {
		b.closeStores()
		cancel()
		return nil, errutil.With(err)
	}
	b.s = session
	b.s.Identify.Intents = dg.Intent(conf.Intents)

	ds := discord.NewSession(session)
	vm := voice.NewSessionManager(ds, b.l)
	b.vm = vm

	resolver := media.NewCachedResolver(
		media.NewYtDlpResolver(conf.YoutubeDLPath, conf.SearchTimeout),
		b.c,
		conf.CacheTTL,
		b.l,
	)

	router, err := handlers.NewRouter(b.l, response.NewSessionResponder(ds, b.l), recorder, map[handlers.Command]handlers.Handler{
		handlers.CommandPlay: commands.NewPlay(vm, voice.NewChannelLocator(ds), resolver),
	})
	if err != nil {
		b.closeStores()
		cancel()
		return nil, errutil.With(err)
	}
	b.r = router

	b.s.AddHandler(func(s *dg.Session, r *dg.Ready) {
		b.l.Info("bot connected to gateway",
			"bot", fmt.Sprintf("%s#%s", r.User.Username, r.User.Discriminator),
			"guilds", len(r.Guilds),
			"version", utils.GetCommit(),
		)

		go func() {
			if err := b.registerCommands(); err != nil {
				b.l.Error("error registering commands", "guild", b.conf.GuildID, "error", err)
				b.fail(err)
			}
		}()
	})

	b.s.AddHandler(func(s *dg.Session, g *dg.GuildCreate) { b.register(g.Guild) })
	b.s.AddHandler(func(s *dg.Session, g *dg.GuildDelete) { b.remove(g.Guild) })

	b.s.AddHandler(func(s *dg.Session, i *dg.InteractionCreate) {
		if i.GuildID == "" {
			go b.run(b.ctx, i)
			return
		}
		if !b.enqueue(i.GuildID, GuildEvent{Type: EventTypeInteraction, Interaction: i}) {
			go b.run(b.ctx, i)
		}
	})
	b.s.AddHandler(func(s *dg.Session, v *dg.VoiceStateUpdate) {
		b.enqueue(v.GuildID, GuildEvent{Type: EventTypeVoiceUpdate, VoiceUpdate: v})
	})

	if err := b.s.Open(); err != nil {
		b.closeStores()
		cancel()
		return nil, errutil.With(err)
	}

	go b.status()

	return &b, nil
}

// Fatal delivers errors the bot cannot recover from, such as a failed
// command registration.
func (b *Bot) Fatal() <-chan error {
	return b.fatal
}

func (b *Bot) fail(err error) {
	select {
	case b.fatal <- err:
	default:
	}
}

func (b *Bot) Close() {
	b.cancel()

	b.mu.Lock()
	for id, gc := range b.contexts {
		gc.Cancel()
		delete(b.contexts, id)
	}
	b.mu.Unlock()

	b.vm.Close()

	if err := b.s.Close(); err != nil {
		b.l.Warn("error closing session", "error", err)
	}

	b.closeStores()
}

func (b *Bot) closeStores() {
	if b.c != nil {
		if err := b.c.Close(); err != nil {
			b.l.Warn("error closing cache", "error", err)
		}
	}
	if b.d != nil {
		if err := b.d.Close(); err != nil {
			b.l.Warn("error closing database", "error", err)
		}
	}
}

// run dispatches a single interaction on its own goroutine's stack so a
// panicking handler cannot take the guild loop down with it.
func (b *Bot) run(ctx context.Context, i *dg.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			stack = stack[:runtime.Stack(stack, false)]
			b.l.Error("panic recovered", "guild", i.GuildID, "interaction", i.ID, "recovered", r, "stack", string(stack))
		}
	}()

	b.r.Dispatch(ctx, i)
}

func (b *Bot) voiceUpdate(v *dg.VoiceStateUpdate) {
	if v == nil || v.VoiceState == nil || b.s.State == nil || b.s.State.User == nil {
		return
	}

	if v.UserID == b.s.State.User.ID && v.ChannelID == "" {
		b.l.Info("bot left voice", "guild", v.GuildID)
		b.vm.Forget(v.GuildID)
	}
}

func (b *Bot) status() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	step := 0
	for {
		select {
		case <-b.ctx.Done():
			return
		case <-ticker.C:
			msg, err := b.statusMessage(step)
			step = (step + 1) % 2
			if err != nil {
				b.l.Error("error building bot status", "error", err)
				continue
			}

			if b.s.State == nil || b.s.State.User == nil {
				continue
			}

			if err := b.s.UpdateStatusComplex(dg.UpdateStatusData{
				Status: string(dg.StatusOnline),
				Activities: []*dg.Activity{
					{
						Name:  b.s.State.User.Username,
						Type:  dg.ActivityTypeCustom,
						State: msg,
					},
				},
			}); err != nil {
				b.l.Error("error setting bot status", "error", err)
			}
		}
	}
}

func (b *Bot) statusMessage(step int) (string, error) {
	switch step {
	case 0:
		b.s.State.RLock()
		count := len(b.s.State.Guilds)
		b.s.State.RUnlock()
		return fmt.Sprintf("Playing in %d servers", count), nil

	default:
		if b.d == nil {
			return fmt.Sprintf("%d commands handled", b.r.Handled()), nil
		}

		count, err := b.d.Count(b.ctx, models.TableInvocations, nil)
		if err != nil {
			return "", errutil.With(err)
		}
		return fmt.Sprintf("%d commands handled", count), nil
	}
}
