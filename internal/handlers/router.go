package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	dg "github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
	md "github.com/glotchimo/nickbot/internal/models"
	rp "github.com/glotchimo/nickbot/internal/response"
	"github.com/glotchimo/nickbot/internal/utils"
)

type Recorder interface {
	RecordInvocation(context.Context, md.Invocation) error
}

type Router struct {
	l         *slog.Logger
	responder *rp.Responder
	recorder  Recorder
	handlers  map[Command]Handler
	handled   atomic.Int64
}

// NewRouter fails unless every Command has a handler whose metadata carries
// the command's name. recorder may be nil.
func NewRouter(l *slog.Logger, responder *rp.Responder, recorder Recorder, handlers map[Command]Handler) (*Router, error) {
	for _, c := range Commands {
		h, ok := handlers[c]
		if !ok || h == nil {
			return nil, fmt.Errorf("no handler for command %s", c)
		}
		if name := h.Metadata().Name; name != c.String() {
			return nil, fmt.Errorf("handler for command %s is named %q", c, name)
		}
	}

	return &Router{
		l:         l,
		responder: responder,
		recorder:  recorder,
		handlers:  handlers,
	}, nil
}

// Metadata returns the application commands to register, in enum order.
func (r *Router) Metadata() []*dg.ApplicationCommand {
	commands := make([]*dg.ApplicationCommand, 0, len(Commands))
	for _, c := range Commands {
		cmd := r.handlers[c].Metadata()
		commands = append(commands, &cmd)
	}
	return commands
}

func (r *Router) Handled() int64 {
	return r.handled.Load()
}

// Dispatch runs one interaction to completion. Errors end up as a single
// "Error: ..." reply and are never returned.
func (r *Router) Dispatch(ctx context.Context, i *dg.InteractionCreate) {
	if i == nil || i.Interaction == nil || i.Type != dg.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	inv := &md.Invocation{
		ID:            utils.GenerateID(),
		InteractionID: i.ID,
		GuildID:       i.GuildID,
		UserID:        InvokerID(i),
		Command:       data.Name,
		Outcome:       md.OutcomePending,
		Created:       time.Now().UTC(),
	}

	l := r.l.With("invocation", inv.ID, "guild", i.GuildID, "command", data.Name)
	l.Info("command issued", "user", inv.UserID, "called", utils.FormatInteraction(i), "age", interactionAge(i.ID))

	r.handled.Add(1)
	defer r.record(ctx, l, inv)

	reply := r.responder.Begin(i)

	err := r.handle(ctx, l, reply, i, inv, data.Name)
	if err == nil {
		if !reply.Finished() {
			l.Warn("handler returned without a final reply", "outcome", inv.Outcome)
		}
		l.Info("command handled", "outcome", inv.Outcome)
		return
	}

	inv.Outcome = md.OutcomeError
	inv.Error = err.Error()

	if utils.IsType(err, utils.ErrResponse) {
		l.Warn("error responding to interaction", "error", err)
		return
	}

	if err := reply.Fail(err); err != nil {
		l.Warn("error reporting failure", "error", err)
	}
}

func (r *Router) handle(ctx context.Context, l *slog.Logger, reply *rp.Reply, i *dg.InteractionCreate, inv *md.Invocation, name string) error {
	cmd, err := ParseCommand(name)
	if err != nil {
		l.Error("dispatched a command that was never registered", "error", err)
		return err
	}

	return r.handlers[cmd].Handle(ctx, Dependencies{
		Logger:      l,
		Reply:       reply,
		Interaction: i,
		Invocation:  inv,
	})
}

func (r *Router) record(ctx context.Context, l *slog.Logger, inv *md.Invocation) {
	if r.recorder == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := r.recorder.RecordInvocation(ctx, *inv); err != nil {
		l.Warn("error storing invocation", "error", err)
	}
}

func InvokerID(i *dg.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func interactionAge(id string) time.Duration {
	sf, err := snowflake.Parse(id)
	if err != nil {
		return 0
	}
	return time.Since(sf.Time()).Round(time.Millisecond)
}
