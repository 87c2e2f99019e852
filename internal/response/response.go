package response

import (
	"errors"
	"log/slog"
	"sync"

	dg "github.com/bwmarrin/discordgo"
	"github.com/glotchimo/nickbot/internal/discord"
	"github.com/glotchimo/nickbot/internal/utils"
)

// Discord rejects message content above 2000 characters.
const maxContentLength = 2000

var (
	ErrAlreadySent     = errors.New("initial response already sent")
	ErrAlreadyFinished = errors.New("response already finished")
)

type Responder struct {
	s discord.Session
	l *slog.Logger
}

func NewSessionResponder(s discord.Session, l *slog.Logger) *Responder {
	return &Responder{s: s, l: l}
}

// Begin starts the reply lifecycle of one interaction.
func (r *Responder) Begin(i *dg.InteractionCreate) *Reply {
	return &Reply{s: r.s, l: r.l, i: i.Interaction}
}

// Reply allows one initial response followed by at most one edit.
type Reply struct {
	mu       sync.Mutex
	s        discord.Session
	l        *slog.Logger
	i        *dg.Interaction
	sent     bool
	finished bool
}

// Send posts the initial response. A failed send still counts as the initial
// response: later calls edit rather than respond again.
func (rp *Reply) Send(content string) error {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	if rp.sent {
		return utils.Fail(utils.ErrResponse, "", ErrAlreadySent)
	}
	rp.sent = true

	return rp.respond(content)
}

// Finish edits the initial response, or sends one when none was attempted.
func (rp *Reply) Finish(content string) error {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	if rp.finished {
		return utils.Fail(utils.ErrResponse, "", ErrAlreadyFinished)
	}
	rp.finished = true

	if !rp.sent {
		rp.sent = true
		return rp.respond(content)
	}

	content = clamp(content)
	if _, err := rp.s.InteractionResponseEdit(rp.i, &dg.WebhookEdit{Content: &content}); err != nil {
		return utils.Fail(utils.ErrResponse, "could not edit response", err)
	}

	return nil
}

// Fail reports err to the user as "Error: <message>".
func (rp *Reply) Fail(err error) error {
	rp.l.Warn("handler failure", "type", utils.TypeOf(err).String(), "error", err)
	return rp.Finish("Error: " + err.Error())
}

func (rp *Reply) Finished() bool {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	return rp.finished
}

func (rp *Reply) respond(content string) error {
	if err := rp.s.InteractionRespond(rp.i, &dg.InteractionResponse{
		Type: dg.InteractionResponseChannelMessageWithSource,
		Data: &dg.InteractionResponseData{Content: clamp(content)},
	}); err != nil {
		return utils.Fail(utils.ErrResponse, "could not send response", err)
	}

	return nil
}

func clamp(content string) string {
	return utils.TruncateString(content, maxContentLength, "")
}
