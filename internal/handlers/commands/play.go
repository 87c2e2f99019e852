package commands

import (
	"context"
	"fmt"

	dg "github.com/bwmarrin/discordgo"
	"github.com/glotchimo/nickbot/internal/handlers"
	"github.com/glotchimo/nickbot/internal/media"
	md "github.com/glotchimo/nickbot/internal/models"
	"github.com/glotchimo/nickbot/internal/utils"
	"github.com/glotchimo/nickbot/internal/voice"
)

const (
	QueryOption = "a_braba"

	MessageSearching  = "Searching..."
	MessageNotInVoice = "You are not in a voice channel."
	MessagePlaying    = "Playing: %s"

	// Leaves room for the prefix inside Discord's 2000 character limit.
	maxTitleLength = 1900
)

type Play struct {
	voice    voice.Manager
	locator  voice.Locator
	resolver media.Resolver
}

func NewPlay(vm voice.Manager, locator voice.Locator, resolver media.Resolver) *Play {
	return &Play{
		voice:    vm,
		locator:  locator,
		resolver: resolver,
	}
}

func (p *Play) Metadata() dg.ApplicationCommand {
	return dg.ApplicationCommand{
		Name:        handlers.CommandPlay.String(),
		Description: "Toca-disco",
		Options: []*dg.ApplicationCommandOption{
			{
				Type:        dg.ApplicationCommandOptionString,
				Name:        QueryOption,
				Description: "Ativa o toca-disco",
				Required:    true,
			},
		},
	}
}

func (p *Play) Handle(ctx context.Context, dep handlers.Dependencies) error {
	i := dep.Interaction

	query, err := queryArgument(i)
	if err != nil {
		return err
	}
	dep.Invocation.Query = query

	if i.GuildID == "" {
		return utils.Fail(utils.ErrArgument, "this command only works in a server", nil)
	}

	if err := dep.Reply.Send(MessageSearching); err != nil {
		dep.Logger.Warn("error sending initial response", "error", err)
	}

	channelID, found, err := p.locator.Locate(i.GuildID, handlers.InvokerID(i))
	if err != nil {
		return utils.Fail(utils.ErrInternal, "could not look up voice channels", err)
	}
	if !found {
		dep.Invocation.Outcome = md.OutcomeNotInVoice
		return dep.Reply.Finish(MessageNotInVoice)
	}

	if err := p.voice.Join(ctx, i.GuildID, channelID); err != nil {
		return ensureType(err, utils.ErrVoiceJoin, "could not join voice channel")
	}
	dep.Logger.Debug("joined caller's channel", "channel", channelID)

	item, err := p.resolver.Resolve(ctx, query)
	if err != nil {
		return ensureType(err, utils.ErrResolution, "search failed")
	}

	dep.Invocation.Title = item.Title
	dep.Invocation.Outcome = md.OutcomeResponded
	dep.Logger.Info("media resolved", "id", item.ID, "title", item.Title, "link", item.Link, "duration", item.Duration)

	return dep.Reply.Finish(fmt.Sprintf(MessagePlaying, utils.TruncateString(item.Title, maxTitleLength, "...")))
}

func queryArgument(i *dg.InteractionCreate) (string, error) {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 || options[0] == nil {
		return "", utils.Fail(utils.ErrArgument, fmt.Sprintf("missing argument %s", QueryOption), nil)
	}

	opt := options[0]
	value, ok := opt.Value.(string)
	if opt.Type != dg.ApplicationCommandOptionString || !ok {
		return "", utils.Fail(utils.ErrArgument, fmt.Sprintf("argument %s must be text", QueryOption), nil)
	}

	return value, nil
}

func ensureType(err error, t utils.ErrorType, message string) error {
	if utils.IsType(err, t) {
		return err
	}
	return utils.Fail(t, message, err)
}
