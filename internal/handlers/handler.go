package handlers

import (
	"context"
	"fmt"
	"log/slog"

	dg "github.com/bwmarrin/discordgo"
	md "github.com/glotchimo/nickbot/internal/models"
	rp "github.com/glotchimo/nickbot/internal/response"
	"github.com/glotchimo/nickbot/internal/utils"
)

// Command is the closed set of slash commands the bot registers.
type Command int

const (
	CommandPlay Command = iota
)

// Commands lists every Command in registration order.
var Commands = []Command{CommandPlay}

func (c Command) String() string {
	switch c {
	case CommandPlay:
		return "play"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

func ParseCommand(name string) (Command, error) {
	for _, c := range Commands {
		if c.String() == name {
			return c, nil
		}
	}

	return 0, utils.Fail(utils.ErrInternal, fmt.Sprintf("unknown command %q", name), nil)
}

type Dependencies struct {
	Logger      *slog.Logger
	Reply       *rp.Reply
	Interaction *dg.InteractionCreate
	Invocation  *md.Invocation
}

type Handler interface {
	Metadata() dg.ApplicationCommand
	Handle(context.Context, Dependencies) error
}
