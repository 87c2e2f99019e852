package bot

import (
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dg "github.com/bwmarrin/discordgo"
	"github.com/glotchimo/nickbot/internal/models"
	"github.com/glotchimo/nickbot/internal/utils"
	"github.com/graxinc/errutil"
)

// registerCommands overwrites the configured guild's command set. It runs on
// every Ready, whether or not the set changed.
func (b *Bot) registerCommands() error {
	start := time.Now()
	guildID := b.conf.GuildID.String()

	commands, err := prepareCommands(b.r.Metadata())
	if err != nil {
		return err
	}

	if _, err := b.s.ApplicationCommandBulkOverwrite(b.conf.ApplicationID.String(), guildID, commands); err != nil {
		return errutil.With(err)
	}

	b.l.Info("command set loaded", "guild", guildID, "loaded", len(commands), "duration", time.Since(start))

	hash, err := commandSetHash(commands)
	if err != nil {
		b.l.Warn("error hashing command set", "error", err)
		return nil
	}
	b.storeCommandSetHash(guildID, hash)

	return nil
}

func prepareCommands(commands []*dg.ApplicationCommand) ([]*dg.ApplicationCommand, error) {
	for i, cmd := range commands {
		result := utils.ValidateCommand(cmd)
		if !result.IsValid() {
			return nil, fmt.Errorf("command %q failed validation: %v", cmd.Name, result.Errors)
		}
		commands[i] = result.Command
	}
	return commands, nil
}

func commandSetHash(commands []*dg.ApplicationCommand) (string, error) {
	bytes, err := json.Marshal(commands)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", sha256.Sum256(bytes)), nil
}

func (b *Bot) storeCommandSetHash(guildID, hash string) {
	if b.d == nil {
		return
	}

	g, err := b.d.GetGuild(b.ctx, guildID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if err := b.d.PutGuild(b.ctx, models.Guild{ID: guildID}); err != nil {
			b.l.Warn("error storing guild", "guild", guildID, "error", err)
			return
		}
	case err != nil:
		b.l.Warn("error getting guild", "guild", guildID, "error", err)
		return
	case g.Settings.CommandSetHash == hash:
		b.l.Info("command set unchanged", "guild", guildID)
		return
	}

	if err := b.d.SetCommandSetHash(b.ctx, guildID, hash); err != nil {
		b.l.Warn("error updating command set hash", "guild", guildID, "hash", hash, "error", err)
		return
	}
	b.l.Info("command set changed", "guild", guildID, "hash", hash)
}
