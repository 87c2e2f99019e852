package models

import "time"

type Outcome string

const (
	OutcomePending    Outcome = "pending"
	OutcomeResponded  Outcome = "responded"
	OutcomeNotInVoice Outcome = "not_in_voice"
	OutcomeError      Outcome = "error"
)

// Invocation describes one slash command execution from receipt to reply.
type Invocation struct {
	ID            string
	InteractionID string
	GuildID       string
	UserID        string
	Command       string
	Query         string
	Outcome       Outcome
	Title         string
	Error         string
	Created       time.Time
}

func (i Invocation) Map() map[string]any {
	return map[string]any{
		"id":             i.ID,
		"interaction_id": i.InteractionID,
		"guild_id":       i.GuildID,
		"user_id":        i.UserID,
		"command":        i.Command,
		"query":          i.Query,
		"outcome":        string(i.Outcome),
		"title":          i.Title,
		"error":          i.Error,
	}
}

func (i Invocation) Table() Table {
	return TableInvocations
}
