package utils

import (
	"fmt"
	"regexp"
	"strings"

	dg "github.com/bwmarrin/discordgo"
)

const (
	maxCommandNameLength        = 32
	maxCommandDescriptionLength = 100
	maxOptionsPerCommand        = 25
	maxOptionNameLength         = 32
	maxOptionDescLength         = 100
	maxChoicesPerOption         = 25
)

var commandNamePattern = regexp.MustCompile(`^[-_\p{L}\p{N}]{1,32}$`)

type ValidationResult struct {
	Command     *dg.ApplicationCommand
	WasModified bool
	Errors      []string
}

func (r ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

// ValidateCommand truncates over-long descriptions and reports anything that
// Discord would reject outright. Names are never rewritten since handlers are
// looked up by them.
func ValidateCommand(cmd *dg.ApplicationCommand) ValidationResult {
	result := ValidationResult{Command: cmd}

	if !commandNamePattern.MatchString(cmd.Name) || cmd.Name != strings.ToLower(cmd.Name) {
		result.Errors = append(result.Errors, fmt.Sprintf("invalid command name %q", cmd.Name))
	}

	if len(cmd.Description) > maxCommandDescriptionLength {
		cmd.Description = cmd.Description[:maxCommandDescriptionLength]
		result.WasModified = true
	}

	if len(cmd.Options) > maxOptionsPerCommand {
		result.Errors = append(result.Errors, fmt.Sprintf("%d options exceed the limit of %d", len(cmd.Options), maxOptionsPerCommand))
	}

	seenOptional := false
	for _, opt := range cmd.Options {
		if len(opt.Name) > maxOptionNameLength || !commandNamePattern.MatchString(opt.Name) {
			result.Errors = append(result.Errors, fmt.Sprintf("invalid option name %q", opt.Name))
		}

		if len(opt.Description) > maxOptionDescLength {
			opt.Description = opt.Description[:maxOptionDescLength]
			result.WasModified = true
		}

		if len(opt.Choices) > maxChoicesPerOption {
			opt.Choices = opt.Choices[:maxChoicesPerOption]
			result.WasModified = true
		}

		if opt.Required && seenOptional {
			result.Errors = append(result.Errors, fmt.Sprintf("required option %q follows an optional one", opt.Name))
		}
		if !opt.Required {
			seenOptional = true
		}
	}

	return result
}
