package utils

import (
	"bytes"
	"os/exec"
	"strings"
	"unicode"

	"github.com/rs/xid"
)

func GenerateID() string {
	return xid.New().String()
}

func GetCommit() string {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return ""
	}

	return strings.TrimSpace(out.String())
}

// TruncateString cuts str to at most maxLen runes, preferring the last
// whitespace boundary, and appends suffix when anything was removed.
func TruncateString(str string, maxLen int, suffix string) string {
	count := 0
	cut := -1
	space := -1

	for i, r := range str {
		if count == maxLen {
			cut = i
			break
		}
		if unicode.IsSpace(r) {
			space = i
		}
		count++
	}

	if cut < 0 {
		return str
	}

	if space > 0 {
		cut = space
	}

	return strings.TrimRightFunc(str[:cut], unicode.IsSpace) + suffix
}
