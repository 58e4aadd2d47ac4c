package irc

import (
	"strings"

	"github.com/lrstanley/girc"
)

// CheckAddressed returns true if message starts with botNick at position 0.
// The match is case-sensitive and needs no separator after the nick.
func CheckAddressed(message, botNick string) bool {
	return strings.HasPrefix(message, botNick)
}

// CommandText returns what follows the nick in an addressed message: the
// text from the first space onward, or "" when there is no space.
func CommandText(message string) string {
	if i := strings.IndexByte(message, ' '); i >= 0 {
		return message[i:]
	}
	return ""
}

// CheckPrivate returns true if target is not a channel
func CheckPrivate(target string) bool {
	return !girc.IsValidChannel(target)
}
