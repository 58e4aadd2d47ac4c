package bot

import (
	"strings"

	"github.com/dlclark/regexp2"

	"pkdindustries/quip/internal/commands"
	"pkdindustries/quip/internal/metrics"
)

// maxHelpRetries bounds the no-match fallback: an unmatched command is
// retried as "help" at most this many times.
const maxHelpRetries = 1

var helpRequest = commands.MustCompile("help", regexp2.IgnoreCase)

// HandlePotentialCommand resolves text against the registry and runs the
// first matching command. Unmatched text that is not itself a request for
// help is retried once as "help". It reports whether a command ran; input
// that resolves to nothing is dropped without a reply.
func (b *Bot) HandlePotentialCommand(from, to, text string) bool {
	text = strings.TrimSpace(text)

	for attempt := 0; ; attempt++ {
		b.logger.Debugw("user cmd", "from", from, "to", to, "cmd", text, "attempt", attempt)
		if b.dispatch(from, to, text) {
			return true
		}
		if attempt >= maxHelpRetries || b.isHelpRequest(text) {
			break
		}
		metrics.HelpFallbacks.Inc()
		text = "help"
	}

	metrics.UnhandledCommands.Inc()
	b.logger.Debugw("no command matched", "from", from, "to", to, "cmd", text)
	return false
}

// dispatch runs the first command whose pattern matches text. The
// handler's own result is not inspected.
func (b *Bot) dispatch(from, to, text string) bool {
	for _, e := range b.registry.Entries() {
		ok, err := e.Pattern.MatchString(text)
		if err != nil {
			b.logger.Warnw("pattern match failed", "command", e.Handler.Name(), "error", err)
			continue
		}
		if !ok {
			continue
		}

		metrics.CommandsDispatched.WithLabelValues(e.Handler.Name()).Inc()
		e.Handler.Respond(b.sender(), from, to, commands.SplitArgs(text), text)
		return true
	}
	return false
}

func (b *Bot) isHelpRequest(text string) bool {
	ok, err := helpRequest.MatchString(text)
	if err != nil {
		// can't tell; stop rather than retry
		return true
	}
	return ok
}
