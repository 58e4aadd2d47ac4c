package commands

import (
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"pkdindustries/quip/internal/core"
)

// Handler is a bot command.
// Help reports the command's help text; ok is false when it has none.
// Respond returns false when it could not serve the request.
type Handler interface {
	Name() string
	Help() (text string, ok bool)
	Respond(s core.Sender, from, to string, args []string, raw string) bool
}

// MatchTimeout caps how long one command pattern may run against a message
const MatchTimeout = 250 * time.Millisecond

// Compile compiles a command pattern with MatchTimeout applied
func Compile(expr string, opts regexp2.RegexOptions) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(expr, opts)
	if err != nil {
		return nil, err
	}
	re.MatchTimeout = MatchTimeout
	return re, nil
}

// MustCompile is like Compile but panics on a bad pattern
func MustCompile(expr string, opts regexp2.RegexOptions) *regexp2.Regexp {
	re, err := Compile(expr, opts)
	if err != nil {
		panic(err)
	}
	return re
}

// RespondFunc is the body of a simple command
type RespondFunc func(s core.Sender, from, to string, args []string, raw string) bool

// Entry pairs a pattern with the handler it selects
type Entry struct {
	Pattern *regexp2.Regexp
	Handler Handler
}

// Registry is an ordered, append-only list of commands. The first entry
// whose pattern matches a command string wins.
type Registry struct {
	entries []Entry
}

// NewRegistry creates an empty command registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a command. Overlapping patterns are allowed; earlier
// registrations shadow later ones. Patterns without a timeout get MatchTimeout.
func (r *Registry) Register(pattern *regexp2.Regexp, h Handler) {
	if pattern.MatchTimeout <= 0 || pattern.MatchTimeout == regexp2.DefaultMatchTimeout {
		pattern.MatchTimeout = MatchTimeout
	}
	r.entries = append(r.entries, Entry{Pattern: pattern, Handler: h})
}

// RegisterPattern compiles expr (ECMAScript flavour) and registers it
func (r *Registry) RegisterPattern(expr string, h Handler) error {
	re, err := Compile(expr, regexp2.ECMAScript)
	if err != nil {
		return err
	}
	r.Register(re, h)
	return nil
}

// RegisterSimple registers a command matched by its literal name anywhere
// in the command string, ignoring case
func (r *Registry) RegisterSimple(name, help string, respond RespondFunc) {
	re := MustCompile(regexp2.Escape(name), regexp2.IgnoreCase|regexp2.ECMAScript)
	r.Register(re, &simpleCommand{name: name, help: help, respond: respond})
}

// Entries returns the registered commands in registration order
func (r *Registry) Entries() []Entry {
	return r.entries
}

// Names returns the command names in registration order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.Handler.Name())
	}
	return names
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	return len(r.entries)
}

// SplitArgs splits a command string on spaces, dropping empty tokens
func SplitArgs(text string) []string {
	parts := strings.Split(text, " ")
	args := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			args = append(args, p)
		}
	}
	return args
}

type simpleCommand struct {
	name    string
	help    string
	respond RespondFunc
}

func (c *simpleCommand) Name() string         { return c.name }
func (c *simpleCommand) Help() (string, bool) { return c.help, true }
func (c *simpleCommand) Respond(s core.Sender, from, to string, args []string, raw string) bool {
	return c.respond(s, from, to, args, raw)
}
