package commands

import (
	"strings"

	"github.com/dlclark/regexp2"

	"pkdindustries/quip/internal/core"
)

// HelpPattern selects the help command
var HelpPattern = MustCompile("help", regexp2.IgnoreCase|regexp2.ECMAScript)

// HelpCommand lists the registered commands, or shows help for one of them.
// It reads the registry when invoked, so it sees commands registered after it.
type HelpCommand struct {
	registry *Registry
}

// NewHelpCommand creates a help command that can list registered commands
func NewHelpCommand(registry *Registry) *HelpCommand {
	return &HelpCommand{registry: registry}
}

// RegisterHelp adds the standard help command to registry
func RegisterHelp(registry *Registry) *HelpCommand {
	cmd := NewHelpCommand(registry)
	registry.Register(HelpPattern, cmd)
	return cmd
}

func (c *HelpCommand) Name() string { return "help" }

func (c *HelpCommand) Help() (string, bool) {
	return "<noargs> displays helpful information about bot capabilities", true
}

func (c *HelpCommand) Respond(s core.Sender, from, to string, args []string, raw string) bool {
	if len(args) > 1 {
		for _, e := range c.registry.Entries() {
			if e.Handler.Name() != args[1] {
				continue
			}
			text, ok := e.Handler.Help()
			if !ok {
				return false
			}
			s.Say(to, e.Handler.Name()+": "+text)
			return true
		}
	}

	c.RespondNoCommand(s, from, to)
	return true
}

// RespondNoCommand points the channel at a private message and sends the
// full command listing to from
func (c *HelpCommand) RespondNoCommand(s core.Sender, from, to string) {
	s.Say(to, from+": I sent some help to you in a private message.")
	s.Say(from, "Sorry, I didn't understand your command for me.")
	s.Say(from, "I do understand the following commands:")
	s.Say(from, strings.Join(c.registry.Names(), ", "))
	s.Say(from, `For more help on one of these commands, try "help [cmd]"`)
}
