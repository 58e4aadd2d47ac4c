package commands

import (
	"pkdindustries/quip/internal/core"
)

// RegisterPing adds the stock ping command
func RegisterPing(registry *Registry) {
	registry.RegisterSimple("ping", "<noargs> checks that the bot is alive",
		func(s core.Sender, from, to string, args []string, raw string) bool {
			s.Say(to, from+": pong")
			return true
		})
}
