package commands

import (
	"strings"
	"testing"

	mocktest "pkdindustries/quip/internal/testing"
)

func TestPing(t *testing.T) {
	registry := NewRegistry()
	RegisterPing(registry)
	tr := mocktest.NewMockTransport()

	entry := registry.Entries()[0]
	entry.Handler.Respond(tr, "alice", "#test", []string{"ping"}, "ping")

	if got := tr.LastSay(); got.Target != "#test" || got.Text != "alice: pong" {
		t.Errorf("unexpected reply %+v", got)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := &VersionCommand{Nick: "testbot", Version: "v0.1"}
	tr := mocktest.NewMockTransport()

	cmd.Respond(tr, "alice", "#test", []string{"version"}, "version")

	if got := tr.LastSay().Text; got != "testbot v0.1" {
		t.Errorf("expected 'testbot v0.1', got %q", got)
	}
}

func TestGetCommand(t *testing.T) {
	cmd := &GetCommand{Config: mocktest.DefaultTestConfig()}

	tests := []struct {
		name   string
		args   []string
		wantOK bool
		want   string
	}{
		{"missing key", []string{"get"}, false, "Usage:"},
		{"unknown key", []string{"get", "saslpass"}, false, "Unknown key saslpass"},
		{"host", []string{"get", "host"}, true, "host: irc.test.local"},
		{"port", []string{"get", "port"}, true, "port: 6667"},
		{"channels", []string{"get", "channels"}, true, "channels: #test, #other"},
		{"tls", []string{"get", "tls"}, true, "tls: false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := mocktest.NewMockTransport()
			ok := cmd.Respond(tr, "alice", "#test", tt.args, strings.Join(tt.args, " "))
			if ok != tt.wantOK {
				t.Errorf("Respond() = %v, want %v", ok, tt.wantOK)
			}
			if tr.SayCount() != 1 {
				t.Fatalf("expected 1 reply, got %d", tr.SayCount())
			}
			if !strings.Contains(tr.LastSay().Text, tt.want) {
				t.Errorf("expected reply containing %q, got %q", tt.want, tr.LastSay().Text)
			}
		})
	}
}
