package commands

import (
	"reflect"
	"strings"
	"testing"

	mocktest "pkdindustries/quip/internal/testing"
)

func newHelpRegistry() (*Registry, *HelpCommand) {
	registry := NewRegistry()
	registry.RegisterSimple("ping", "pings the target", nil)
	registry.Register(HelpPattern, &mockCommand{name: "quiet"})
	help := RegisterHelp(registry)
	return registry, help
}

func TestHelpCommand_SpecificCommand(t *testing.T) {
	_, help := newHelpRegistry()
	tr := mocktest.NewMockTransport()

	ok := help.Respond(tr, "alice", "#test", []string{"help", "ping"}, "help ping")

	if !ok {
		t.Error("expected help for a documented command to succeed")
	}
	if tr.SayCount() != 1 {
		t.Fatalf("expected 1 message, got %d: %v", tr.SayCount(), tr.Says)
	}
	want := mocktest.Message{Target: "#test", Text: "ping: pings the target"}
	if tr.LastSay() != want {
		t.Errorf("got %+v, want %+v", tr.LastSay(), want)
	}
}

func TestHelpCommand_CommandWithoutHelp(t *testing.T) {
	_, help := newHelpRegistry()
	tr := mocktest.NewMockTransport()

	ok := help.Respond(tr, "alice", "#test", []string{"help", "quiet"}, "help quiet")

	if ok {
		t.Error("expected false for a command that has no help")
	}
	if tr.SayCount() != 0 {
		t.Errorf("expected no messages, got %v", tr.Says)
	}
}

func TestHelpCommand_UnknownCommandListsAll(t *testing.T) {
	_, help := newHelpRegistry()
	tr := mocktest.NewMockTransport()

	help.Respond(tr, "alice", "#test", []string{"help", "nope"}, "help nope")

	assertFullListing(t, tr, "alice", "#test", "ping, quiet, help")
}

func TestHelpCommand_NoArgsListsAll(t *testing.T) {
	_, help := newHelpRegistry()
	tr := mocktest.NewMockTransport()

	ok := help.Respond(tr, "alice", "#test", []string{"help"}, "help")

	if !ok {
		t.Error("expected listing to succeed")
	}
	assertFullListing(t, tr, "alice", "#test", "ping, quiet, help")
}

func TestHelpCommand_SeesLaterRegistrations(t *testing.T) {
	registry, help := newHelpRegistry()
	registry.Register(HelpPattern, &VersionCommand{Nick: "testbot", Version: "v1"})
	tr := mocktest.NewMockTransport()

	help.Respond(tr, "alice", "#test", []string{"help"}, "help")

	private := tr.SaysTo("alice")
	if len(private) != 4 || !strings.HasSuffix(private[2], ", version") {
		t.Errorf("expected late registration in listing, got %v", private)
	}
}

func TestHelpCommand_CaseSensitiveLookup(t *testing.T) {
	_, help := newHelpRegistry()
	tr := mocktest.NewMockTransport()

	help.Respond(tr, "alice", "#test", []string{"help", "PING"}, "help PING")

	// no exact name match falls through to the listing
	if tr.SayCount() != 5 {
		t.Errorf("expected full listing, got %v", tr.Says)
	}
}

func assertFullListing(t *testing.T, tr *mocktest.MockTransport, from, to, names string) {
	t.Helper()

	public := tr.SaysTo(to)
	if len(public) != 1 || public[0] != from+": I sent some help to you in a private message." {
		t.Errorf("unexpected public messages: %v", public)
	}

	want := []string{
		"Sorry, I didn't understand your command for me.",
		"I do understand the following commands:",
		names,
		`For more help on one of these commands, try "help [cmd]"`,
	}
	if got := tr.SaysTo(from); !reflect.DeepEqual(got, want) {
		t.Errorf("private messages = %q, want %q", got, want)
	}
	if tr.SayCount() != 5 {
		t.Errorf("expected 5 messages total, got %d", tr.SayCount())
	}
}
