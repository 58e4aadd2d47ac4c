package testing

import (
	"pkdindustries/quip/internal/core"
)

// MockTransport implements core.Transport and records everything sent through it
type MockTransport struct {
	Says        []Message
	Acts        []Message
	ListenCalls int
	Listener    core.Listener
}

// Verify MockTransport implements core.Transport
var _ core.Transport = (*MockTransport)(nil)

// NewMockTransport creates an empty MockTransport
func NewMockTransport() *MockTransport {
	return &MockTransport{
		Says: []Message{},
		Acts: []Message{},
	}
}

func (m *MockTransport) Say(target, text string) {
	m.Says = append(m.Says, Message{Target: target, Text: text})
}

func (m *MockTransport) Act(target, text string) {
	m.Acts = append(m.Acts, Message{Target: target, Text: text})
}

func (m *MockTransport) Listen(l core.Listener) {
	m.ListenCalls++
	m.Listener = l
}

// Assertion helpers

// SaysTo returns the text of every Say() sent to target, in order
func (m *MockTransport) SaysTo(target string) []string {
	var out []string
	for _, msg := range m.Says {
		if msg.Target == target {
			out = append(out, msg.Text)
		}
	}
	return out
}

// LastSay returns the last Say(), or the zero Message if none
func (m *MockTransport) LastSay() Message {
	if len(m.Says) == 0 {
		return Message{}
	}
	return m.Says[len(m.Says)-1]
}

// SayCount returns the number of Say() calls
func (m *MockTransport) SayCount() int {
	return len(m.Says)
}

// Reset forgets recorded messages but keeps the listener
func (m *MockTransport) Reset() {
	m.Says = []Message{}
	m.Acts = []Message{}
}
