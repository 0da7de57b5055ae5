package popup

import tea "github.com/charmbracelet/bubbletea"

// Sender delivers messages into a running program. *tea.Program
// satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// RequestMsg carries a request into the program's Update loop, where the
// Provider picks it up.
type RequestMsg struct {
	Request Request
}

// Messenger is a Service safe to use from any goroutine. Requests are
// forwarded as RequestMsg and shown by the Provider on the UI loop.
type Messenger struct {
	sender Sender
}

// NewMessenger returns a Messenger sending through s.
func NewMessenger(s Sender) *Messenger {
	return &Messenger{sender: s}
}

func (m *Messenger) Alert(r Alert)     { m.send(r) }
func (m *Messenger) Confirm(r Confirm) { m.send(r) }
func (m *Messenger) Prompt(r Prompt)   { m.send(r) }
func (m *Messenger) Remove(r Remove)   { m.send(r) }

func (m *Messenger) send(r Request) {
	if m == nil || m.sender == nil {
		return
	}
	m.sender.Send(RequestMsg{Request: r})
}
