// Package popup provides one modal dialog per Bubble Tea program: alerts,
// confirmations, single-line prompts and destructive-action confirmations.
//
// A Provider owns the dialog. The host model forwards every message to
// Provider.Update and wraps its own view with Provider.View:
//
//	func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//		if cmd, handled := m.popup.Update(msg); handled {
//			return m, cmd
//		}
//		...
//	}
//
//	func (m model) View() string {
//		return m.popup.View(m.body())
//	}
//
// Components that only raise dialogs take a Service, which the Provider
// implements. Code without a provider gets Discard, which drops requests.
// Goroutines outside the Update loop use a Messenger and may block on the
// outcome with Await.
//
// Closing a dialog hides it at once; the request's callback runs
// DefaultDelay later on the Update loop, followed by a ResolvedMsg.
package popup
