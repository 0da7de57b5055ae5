package popup

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/marcus/popup/pkg/popup/modal"
	"github.com/marcus/popup/pkg/popup/mouse"
)

// DefaultDelay is how long a callback waits after the dialog closes.
const DefaultDelay = 250 * time.Millisecond

// DefaultWidth is the outer dialog width in cells.
const DefaultWidth = 50

const (
	actionConfirm = "confirm"
	actionCancel  = "cancel"
	inputID       = "popup-input"
)

// ResolvedMsg is emitted after a request's callback has run.
type ResolvedMsg struct {
	ID string
	Result
}

type fireMsg struct {
	id string
}

type pendingCall struct {
	fn     func()
	result ResolvedMsg
}

// Option configures a Provider.
type Option func(*Provider)

// WithDelay sets the pause between closing the dialog and running its
// callback.
func WithDelay(d time.Duration) Option {
	return func(p *Provider) {
		if d >= 0 {
			p.delay = d
		}
	}
}

// WithWidth sets the outer dialog width.
func WithWidth(w int) Option {
	return func(p *Provider) {
		if w > 0 {
			p.dialogWidth = w
		}
	}
}

// WithLogger sets the logger. The default discards everything since the
// terminal belongs to the program.
func WithLogger(l *slog.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithIcons replaces the icon resolver.
func WithIcons(r IconResolver) Option {
	return func(p *Provider) {
		if r != nil {
			p.icons = r
		}
	}
}

// WithMarkdown renders body text as markdown.
func WithMarkdown(enabled bool) Option {
	return func(p *Provider) { p.markdown = enabled }
}

// WithHints toggles the keyboard hint line under the buttons.
func WithHints(show bool) Option {
	return func(p *Provider) { p.hints = show }
}

// Provider owns the single dialog of a Bubble Tea program. It implements
// Service; its methods must be called from the program's Update loop.
// Other goroutines go through a Messenger.
//
// The host forwards messages to Update and wraps its view with View.
type Provider struct {
	state   State
	request Request
	body    string

	input  textinput.Model
	dialog *modal.Modal
	mouse  *mouse.Handler

	width       int
	height      int
	dialogWidth int
	delay       time.Duration
	icons       IconResolver
	markdown    bool
	hints       bool
	logger      *slog.Logger

	schedule func(time.Duration, func(time.Time) tea.Msg) tea.Cmd
	pending  map[string]pendingCall
	closed   bool
}

var _ Service = (*Provider)(nil)

// New creates a closed Provider.
func New(opts ...Option) *Provider {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Cursor.SetMode(cursor.CursorStatic)

	p := &Provider{
		input:       ti,
		mouse:       mouse.NewHandler(),
		dialogWidth: DefaultWidth,
		delay:       DefaultDelay,
		icons:       NewEmojiIcons(),
		hints:       true,
		logger:      slog.New(slog.DiscardHandler),
		schedule:    tea.Tick,
		pending:     make(map[string]pendingCall),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Alert(r Alert)     { p.show(r) }
func (p *Provider) Confirm(r Confirm) { p.show(r) }
func (p *Provider) Prompt(r Prompt)   { p.show(r) }
func (p *Provider) Remove(r Remove)   { p.show(r) }

// State returns a snapshot of the current dialog.
func (p *Provider) State() State {
	return p.state
}

// Open reports whether a dialog is visible.
func (p *Provider) Open() bool {
	return p.state.Open
}

// Value returns the prompt input's current text.
func (p *Provider) Value() string {
	return p.input.Value()
}

// SetSize records the screen size used for centring and hit regions.
func (p *Provider) SetSize(width, height int) {
	p.width, p.height = width, height
}

// Update handles dialog input and the provider's own messages. The bool is
// true when the host should not process msg further. Window size messages
// are observed but never consumed.
func (p *Provider) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case RequestMsg:
		if msg.Request != nil {
			Show(p, msg.Request)
		}
		return nil, true

	case fireMsg:
		return p.fire(msg.id), true

	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
		return nil, false

	case tea.KeyMsg:
		if !p.state.Open {
			return nil, false
		}
		action, cmd := p.dialog.HandleKey(msg)
		return tea.Batch(cmd, p.act(action)), true

	case tea.MouseMsg:
		if !p.state.Open {
			return nil, false
		}
		return p.act(p.dialog.HandleMouse(msg, p.mouse)), true
	}

	return nil, false
}

// Close tears the provider down. Callbacks still waiting on their delay are
// dropped and later requests are ignored.
func (p *Provider) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.state.Open = false
	if n := len(p.pending); n > 0 {
		p.logger.Debug("popup pending callbacks dropped", "count", n)
	}
	clear(p.pending)
}

func (p *Provider) show(req Request) {
	if p.closed {
		p.logger.Debug("popup request ignored after close", "kind", req.Kind().String())
		return
	}

	c := req.content()
	p.request = req
	p.state = State{
		Open:  true,
		Kind:  req.Kind(),
		Title: c.title,
		Text:  c.text,
		Icon:  c.icon,
	}

	if pr, ok := req.(Prompt); ok {
		p.input.SetValue(pr.DefaultValue)
		p.input.CursorEnd()
		p.input.Focus()
	} else {
		p.input.Blur()
	}

	p.body = p.renderBody(c.text)
	p.dialog = p.buildDialog()

	p.logger.Debug("popup open", "kind", p.state.Kind.String(), "title", c.title)
}

func (p *Provider) act(action string) tea.Cmd {
	switch action {
	case actionConfirm:
		return p.confirm()
	case actionCancel, modal.ActionDismiss:
		return p.abort()
	}
	return nil
}

func (p *Provider) confirm() tea.Cmd {
	res := Result{Kind: p.state.Kind, Confirmed: true}
	var fn func()

	switch r := p.request.(type) {
	case Confirm:
		fn = r.OnConfirm
	case Remove:
		fn = r.OnConfirm
	case Prompt:
		value := p.input.Value()
		res.Value = value
		if r.OnConfirm != nil {
			onConfirm := r.OnConfirm
			fn = func() { onConfirm(value) }
		}
	default:
		// alerts have nothing to confirm
		return nil
	}

	return p.closeWith(fn, res)
}

func (p *Provider) abort() tea.Cmd {
	var fn func()
	if p.request != nil {
		fn = p.request.abortFunc()
	}
	return p.closeWith(fn, Result{Kind: p.state.Kind})
}

// closeWith hides the dialog now and runs fn once the delay has passed.
func (p *Provider) closeWith(fn func(), res Result) tea.Cmd {
	p.state.Open = false
	p.input.Blur()

	id := uuid.NewString()
	p.pending[id] = pendingCall{fn: fn, result: ResolvedMsg{ID: id, Result: res}}

	p.logger.Debug("popup closing",
		"id", id,
		"kind", res.Kind.String(),
		"confirmed", res.Confirmed,
		"delay", p.delay,
	)

	return p.schedule(p.delay, func(time.Time) tea.Msg {
		return fireMsg{id: id}
	})
}

func (p *Provider) fire(id string) tea.Cmd {
	call, ok := p.pending[id]
	if !ok || p.closed {
		return nil
	}
	delete(p.pending, id)

	if call.fn != nil {
		call.fn()
	}
	p.logger.Debug("popup resolved", "id", id, "kind", call.result.Kind.String(), "confirmed", call.result.Confirmed)

	res := call.result
	return func() tea.Msg { return res }
}
