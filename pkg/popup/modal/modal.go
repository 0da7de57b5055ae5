package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/popup/pkg/popup/mouse"
)

// Variant selects the frame color.
type Variant int

const (
	VariantDefault Variant = iota
	VariantDanger
	VariantWarning
	VariantInfo
)

// ActionDismiss is returned for Esc and, when enabled, backdrop clicks.
const ActionDismiss = "dismiss"

const (
	backdropRegion = "modal-backdrop"
	bodyRegion     = "modal-body"

	defaultWidth = 50
	minWidth     = 24

	// title line plus the blank line under it
	headerLines = 2
)

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Left    key.Binding
	Right   key.Binding
	Submit  key.Binding
	Dismiss key.Binding
}

var keys = keyMap{
	Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
	Left:    key.NewBinding(key.WithKeys("left")),
	Right:   key.NewBinding(key.WithKeys("right")),
	Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Dismiss: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
}

// Option configures a Modal.
type Option func(*Modal)

// WithWidth sets the outer width of the modal including its frame.
func WithWidth(w int) Option {
	return func(m *Modal) {
		if w > 0 {
			m.width = w
		}
	}
}

// WithVariant sets the frame color.
func WithVariant(v Variant) Option {
	return func(m *Modal) { m.variant = v }
}

// WithHints toggles the keyboard hint line.
func WithHints(show bool) Option {
	return func(m *Modal) { m.showHints = show }
}

// WithPrimaryAction sets the action returned for Enter when the focused
// element does not handle it.
func WithPrimaryAction(actionID string) Option {
	return func(m *Modal) { m.primaryAction = actionID }
}

// WithCloseOnBackdropClick controls whether a click outside the frame
// yields ActionDismiss.
func WithCloseOnBackdropClick(close bool) Option {
	return func(m *Modal) { m.closeOnBackdrop = close }
}

// WithIcon sets a glyph shown before the title.
func WithIcon(glyph string) Option {
	return func(m *Modal) { m.icon = glyph }
}

// Modal is a declarative dialog built from sections.
type Modal struct {
	title           string
	icon            string
	width           int
	variant         Variant
	showHints       bool
	primaryAction   string
	closeOnBackdrop bool
	sections        []Section

	focusables []FocusableInfo
	focusIdx   int
	wantFocus  string
	hoverID    string
	laidOut    bool
	lastWidth  int
}

// New creates a modal. Defaults: width 50, hints on, backdrop click closes.
func New(title string, opts ...Option) *Modal {
	m := &Modal{
		title:           title,
		width:           defaultWidth,
		showHints:       true,
		closeOnBackdrop: true,
		focusIdx:        -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.lastWidth = m.width
	return m
}

// AddSection appends a section and returns the modal for chaining.
func (m *Modal) AddSection(s Section) *Modal {
	m.sections = append(m.sections, s)
	m.laidOut = false
	return m
}

// SetFocus moves focus to id. Unknown IDs are ignored at the next layout.
func (m *Modal) SetFocus(id string) {
	m.wantFocus = id
	if m.laidOut {
		m.resolveFocus()
	}
}

// FocusedID returns the ID of the focused element, or "".
func (m *Modal) FocusedID() string {
	if m.focusIdx >= 0 && m.focusIdx < len(m.focusables) {
		return m.focusables[m.focusIdx].ID
	}
	return m.wantFocus
}

// HoveredID returns the ID under the mouse pointer, or "".
func (m *Modal) HoveredID() string {
	return m.hoverID
}

// Render draws the framed modal for a screen of screenW x screenH and, when
// handler is non-nil, registers hit regions at absolute screen positions.
func (m *Modal) Render(screenW, screenH int, handler *mouse.Handler) string {
	width := m.outerWidth(screenW)
	m.lastWidth = width
	cw := contentWidth(width)

	m.layout(cw) // measure pass settles focus before styling
	body, focusables := m.layout(cw)

	var sb strings.Builder
	sb.WriteString(m.header(cw))
	sb.WriteString("\n\n")
	sb.WriteString(body)
	if m.showHints {
		sb.WriteString("\n\n")
		sb.WriteString(MutedText.Render(hints()))
	}

	box := frame(m.variant).Width(width - 2*frameBorder).Render(sb.String())

	if handler != nil {
		handler.Clear()
		x0, y0 := position(box, screenW, screenH)
		handler.HitMap.AddRect(backdropRegion, 0, 0, screenW, screenH, nil)
		handler.HitMap.AddRect(bodyRegion, x0, y0, lipgloss.Width(box), lipgloss.Height(box), nil)

		cx := x0 + frameBorder + framePadX
		cy := y0 + frameBorder + framePadY + headerLines
		for _, f := range focusables {
			handler.HitMap.AddRect(f.ID, cx+f.OffsetX, cy+f.OffsetY, f.Width, f.Height, f)
		}
	}

	return box
}

// HandleKey processes a key press and returns an action ID when one fires.
func (m *Modal) HandleKey(msg tea.KeyMsg) (string, tea.Cmd) {
	m.ensureLayout()

	focused := m.FocusedID()
	f, hasFocus := m.focusable(focused)

	switch {
	case key.Matches(msg, keys.Dismiss):
		return ActionDismiss, nil
	case key.Matches(msg, keys.Next):
		m.cycleFocus(1)
		return "", nil
	case key.Matches(msg, keys.Prev):
		m.cycleFocus(-1)
		return "", nil
	case hasFocus && f.Clickable && key.Matches(msg, keys.Right):
		m.cycleFocus(1)
		return "", nil
	case hasFocus && f.Clickable && key.Matches(msg, keys.Left):
		m.cycleFocus(-1)
		return "", nil
	case key.Matches(msg, keys.Submit):
		if hasFocus && f.Clickable {
			return f.ID, nil
		}
		for _, s := range m.sections {
			if sub, ok := s.(submitter); ok {
				if action, owned := sub.Submit(focused); owned {
					return action, nil
				}
			}
		}
		return m.primaryAction, nil
	}

	return m.Update(msg)
}

// Update routes a non-key message (cursor blink and the like) or an
// unhandled key to the sections.
func (m *Modal) Update(msg tea.Msg) (string, tea.Cmd) {
	focused := m.FocusedID()
	var cmds []tea.Cmd
	for _, s := range m.sections {
		action, cmd := s.Update(msg, focused)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if action != "" {
			return action, tea.Batch(cmds...)
		}
	}
	return "", tea.Batch(cmds...)
}

// HandleMouse resolves a mouse event against the regions registered by the
// last Render and returns an action ID for button clicks and dismissals.
func (m *Modal) HandleMouse(msg tea.MouseMsg, handler *mouse.Handler) string {
	if handler == nil {
		return ""
	}
	a := handler.HandleMouse(msg)

	switch a.Type {
	case mouse.ActionClick:
		if a.Region == nil {
			return ""
		}
		switch a.Region.ID {
		case backdropRegion:
			if m.closeOnBackdrop {
				return ActionDismiss
			}
			return ""
		case bodyRegion:
			return ""
		}
		m.SetFocus(a.Region.ID)
		if f, ok := a.Region.Data.(FocusableInfo); ok && f.Clickable {
			return f.ID
		}
	case mouse.ActionHover:
		m.hoverID = ""
		if a.Region != nil && a.Region.ID != backdropRegion && a.Region.ID != bodyRegion {
			m.hoverID = a.Region.ID
		}
	}
	return ""
}

func (m *Modal) outerWidth(screenW int) int {
	w := m.width
	if screenW > 0 && w > screenW-2 {
		w = screenW - 2
	}
	return max(w, minWidth)
}

func contentWidth(outer int) int {
	return max(1, outer-2*frameBorder-2*framePadX)
}

func (m *Modal) header(cw int) string {
	title := Title.Render(m.title)
	if m.icon != "" {
		title = m.icon + "  " + title
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, title)
}

func (m *Modal) layout(cw int) (string, []FocusableInfo) {
	focusID := m.FocusedID()
	var parts []string
	var focusables []FocusableInfo
	y := 0

	for _, s := range m.sections {
		r := s.Render(cw, focusID, m.hoverID)
		if r.hidden {
			continue
		}
		for _, f := range r.Focusables {
			f.OffsetY += y
			focusables = append(focusables, f)
		}
		parts = append(parts, r.Content)
		y += lipgloss.Height(r.Content)
	}

	m.focusables = focusables
	m.laidOut = true
	m.resolveFocus()
	return strings.Join(parts, "\n"), focusables
}

func (m *Modal) ensureLayout() {
	if !m.laidOut {
		m.layout(contentWidth(m.lastWidth))
	}
}

func (m *Modal) resolveFocus() {
	if m.wantFocus != "" {
		for i, f := range m.focusables {
			if f.ID == m.wantFocus {
				m.focusIdx = i
				m.wantFocus = ""
				return
			}
		}
		m.wantFocus = ""
	}
	if m.focusIdx >= len(m.focusables) {
		m.focusIdx = len(m.focusables) - 1
	}
	if m.focusIdx < 0 && len(m.focusables) > 0 {
		m.focusIdx = 0
	}
}

func (m *Modal) cycleFocus(delta int) {
	n := len(m.focusables)
	if n == 0 {
		return
	}
	m.wantFocus = ""
	m.focusIdx = ((m.focusIdx+delta)%n + n) % n
}

func (m *Modal) focusable(id string) (FocusableInfo, bool) {
	for _, f := range m.focusables {
		if f.ID == id {
			return f, true
		}
	}
	return FocusableInfo{}, false
}

func hints() string {
	var parts []string
	for _, b := range []key.Binding{keys.Next, keys.Submit, keys.Dismiss} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
