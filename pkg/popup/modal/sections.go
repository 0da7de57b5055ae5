package modal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Section is one vertical block of modal content.
type Section interface {
	// Render draws the section at contentWidth. Focusable offsets are
	// relative to the section's top-left corner.
	Render(contentWidth int, focusID, hoverID string) RenderedSection
	// Update receives messages while the modal is open. A non-empty
	// return value is an action ID.
	Update(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// RenderedSection is the output of Section.Render.
type RenderedSection struct {
	Content    string
	Focusables []FocusableInfo

	hidden bool
}

// FocusableInfo describes a focus target inside a section.
type FocusableInfo struct {
	ID      string
	OffsetX int
	OffsetY int
	Width   int
	Height  int
	// Clickable targets resolve to their ID as an action on click or Enter.
	Clickable bool
}

// submitter is implemented by sections that own the Enter key while focused.
type submitter interface {
	Submit(focusID string) (action string, owned bool)
}

// textSection renders wrapped static text.
type textSection struct {
	text string
}

// Text creates a wrapped text section.
func Text(s string) Section {
	return &textSection{text: s}
}

func (s *textSection) Render(contentWidth int, _, _ string) RenderedSection {
	return RenderedSection{Content: Body.Width(contentWidth).Render(s.text)}
}

func (s *textSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

type spacerSection struct{}

// Spacer creates a blank line.
func Spacer() Section {
	return spacerSection{}
}

func (spacerSection) Render(int, string, string) RenderedSection {
	return RenderedSection{Content: ""}
}

func (spacerSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

// ButtonDef is one button in a Buttons row.
type ButtonDef struct {
	Label  string
	ID     string
	danger bool
}

// ButtonOption configures a ButtonDef.
type ButtonOption func(*ButtonDef)

// BtnDanger styles the button as destructive.
func BtnDanger() ButtonOption {
	return func(b *ButtonDef) { b.danger = true }
}

// Btn declares a button whose ID doubles as its action.
func Btn(label, id string, opts ...ButtonOption) ButtonDef {
	b := ButtonDef{Label: label, ID: id}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

type buttonsSection struct {
	buttons []ButtonDef
}

// Buttons creates a horizontal row of buttons.
func Buttons(btns ...ButtonDef) Section {
	return &buttonsSection{buttons: btns}
}

const buttonGap = "  "

func (s *buttonsSection) Render(_ int, focusID, hoverID string) RenderedSection {
	var sb strings.Builder
	var focusables []FocusableInfo
	x := 0

	for i, b := range s.buttons {
		if i > 0 {
			sb.WriteString(buttonGap)
			x += lipgloss.Width(buttonGap)
		}
		rendered := buttonStyle(b, focusID, hoverID).Render(b.Label)
		w := lipgloss.Width(rendered)
		focusables = append(focusables, FocusableInfo{
			ID:        b.ID,
			OffsetX:   x,
			Width:     w,
			Height:    1,
			Clickable: true,
		})
		sb.WriteString(rendered)
		x += w
	}

	return RenderedSection{Content: sb.String(), Focusables: focusables}
}

func buttonStyle(b ButtonDef, focusID, hoverID string) lipgloss.Style {
	switch {
	case b.ID == focusID && b.danger:
		return ButtonDangerFocused
	case b.ID == focusID:
		return ButtonFocused
	case b.ID == hoverID && b.danger:
		return ButtonDangerHover
	case b.ID == hoverID:
		return ButtonHover
	case b.danger:
		return ButtonDanger
	default:
		return Button
	}
}

func (s *buttonsSection) Update(tea.Msg, string) (string, tea.Cmd) { return "", nil }

// InputOption configures an input section.
type InputOption func(*inputSection)

// WithSubmit makes Enter on the focused input produce action. When allow is
// non-nil and returns false for the current value, Enter is swallowed.
func WithSubmit(action string, allow func(value string) bool) InputOption {
	return func(s *inputSection) {
		s.submitAction = action
		s.allow = allow
	}
}

type inputSection struct {
	id           string
	label        string
	model        *textinput.Model
	submitAction string
	allow        func(string) bool
}

// Input creates a single-line text input bound to model.
func Input(id string, model *textinput.Model, opts ...InputOption) Section {
	return InputWithLabel(id, "", model, opts...)
}

// InputWithLabel creates a text input with a label line above it.
func InputWithLabel(id, label string, model *textinput.Model, opts ...InputOption) Section {
	s := &inputSection{id: id, label: label, model: model}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *inputSection) Render(contentWidth int, focusID, _ string) RenderedSection {
	s.model.Width = max(1, contentWidth-lipgloss.Width(s.model.Prompt)-1)

	field := s.model.View()
	if focusID == s.id {
		field = InputFocused.Render("▍") + field
	} else {
		field = InputBlurred.Render("▏") + field
	}

	offsetY := 0
	content := field
	if s.label != "" {
		content = Label.Width(contentWidth).Render(s.label) + "\n" + field
		offsetY = lipgloss.Height(content) - 1
	}

	return RenderedSection{
		Content: content,
		Focusables: []FocusableInfo{{
			ID:      s.id,
			OffsetY: offsetY,
			Width:   contentWidth,
			Height:  1,
		}},
	}
}

func (s *inputSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if focusID != s.id {
		return "", nil
	}
	var cmd tea.Cmd
	*s.model, cmd = s.model.Update(msg)
	return "", cmd
}

func (s *inputSection) Submit(focusID string) (string, bool) {
	if focusID != s.id || s.submitAction == "" {
		return "", false
	}
	if s.allow != nil && !s.allow(s.model.Value()) {
		return "", true
	}
	return s.submitAction, true
}

type customSection struct {
	render func(contentWidth int, focusID, hoverID string) RenderedSection
	update func(msg tea.Msg, focusID string) (string, tea.Cmd)
}

// Custom builds a section from plain functions. update may be nil.
func Custom(
	render func(contentWidth int, focusID, hoverID string) RenderedSection,
	update func(msg tea.Msg, focusID string) (string, tea.Cmd),
) Section {
	return &customSection{render: render, update: update}
}

func (s *customSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	return s.render(contentWidth, focusID, hoverID)
}

func (s *customSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if s.update == nil {
		return "", nil
	}
	return s.update(msg, focusID)
}

type whenSection struct {
	cond  func() bool
	inner Section
}

// When renders inner only while cond returns true. A hidden section takes
// no lines.
func When(cond func() bool, inner Section) Section {
	return &whenSection{cond: cond, inner: inner}
}

func (s *whenSection) Render(contentWidth int, focusID, hoverID string) RenderedSection {
	if !s.cond() {
		return RenderedSection{hidden: true}
	}
	return s.inner.Render(contentWidth, focusID, hoverID)
}

func (s *whenSection) Update(msg tea.Msg, focusID string) (string, tea.Cmd) {
	if !s.cond() {
		return "", nil
	}
	return s.inner.Update(msg, focusID)
}

func (s *whenSection) Submit(focusID string) (string, bool) {
	sub, ok := s.inner.(submitter)
	if !ok || !s.cond() {
		return "", false
	}
	return sub.Submit(focusID)
}
