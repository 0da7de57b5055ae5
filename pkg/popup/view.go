package popup

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/marcus/popup/pkg/popup/modal"
)

// View returns background with the dialog overlaid, or background alone
// when no dialog is open.
func (p *Provider) View(background string) string {
	if !p.state.Open || p.dialog == nil {
		return background
	}
	box := p.dialog.Render(p.width, p.height, p.mouse)
	return modal.Overlay(background, box, p.width, p.height)
}

// buildDialog lays out the dialog for the current state:
//
//	alert, none  body, Close
//	confirm      body, Confirm / Cancel
//	remove       body, Remove (destructive) / Cancel
//	prompt       input labelled by the text, Confirm / Cancel
func (p *Provider) buildDialog() *modal.Modal {
	s := p.state

	opts := []modal.Option{
		modal.WithWidth(p.dialogWidth),
		modal.WithHints(p.hints),
		modal.WithIcon(p.icons.Glyph(s.Icon)),
	}
	switch s.Kind {
	case KindRemove:
		opts = append(opts, modal.WithVariant(modal.VariantDanger))
	case KindAlert, KindNone:
		opts = append(opts, modal.WithVariant(modal.VariantInfo))
	}

	m := modal.New(s.Title, opts...)

	switch s.Kind {
	case KindPrompt:
		m.AddSection(modal.InputWithLabel(inputID, s.Text, &p.input,
			modal.WithSubmit(actionConfirm, func(v string) bool { return v != "" }),
		))
		m.AddSection(modal.Spacer())
		m.AddSection(modal.Buttons(
			modal.Btn(" Confirm ", actionConfirm),
			modal.Btn(" Cancel ", actionCancel),
		))
		m.SetFocus(inputID)

	case KindConfirm:
		m.AddSection(p.bodySection())
		m.AddSection(modal.Spacer())
		m.AddSection(modal.Buttons(
			modal.Btn(" Confirm ", actionConfirm),
			modal.Btn(" Cancel ", actionCancel),
		))
		m.SetFocus(actionConfirm)

	case KindRemove:
		m.AddSection(p.bodySection())
		m.AddSection(modal.Spacer())
		m.AddSection(modal.Buttons(
			modal.Btn(" Remove ", actionConfirm, modal.BtnDanger()),
			modal.Btn(" Cancel ", actionCancel),
		))
		m.SetFocus(actionCancel)

	default:
		m.AddSection(p.bodySection())
		m.AddSection(modal.Spacer())
		m.AddSection(modal.Buttons(modal.Btn(" Close ", actionCancel)))
		m.SetFocus(actionCancel)
	}

	return m
}

func (p *Provider) bodySection() modal.Section {
	hasText := func() bool { return p.state.Text != "" }
	if p.body == "" {
		return modal.When(hasText, modal.Text(p.state.Text))
	}
	body := p.body
	return modal.When(hasText, modal.Custom(func(int, string, string) modal.RenderedSection {
		return modal.RenderedSection{Content: body}
	}, nil))
}

// renderBody pre-renders markdown body text once per request. It returns ""
// when markdown is off or rendering fails, and the plain text path is used.
func (p *Provider) renderBody(text string) string {
	if !p.markdown || text == "" {
		return ""
	}

	// frame border and padding take six columns
	width := max(10, p.dialogWidth-6)
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		p.logger.Debug("markdown renderer", "err", err)
		return ""
	}

	rendered, err := renderer.Render(text)
	if err != nil {
		p.logger.Debug("markdown render", "err", err)
		return ""
	}

	// glamour pads with blank lines and margins
	return strings.Trim(rendered, "\n\r\t ")
}
