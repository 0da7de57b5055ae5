// Package modal is the dialog widget behind the popup provider: a framed,
// declarative modal built from sections, with keyboard focus cycling and
// mouse hit regions registered during Render.
//
// # Quick Start
//
//	m := modal.New("Delete item?", modal.WithVariant(modal.VariantDanger)).
//	    AddSection(modal.Text("This cannot be undone")).
//	    AddSection(modal.Spacer()).
//	    AddSection(modal.Buttons(
//	        modal.Btn(" Remove ", "confirm", modal.BtnDanger()),
//	        modal.Btn(" Cancel ", "cancel"),
//	    ))
//
//	// In View():
//	box := m.Render(screenW, screenH, mouseHandler)
//	return modal.Overlay(background, box, screenW, screenH)
//
//	// In Update():
//	switch action, _ := m.HandleKey(keyMsg); action {
//	case "confirm":
//	    ...
//	case "cancel", modal.ActionDismiss:
//	    ...
//	}
//
// # Sections
//
//   - Text(s) wrapped static text
//   - Spacer() blank line
//   - Buttons(btns ...ButtonDef) button row; Btn(label, id, BtnDanger())
//   - Input / InputWithLabel(id, label, *textinput.Model, WithSubmit(...))
//   - When(cond, section) conditional section
//   - Custom(render, update) anything else
//
// Esc returns ActionDismiss, as does a click on the backdrop unless
// WithCloseOnBackdropClick(false) is set.
package modal
