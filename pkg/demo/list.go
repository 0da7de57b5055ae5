package demo

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/sahilm/fuzzy"

	"github.com/marcus/popup/internal/store"
	"github.com/marcus/popup/pkg/popup"
)

// Items is the storage the list edits.
type Items interface {
	List() ([]store.Item, error)
	Add(name string) (store.Item, error)
	Rename(id int64, name string) error
	Delete(id int64) error
	Clear() (int64, error)
}

const aboutText = `A list of items kept in SQLite. Every change goes
through a dialog.

- **a** add an item
- **e** rename the selected item
- **d** delete the selected item
- **D** clear the list
- **/** fuzzy filter
- **q** quit`

// List is the demo's main component. It only knows popup.Service, so it
// works the same with a Provider, a Messenger or the no-op default.
type List struct {
	popup  popup.Service
	items  Items
	logger *slog.Logger
	now    func() time.Time

	all     []store.Item
	visible []store.Item
	cursor  int
	filter  string
	quit    bool
}

// NewList loads items and returns a list raising dialogs through svc.
func NewList(svc popup.Service, items Items, logger *slog.Logger) (*List, error) {
	if svc == nil {
		svc = popup.Discard
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	l := &List{popup: svc, items: items, logger: logger, now: time.Now}
	if err := l.reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// QuitRequested reports whether the user confirmed quitting.
func (l *List) QuitRequested() bool {
	return l.quit
}

// Selected returns the item under the cursor.
func (l *List) Selected() (store.Item, bool) {
	if l.cursor < 0 || l.cursor >= len(l.visible) {
		return store.Item{}, false
	}
	return l.visible[l.cursor], true
}

// Visible returns the items currently shown, in display order.
func (l *List) Visible() []store.Item {
	return l.visible
}

// Filter returns the active filter query.
func (l *List) Filter() string {
	return l.filter
}

// HandleKey processes a key press while no dialog is open.
func (l *List) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(msg, keys.Down):
		if l.cursor < len(l.visible)-1 {
			l.cursor++
		}
	case key.Matches(msg, keys.Add):
		l.add()
	case key.Matches(msg, keys.Rename):
		l.rename()
	case key.Matches(msg, keys.Delete):
		l.remove()
	case key.Matches(msg, keys.Clear):
		l.clearAll()
	case key.Matches(msg, keys.Filter):
		l.promptFilter()
	case key.Matches(msg, keys.About):
		l.popup.Alert(popup.Alert{Title: "About", Text: aboutText, Icon: "info"})
	case key.Matches(msg, keys.Quit):
		l.popup.Confirm(popup.Confirm{
			Title:     "Quit?",
			Text:      "Leave the demo.",
			Icon:      "door-open",
			OnConfirm: func() { l.quit = true },
		})
	}
	return nil
}

func (l *List) add() {
	l.popup.Prompt(popup.Prompt{
		Title: "New item",
		Text:  "Name",
		Icon:  "plus",
		OnConfirm: func(name string) {
			it, err := l.items.Add(name)
			if err != nil {
				l.fail("add item", err)
				return
			}
			l.logger.Info("item added", "id", it.ID, "name", it.Name)
			l.refresh()
			l.selectID(it.ID)
		},
	})
}

func (l *List) rename() {
	it, ok := l.Selected()
	if !ok {
		return
	}
	l.popup.Prompt(popup.Prompt{
		Title:        "Rename item",
		Text:         "Name",
		Icon:         "pen",
		DefaultValue: it.Name,
		OnConfirm: func(name string) {
			if err := l.items.Rename(it.ID, name); err != nil {
				l.fail("rename item", err)
				return
			}
			l.logger.Info("item renamed", "id", it.ID, "name", name)
			l.refresh()
			l.selectID(it.ID)
		},
	})
}

func (l *List) remove() {
	it, ok := l.Selected()
	if !ok {
		return
	}
	l.popup.Remove(popup.Remove{
		Title: "Delete item?",
		Text:  fmt.Sprintf("%q will be removed permanently.", it.Name),
		Icon:  "trash",
		OnConfirm: func() {
			if err := l.items.Delete(it.ID); err != nil {
				l.fail("delete item", err)
				return
			}
			l.logger.Info("item deleted", "id", it.ID)
			l.refresh()
		},
	})
}

func (l *List) clearAll() {
	if len(l.all) == 0 {
		l.popup.Alert(popup.Alert{Title: "Nothing to clear", Text: "The list is already empty.", Icon: "info"})
		return
	}
	l.popup.Confirm(popup.Confirm{
		Title: "Clear all items?",
		Text:  fmt.Sprintf("%s will be removed.", plural(len(l.all), "item")),
		Icon:  "warning",
		OnConfirm: func() {
			n, err := l.items.Clear()
			if err != nil {
				l.fail("clear items", err)
				return
			}
			l.logger.Info("items cleared", "count", n)
			l.refresh()
		},
	})
}

func (l *List) promptFilter() {
	l.popup.Prompt(popup.Prompt{
		Title:        "Filter",
		Text:         "Fuzzy match on name. Confirm empty to clear.",
		Icon:         "search",
		DefaultValue: l.filter,
		OnConfirm: func(q string) {
			l.filter = strings.TrimSpace(q)
			l.applyFilter()
		},
	})
}

// fail reports a storage error in an alert.
func (l *List) fail(op string, err error) {
	l.logger.Error(op, "err", err)
	text := err.Error()
	switch {
	case errors.Is(err, store.ErrEmptyName):
		text = "The name cannot be empty."
	case errors.Is(err, store.ErrNotFound):
		text = "That item no longer exists."
		if rerr := l.reload(); rerr != nil {
			text += " Reloading the list failed: " + rerr.Error()
		}
	}
	l.popup.Alert(popup.Alert{Title: "Could not " + op, Text: text, Icon: "warning"})
}

// refresh reloads the list after an edit and reports a failed load.
func (l *List) refresh() {
	if err := l.reload(); err != nil {
		l.fail("load items", err)
	}
}

func (l *List) reload() error {
	all, err := l.items.List()
	if err != nil {
		l.logger.Error("list items", "err", err)
		return err
	}
	l.all = all
	l.applyFilter()
	return nil
}

func (l *List) applyFilter() {
	if l.filter == "" {
		l.visible = l.all
	} else {
		names := make([]string, len(l.all))
		for i, it := range l.all {
			names[i] = it.Name
		}
		matches := fuzzy.Find(l.filter, names)
		l.visible = make([]store.Item, 0, len(matches))
		for _, m := range matches {
			l.visible = append(l.visible, l.all[m.Index])
		}
	}
	l.cursor = min(l.cursor, max(0, len(l.visible)-1))
}

func (l *List) selectID(id int64) {
	for i, it := range l.visible {
		if it.ID == id {
			l.cursor = i
			return
		}
	}
}

// View renders the list into width x height cells.
func (l *List) View(width, height int) string {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	var sb strings.Builder
	header := headerStyle.Render("popup demo")
	if l.filter != "" {
		header += "  " + filterStyle.Render("/"+l.filter)
	}
	sb.WriteString(header)
	sb.WriteString("\n\n")

	rows := max(1, height-4)
	start := 0
	if l.cursor >= rows {
		start = l.cursor - rows + 1
	}

	switch {
	case len(l.all) == 0:
		sb.WriteString(emptyStyle.Render("  no items, press a to add one"))
		sb.WriteString("\n")
	case len(l.visible) == 0:
		sb.WriteString(emptyStyle.Render("  nothing matches the filter"))
		sb.WriteString("\n")
	}

	now := l.now()
	for i := start; i < len(l.visible) && i < start+rows; i++ {
		sb.WriteString(l.row(l.visible[i], i == l.cursor, width, now))
		sb.WriteString("\n")
	}

	// pad so the help line sits at the bottom
	used := strings.Count(sb.String(), "\n")
	for ; used < height-1; used++ {
		sb.WriteString("\n")
	}
	sb.WriteString(helpLine(width))

	return sb.String()
}

func (l *List) row(it store.Item, selected bool, width int, now time.Time) string {
	age := humanize.RelTime(it.CreatedAt, now, "ago", "from now")
	nameWidth := max(1, width-4-len(age)-2)
	name := ansi.Truncate(it.Name, nameWidth, "…")

	if selected {
		return cursorStyle.Render("> ") + itemSelected.Render(name) + "  " + ageStyle.Render(age)
	}
	return "  " + itemNormal.Render(name) + "  " + ageStyle.Render(age)
}

func helpLine(width int) string {
	var parts []string
	for _, b := range keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(ansi.Truncate(strings.Join(parts, " • "), width, "…"))
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return humanize.Comma(int64(n)) + " " + word + "s"
}
