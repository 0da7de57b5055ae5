package demo

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/popup/internal/store"
	"github.com/marcus/popup/pkg/popup"
)

// fakePopup records the last request so tests can resolve it by hand.
type fakePopup struct {
	last  popup.Request
	count int
}

func (f *fakePopup) Alert(r popup.Alert)     { f.last = r; f.count++ }
func (f *fakePopup) Confirm(r popup.Confirm) { f.last = r; f.count++ }
func (f *fakePopup) Prompt(r popup.Prompt)   { f.last = r; f.count++ }
func (f *fakePopup) Remove(r popup.Remove)   { f.last = r; f.count++ }

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "items.db"))
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestList(t *testing.T, names ...string) (*List, *fakePopup) {
	t.Helper()
	s := openStore(t)
	for _, n := range names {
		if _, err := s.Add(n); err != nil {
			t.Fatalf("setup: Add(%q) failed: %v", n, err)
		}
	}
	fp := &fakePopup{}
	l, err := NewList(fp, s, nil)
	if err != nil {
		t.Fatalf("NewList failed: %v", err)
	}
	return l, fp
}

func press(l *List, k string) {
	l.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

func names(items []store.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestListAddViaPrompt(t *testing.T) {
	l, fp := newTestList(t)

	press(l, "a")
	pr, ok := fp.last.(popup.Prompt)
	if !ok {
		t.Fatalf("last request = %T, want Prompt", fp.last)
	}
	if pr.DefaultValue != "" {
		t.Errorf("DefaultValue = %q, want empty", pr.DefaultValue)
	}

	pr.OnConfirm("milk")
	if got := names(l.Visible()); len(got) != 1 || got[0] != "milk" {
		t.Errorf("visible = %v, want [milk]", got)
	}
}

func TestListAddEmptyNameAlerts(t *testing.T) {
	l, fp := newTestList(t)
	press(l, "a")
	fp.last.(popup.Prompt).OnConfirm("   ")

	al, ok := fp.last.(popup.Alert)
	if !ok {
		t.Fatalf("last request = %T, want Alert", fp.last)
	}
	if al.Title != "Could not add item" {
		t.Errorf("Title = %q", al.Title)
	}
	if len(l.Visible()) != 0 {
		t.Errorf("visible = %v, want none", names(l.Visible()))
	}
}

func TestListRenameSeedsCurrentName(t *testing.T) {
	l, fp := newTestList(t, "milk", "eggs")
	l.HandleKey(tea.KeyMsg{Type: tea.KeyDown})

	press(l, "e")
	pr := fp.last.(popup.Prompt)
	if pr.DefaultValue != "eggs" {
		t.Fatalf("DefaultValue = %q, want eggs", pr.DefaultValue)
	}

	pr.OnConfirm("bread")
	if got := names(l.Visible()); got[1] != "bread" {
		t.Errorf("visible = %v, want bread second", got)
	}
	if it, _ := l.Selected(); it.Name != "bread" {
		t.Errorf("selected = %q, want bread", it.Name)
	}
}

func TestListDeleteUsesRemove(t *testing.T) {
	l, fp := newTestList(t, "milk", "eggs")

	press(l, "d")
	rm, ok := fp.last.(popup.Remove)
	if !ok {
		t.Fatalf("last request = %T, want Remove", fp.last)
	}
	if !strings.Contains(rm.Text, `"milk"`) {
		t.Errorf("Text = %q, want item name", rm.Text)
	}

	// aborting leaves the list alone
	if rm.OnAbort != nil {
		rm.OnAbort()
	}
	if len(l.Visible()) != 2 {
		t.Fatalf("visible after abort = %v", names(l.Visible()))
	}

	rm.OnConfirm()
	if got := names(l.Visible()); len(got) != 1 || got[0] != "eggs" {
		t.Errorf("visible = %v, want [eggs]", got)
	}
}

func TestListClearAll(t *testing.T) {
	l, fp := newTestList(t, "a", "b", "c")

	press(l, "D")
	c, ok := fp.last.(popup.Confirm)
	if !ok {
		t.Fatalf("last request = %T, want Confirm", fp.last)
	}
	if !strings.Contains(c.Text, "3 items") {
		t.Errorf("Text = %q, want count", c.Text)
	}
	c.OnConfirm()
	if len(l.Visible()) != 0 {
		t.Errorf("visible = %v, want none", names(l.Visible()))
	}

	press(l, "D")
	if al, ok := fp.last.(popup.Alert); !ok || al.Title != "Nothing to clear" {
		t.Errorf("clear on empty list raised %#v", fp.last)
	}
}

func TestListFuzzyFilter(t *testing.T) {
	l, fp := newTestList(t, "apple pie", "banana", "pineapple")

	press(l, "/")
	fp.last.(popup.Prompt).OnConfirm("apl")
	got := names(l.Visible())
	if len(got) != 2 {
		t.Fatalf("visible = %v, want the two apple items", got)
	}
	for _, n := range got {
		if !strings.Contains(n, "apple") {
			t.Errorf("unexpected match %q", n)
		}
	}

	press(l, "/")
	pr := fp.last.(popup.Prompt)
	if pr.DefaultValue != "apl" {
		t.Errorf("filter prompt seeded with %q, want apl", pr.DefaultValue)
	}
	pr.OnConfirm("")
	if len(l.Visible()) != 3 {
		t.Errorf("empty filter should show everything, got %v", names(l.Visible()))
	}
}

func TestListQuitNeedsConfirmation(t *testing.T) {
	l, fp := newTestList(t)

	press(l, "q")
	c := fp.last.(popup.Confirm)
	if l.QuitRequested() {
		t.Fatal("quit before confirmation")
	}
	c.OnConfirm()
	if !l.QuitRequested() {
		t.Error("quit not requested after confirmation")
	}
}

func TestListAboutAlert(t *testing.T) {
	l, fp := newTestList(t)
	press(l, "?")
	if al, ok := fp.last.(popup.Alert); !ok || al.Title != "About" {
		t.Errorf("last request = %#v, want About alert", fp.last)
	}
}

func TestListCursorBounds(t *testing.T) {
	l, _ := newTestList(t, "a", "b")

	l.HandleKey(tea.KeyMsg{Type: tea.KeyUp})
	if it, _ := l.Selected(); it.Name != "a" {
		t.Errorf("selected = %q, want a", it.Name)
	}
	press(l, "j")
	press(l, "j")
	if it, _ := l.Selected(); it.Name != "b" {
		t.Errorf("selected = %q, want b", it.Name)
	}
}

func TestListKeysWithoutSelection(t *testing.T) {
	l, fp := newTestList(t)
	press(l, "e")
	press(l, "d")
	if fp.count != 0 {
		t.Errorf("raised %d dialogs on an empty list, want 0", fp.count)
	}
}

func TestListWithoutPopupService(t *testing.T) {
	l, err := NewList(nil, openStore(t), nil)
	if err != nil {
		t.Fatalf("NewList failed: %v", err)
	}
	press(l, "a") // dropped by the no-op service
	press(l, "q")
	if l.QuitRequested() {
		t.Error("no-op service should never confirm")
	}
}

func TestListViewShowsAge(t *testing.T) {
	l, _ := newTestList(t, "milk")
	l.now = func() time.Time { return l.all[0].CreatedAt.Add(3 * time.Hour) }

	view := l.View(60, 10)
	for _, want := range []string{"popup demo", "milk", "3 hours ago", "a add"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if h := strings.Count(view, "\n") + 1; h != 10 {
		t.Errorf("view height = %d, want 10", h)
	}
}

func TestListViewEmpty(t *testing.T) {
	l, _ := newTestList(t)
	if view := l.View(60, 10); !strings.Contains(view, "no items") {
		t.Errorf("empty view:\n%s", view)
	}
}

// brokenList lets writes through but fails every read once armed.
type brokenList struct {
	*store.Store
	fail bool
}

func (b *brokenList) List() ([]store.Item, error) {
	if b.fail {
		return nil, errors.New("disk I/O error")
	}
	return b.Store.List()
}

func TestListReloadFailureAlerts(t *testing.T) {
	items := &brokenList{Store: openStore(t)}
	fp := &fakePopup{}
	l, err := NewList(fp, items, nil)
	if err != nil {
		t.Fatalf("NewList failed: %v", err)
	}

	press(l, "a")
	items.fail = true
	fp.last.(popup.Prompt).OnConfirm("milk")

	al, ok := fp.last.(popup.Alert)
	if !ok {
		t.Fatalf("last request = %T, want Alert", fp.last)
	}
	if al.Title != "Could not load items" || !strings.Contains(al.Text, "disk I/O error") {
		t.Errorf("alert = %q / %q", al.Title, al.Text)
	}
}
