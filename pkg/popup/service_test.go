package popup

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// recorder is a Service that records requests and resolves them on demand.
type recorder struct {
	reqs []Request
}

func (r *recorder) Alert(a Alert)     { r.reqs = append(r.reqs, a) }
func (r *recorder) Confirm(c Confirm) { r.reqs = append(r.reqs, c) }
func (r *recorder) Prompt(p Prompt)   { r.reqs = append(r.reqs, p) }
func (r *recorder) Remove(d Remove)   { r.reqs = append(r.reqs, d) }

// autoService resolves every request immediately, confirming when confirm
// is set.
type autoService struct {
	confirm bool
	value   string
}

func (s autoService) Alert(a Alert) {
	if a.OnAbort != nil {
		a.OnAbort()
	}
}

func (s autoService) Confirm(c Confirm) { s.resolve(c.OnConfirm, c.OnAbort) }
func (s autoService) Remove(r Remove)   { s.resolve(r.OnConfirm, r.OnAbort) }

func (s autoService) Prompt(p Prompt) {
	if s.confirm {
		p.OnConfirm(s.value)
		return
	}
	p.OnAbort()
}

func (s autoService) resolve(onConfirm, onAbort func()) {
	if s.confirm {
		onConfirm()
		return
	}
	onAbort()
}

func TestFromContextDefaultsToDiscard(t *testing.T) {
	svc := FromContext(context.Background())
	if _, ok := svc.(Nop); !ok {
		t.Fatalf("FromContext = %T, want Nop", svc)
	}

	// Every operation is safe on the default.
	svc.Alert(Alert{Title: "x", OnAbort: func() { t.Error("nop ran a callback") }})
	svc.Confirm(Confirm{Title: "x"})
	svc.Prompt(Prompt{Title: "x"})
	svc.Remove(Remove{Title: "x"})
}

func TestNewContextRoundTrip(t *testing.T) {
	rec := &recorder{}
	ctx := NewContext(context.Background(), rec)
	if got := FromContext(ctx); got != Service(rec) {
		t.Fatalf("FromContext = %v, want recorder", got)
	}

	if got := FromContext(NewContext(context.Background(), nil)); got != Discard {
		t.Errorf("nil service in context = %v, want Discard", got)
	}
}

func TestShowDispatchesByKind(t *testing.T) {
	rec := &recorder{}
	reqs := []Request{
		Alert{Title: "a"},
		Confirm{Title: "c"},
		Prompt{Title: "p"},
		Remove{Title: "r"},
	}
	for _, r := range reqs {
		Show(rec, r)
	}

	if len(rec.reqs) != len(reqs) {
		t.Fatalf("recorded %d requests, want %d", len(rec.reqs), len(reqs))
	}
	for i, r := range rec.reqs {
		if r.Kind() != reqs[i].Kind() {
			t.Errorf("request %d kind = %v, want %v", i, r.Kind(), reqs[i].Kind())
		}
	}
}

func TestAwait(t *testing.T) {
	tests := []struct {
		name string
		svc  autoService
		req  Request
		want Result
	}{
		{"alert", autoService{}, Alert{Title: "x"}, Result{Kind: KindAlert}},
		{"confirm yes", autoService{confirm: true}, Confirm{Title: "x"}, Result{Kind: KindConfirm, Confirmed: true}},
		{"confirm no", autoService{}, Confirm{Title: "x"}, Result{Kind: KindConfirm}},
		{"remove yes", autoService{confirm: true}, Remove{Title: "x"}, Result{Kind: KindRemove, Confirmed: true}},
		{"prompt value", autoService{confirm: true, value: "Ada"}, Prompt{Title: "x"}, Result{Kind: KindPrompt, Confirmed: true, Value: "Ada"}},
		{"prompt abort", autoService{}, Prompt{Title: "x"}, Result{Kind: KindPrompt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Await(context.Background(), tt.svc, tt.req)
			if err != nil {
				t.Fatalf("Await: %v", err)
			}
			if got != tt.want {
				t.Errorf("Await = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAwaitKeepsCallerCallbacks(t *testing.T) {
	var seen string
	_, err := Await(context.Background(), autoService{confirm: true, value: "v"}, Prompt{
		OnConfirm: func(v string) { seen = v },
	})
	if err != nil {
		t.Fatalf("Await: %v", err)
	}
	if seen != "v" {
		t.Errorf("caller OnConfirm saw %q, want v", seen)
	}
}

func TestAwaitWithoutProvider(t *testing.T) {
	for _, svc := range []Service{nil, Nop{}, Discard} {
		if _, err := Await(context.Background(), svc, Alert{}); !errors.Is(err, ErrNoProvider) {
			t.Errorf("Await(%T) err = %v, want ErrNoProvider", svc, err)
		}
	}
}

func TestAwaitHonoursContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// recorder never resolves anything
	_, err := Await(ctx, &recorder{}, Confirm{Title: "x"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("err = %v, want deadline exceeded", err)
	}
}

type fakeSender struct {
	msgs []tea.Msg
}

func (f *fakeSender) Send(msg tea.Msg) { f.msgs = append(f.msgs, msg) }

func TestMessengerSendsRequests(t *testing.T) {
	s := &fakeSender{}
	m := NewMessenger(s)

	m.Alert(Alert{Title: "a"})
	m.Remove(Remove{Title: "r"})

	if len(s.msgs) != 2 {
		t.Fatalf("sent %d messages, want 2", len(s.msgs))
	}
	rm, ok := s.msgs[1].(RequestMsg)
	if !ok {
		t.Fatalf("msg = %T, want RequestMsg", s.msgs[1])
	}
	if rm.Request.Kind() != KindRemove {
		t.Errorf("kind = %v, want remove", rm.Request.Kind())
	}

	var nilMessenger *Messenger
	nilMessenger.Confirm(Confirm{}) // must not panic
}

func TestMessengerFeedsProvider(t *testing.T) {
	s := &fakeSender{}
	p, _ := newTestProvider()
	NewMessenger(s).Prompt(Prompt{Title: "Name", DefaultValue: "Ada"})

	for _, msg := range s.msgs {
		p.Update(msg)
	}
	if !p.Open() || p.State().Kind != KindPrompt || p.Value() != "Ada" {
		t.Errorf("provider state = %+v value = %q", p.State(), p.Value())
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindNone:    "none",
		KindAlert:   "alert",
		KindConfirm: "confirm",
		KindPrompt:  "prompt",
		KindRemove:  "remove",
		Kind(42):    "none",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestEmojiIcons(t *testing.T) {
	icons := NewEmojiIcons()
	tests := []struct {
		name string
		want string
	}{
		{"", ""},
		{"trash", "🗑️"},
		{":bell:", "🔔"},
		{"no-such-icon-anywhere", fallbackGlyph},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := icons.Glyph(tt.name)
			if tt.want == fallbackGlyph || tt.want == "" {
				if got != tt.want {
					t.Errorf("Glyph(%q) = %q, want %q", tt.name, got, tt.want)
				}
				return
			}
			if got == fallbackGlyph || got == "" {
				t.Errorf("Glyph(%q) = %q, want an emoji", tt.name, got)
			}
		})
	}
}

func TestPlainIcons(t *testing.T) {
	if got := PlainIcons.Glyph("user"); got != "[user]" {
		t.Errorf("Glyph = %q, want [user]", got)
	}
	if got := PlainIcons.Glyph(""); got != "" {
		t.Errorf("Glyph(\"\") = %q, want empty", got)
	}
}

func TestDismissRunsAbort(t *testing.T) {
	calls := 0
	Dismiss(Remove{OnConfirm: func() { t.Error("OnConfirm ran") }, OnAbort: func() { calls++ }})
	Dismiss(Prompt{}) // nil OnAbort
	Dismiss(nil)
	if calls != 1 {
		t.Errorf("OnAbort calls = %d, want 1", calls)
	}
}
