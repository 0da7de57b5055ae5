package popup

// Kind identifies which dialog layout is showing.
type Kind int

const (
	KindNone Kind = iota
	KindAlert
	KindConfirm
	KindPrompt
	KindRemove
)

func (k Kind) String() string {
	switch k {
	case KindAlert:
		return "alert"
	case KindConfirm:
		return "confirm"
	case KindPrompt:
		return "prompt"
	case KindRemove:
		return "remove"
	default:
		return "none"
	}
}

// Request is one of Alert, Confirm, Prompt or Remove.
type Request interface {
	Kind() Kind
	content() content
	abortFunc() func()
}

type content struct {
	title string
	text  string
	icon  string
}

// Alert shows a message with a single Close action.
type Alert struct {
	Title string
	Text  string
	Icon  string
	// OnAbort runs after the dialog is dismissed. May be nil.
	OnAbort func()
}

// Confirm shows a message with Confirm and Cancel actions.
type Confirm struct {
	Title     string
	Text      string
	Icon      string
	OnConfirm func()
	OnAbort   func()
}

// Prompt collects one line of text. Text labels the input field.
type Prompt struct {
	Title        string
	Text         string
	Icon         string
	DefaultValue string
	OnConfirm    func(value string)
	OnAbort      func()
}

// Remove is a Confirm styled for destructive actions.
type Remove struct {
	Title     string
	Text      string
	Icon      string
	OnConfirm func()
	OnAbort   func()
}

func (Alert) Kind() Kind   { return KindAlert }
func (Confirm) Kind() Kind { return KindConfirm }
func (Prompt) Kind() Kind  { return KindPrompt }
func (Remove) Kind() Kind  { return KindRemove }

func (r Alert) content() content   { return content{r.Title, r.Text, r.Icon} }
func (r Confirm) content() content { return content{r.Title, r.Text, r.Icon} }
func (r Prompt) content() content  { return content{r.Title, r.Text, r.Icon} }
func (r Remove) content() content  { return content{r.Title, r.Text, r.Icon} }

func (r Alert) abortFunc() func()   { return r.OnAbort }
func (r Confirm) abortFunc() func() { return r.OnAbort }
func (r Prompt) abortFunc() func()  { return r.OnAbort }
func (r Remove) abortFunc() func()  { return r.OnAbort }

// State is a snapshot of the provider's current dialog. Title, Text and
// Icon survive Open going false until the next request replaces them.
type State struct {
	Open  bool
	Kind  Kind
	Title string
	Text  string
	Icon  string
}

// Result reports how a request was resolved.
type Result struct {
	Kind      Kind
	Confirmed bool
	// Value holds the entered text for confirmed prompts.
	Value string
}
