// Package mouse maps terminal mouse events onto named screen regions.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a screen rectangle. W and H are exclusive bounds.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named rectangle with optional payload.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds the regions registered during the last render.
// Regions added later take priority when they overlap.
type HitMap struct {
	regions []Region
}

// NewHitMap returns an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.regions = append(hm.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Regions returns the registered regions in insertion order.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// Clear drops all regions.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// ActionType classifies a mouse event.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
	ActionScrollUp
	ActionScrollDown
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionHover:
		return "hover"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	default:
		return "none"
	}
}

// Action is the result of classifying a mouse event against the hit map.
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// Handler owns a hit map and turns raw mouse messages into actions.
type Handler struct {
	HitMap *HitMap
}

// NewHandler returns a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// Clear resets the hit map before a new render.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// HandleMouse classifies msg. Only left-button presses count as clicks.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	action := Action{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			action.Type = ActionClick
			action.Region = h.HitMap.Test(msg.X, msg.Y)
		case tea.MouseButtonWheelUp:
			action.Type = ActionScrollUp
			action.Region = h.HitMap.Test(msg.X, msg.Y)
		case tea.MouseButtonWheelDown:
			action.Type = ActionScrollDown
			action.Region = h.HitMap.Test(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		action.Type = ActionHover
		action.Region = h.HitMap.Test(msg.X, msg.Y)
	}

	return action
}
