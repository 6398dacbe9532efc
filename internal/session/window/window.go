// Package window implements the per-session jutsu window manager.
//
// The SPA renders each assigned jutsu as a draggable desktop-style window.
// Which windows are open, where they sit, what is minimized to the taskbar,
// and any in-flight drag are session state — held server-side so a reload
// restores the player's arrangement.
package window

// Cascade placement for freshly opened windows.
const (
	cascadeBaseX = 50
	cascadeBaseY = 50
	cascadeStep  = 24
)

// Position is a window's top-left corner in viewport coordinates.
// Coordinates are not clamped; a window may be dragged off-screen.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Window is one entry in the session's window set.
type Window struct {
	Minimized bool     `json:"minimized"`
	Position  Position `json:"position"`
}

// DragCapture is the live drag: which window and the pointer offset
// captured at drag start.
type DragCapture struct {
	JutsuID string   `json:"jutsu_id"`
	Offset  Position `json:"offset"`
}

// State is the full window arrangement for one client session.
//
// A jutsu id absent from Windows is closed. A window is never both open
// and minimized: those are the two values of its single entry.
type State struct {
	Windows        map[string]*Window `json:"windows"`
	MinimizedOrder []string           `json:"minimized_order"`
	Drag           *DragCapture       `json:"drag,omitempty"`
	Touch          bool               `json:"touch"`
}

// NewState returns an empty window arrangement.
func NewState() *State {
	return &State{
		Windows:        map[string]*Window{},
		MinimizedOrder: []string{},
	}
}

// openCount reports how many windows are currently open (not minimized).
func (state *State) openCount() int {
	count := 0
	for _, window := range state.Windows {
		if !window.Minimized {
			count++
		}
	}
	return count
}

// Open shows the jutsu's window.
//
// An already-open window is untouched (idempotent). A minimized window is
// restored at its remembered position. A fresh window is placed on the
// cascade diagonal so stacked opens stay individually grabbable.
func (state *State) Open(jutsuID string) {
	if window, ok := state.Windows[jutsuID]; ok {
		if window.Minimized {
			window.Minimized = false
			state.removeMinimized(jutsuID)
		}
		return
	}

	offset := state.openCount() * cascadeStep
	state.Windows[jutsuID] = &Window{
		Position: Position{X: cascadeBaseX + offset, Y: cascadeBaseY + offset},
	}
}

// Minimize sends an open window to the taskbar.
//
// Repeated minimizes re-rank the id to most-recently-minimized without
// duplicating it. Unknown ids are ignored.
func (state *State) Minimize(jutsuID string) {
	window, ok := state.Windows[jutsuID]
	if !ok {
		return
	}

	window.Minimized = true
	state.removeMinimized(jutsuID)
	state.MinimizedOrder = append(state.MinimizedOrder, jutsuID)

	if state.Drag != nil && state.Drag.JutsuID == jutsuID {
		state.Drag = nil
	}
}

// Close removes the window entirely, open or minimized.
func (state *State) Close(jutsuID string) {
	delete(state.Windows, jutsuID)
	state.removeMinimized(jutsuID)

	if state.Drag != nil && state.Drag.JutsuID == jutsuID {
		state.Drag = nil
	}
}

// CloseMinimized dismisses a taskbar entry without restoring it first.
// Open windows are untouched.
func (state *State) CloseMinimized(jutsuID string) {
	window, ok := state.Windows[jutsuID]
	if !ok || !window.Minimized {
		return
	}
	state.Close(jutsuID)
}

// StartDrag captures the pointer offset against the window's origin.
//
// Touch sessions never drag (the window is full-screen there), so the call
// is a silent no-op. Only one drag may be live at a time; a second start is
// rejected. Reports whether a drag was actually captured.
func (state *State) StartDrag(jutsuID string, pointer Position) (bool, error) {
	if state.Touch {
		return false, nil
	}
	if state.Drag != nil {
		return false, ErrDragInProgress
	}

	window, ok := state.Windows[jutsuID]
	if !ok || window.Minimized {
		return false, ErrWindowNotOpen
	}

	state.Drag = &DragCapture{
		JutsuID: jutsuID,
		Offset: Position{
			X: pointer.X - window.Position.X,
			Y: pointer.Y - window.Position.Y,
		},
	}
	return true, nil
}

// MoveDrag repositions the dragged window to pointer minus the captured
// offset. Without a live drag it is a no-op.
func (state *State) MoveDrag(pointer Position) {
	if state.Drag == nil {
		return
	}

	window, ok := state.Windows[state.Drag.JutsuID]
	if !ok {
		state.Drag = nil
		return
	}

	window.Position = Position{
		X: pointer.X - state.Drag.Offset.X,
		Y: pointer.Y - state.Drag.Offset.Y,
	}
}

// EndDrag releases the capture. The window stays where it was last moved.
func (state *State) EndDrag() {
	state.Drag = nil
}

func (state *State) removeMinimized(jutsuID string) {
	for i, id := range state.MinimizedOrder {
		if id == jutsuID {
			state.MinimizedOrder = append(state.MinimizedOrder[:i], state.MinimizedOrder[i+1:]...)
			return
		}
	}
}
