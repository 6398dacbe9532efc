// Copyright (c) 2026 ShinobiDex. All rights reserved.
// Author: dev@shinobidex.gg

package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinobidex/fichas-api/internal/session/window"
)

/*
TestState_Open_Cascade places fresh windows on the diagonal by open count.
*/
func TestState_Open_Cascade(t *testing.T) {
	state := window.NewState()

	state.Open("a")
	state.Open("b")
	state.Open("c")

	assert.Equal(t, window.Position{X: 50, Y: 50}, state.Windows["a"].Position)
	assert.Equal(t, window.Position{X: 74, Y: 74}, state.Windows["b"].Position)
	assert.Equal(t, window.Position{X: 98, Y: 98}, state.Windows["c"].Position)
}

/*
TestState_Open_Idempotent keeps the existing entry on a repeat open.
*/
func TestState_Open_Idempotent(t *testing.T) {
	state := window.NewState()

	state.Open("a")
	state.Open("b")
	moved := window.Position{X: 300, Y: 120}
	state.Windows["a"].Position = moved

	state.Open("a")

	assert.Len(t, state.Windows, 2)
	assert.Equal(t, moved, state.Windows["a"].Position)
}

/*
TestState_Minimize_Restore round-trips a window through the taskbar and
back, keeping its position.
*/
func TestState_Minimize_Restore(t *testing.T) {
	state := window.NewState()
	state.Open("a")
	state.Windows["a"].Position = window.Position{X: 200, Y: 90}

	state.Minimize("a")
	require.True(t, state.Windows["a"].Minimized)
	assert.Equal(t, []string{"a"}, state.MinimizedOrder)

	// Un-minimize keeps the remembered position, no cascade re-placement.
	state.Open("a")
	assert.False(t, state.Windows["a"].Minimized)
	assert.Equal(t, window.Position{X: 200, Y: 90}, state.Windows["a"].Position)
	assert.Empty(t, state.MinimizedOrder)
}

/*
TestState_Minimize_ReRanks moves a repeated minimize to most-recent
without duplicating the taskbar entry.
*/
func TestState_Minimize_ReRanks(t *testing.T) {
	state := window.NewState()
	state.Open("a")
	state.Open("b")

	state.Minimize("a")
	state.Minimize("b")
	assert.Equal(t, []string{"a", "b"}, state.MinimizedOrder)

	state.Minimize("a")
	assert.Equal(t, []string{"b", "a"}, state.MinimizedOrder)

	// Never simultaneously open and minimized: the single entry is the
	// sole representation.
	assert.True(t, state.Windows["a"].Minimized)
}

/*
TestState_Close removes from either collection and clears a drag on the
closed window.
*/
func TestState_Close(t *testing.T) {
	state := window.NewState()
	state.Open("a")
	state.Open("b")
	state.Minimize("b")

	_, err := state.StartDrag("a", window.Position{X: 60, Y: 60})
	require.NoError(t, err)

	state.Close("a")
	state.Close("b")

	assert.Empty(t, state.Windows)
	assert.Empty(t, state.MinimizedOrder)
	assert.Nil(t, state.Drag)
}

/*
TestState_CloseMinimized only dismisses taskbar entries.
*/
func TestState_CloseMinimized(t *testing.T) {
	state := window.NewState()
	state.Open("a")
	state.Open("b")
	state.Minimize("b")

	state.CloseMinimized("a") // open, untouched
	state.CloseMinimized("b") // minimized, dismissed

	assert.Contains(t, state.Windows, "a")
	assert.NotContains(t, state.Windows, "b")
	assert.Empty(t, state.MinimizedOrder)
}

/*
TestState_Drag covers offset capture, pointer-relative movement without
clamping, and the single-drag rule.
*/
func TestState_Drag(t *testing.T) {
	state := window.NewState()
	state.Open("a") // at (50, 50)
	state.Open("b")

	// Grab the title bar 10px right, 5px down of the window origin.
	started, err := state.StartDrag("a", window.Position{X: 60, Y: 55})
	require.NoError(t, err)
	assert.True(t, started)
	assert.Equal(t, window.Position{X: 10, Y: 5}, state.Drag.Offset)

	// A second concurrent drag is rejected.
	_, err = state.StartDrag("b", window.Position{X: 80, Y: 80})
	assert.ErrorIs(t, err, window.ErrDragInProgress)

	// Window follows pointer minus the captured offset.
	state.MoveDrag(window.Position{X: 500, Y: 300})
	assert.Equal(t, window.Position{X: 490, Y: 295}, state.Windows["a"].Position)

	// No viewport clamping, negatives included.
	state.MoveDrag(window.Position{X: 0, Y: 0})
	assert.Equal(t, window.Position{X: -10, Y: -5}, state.Windows["a"].Position)

	state.EndDrag()
	assert.Nil(t, state.Drag)

	// Position survives the release.
	assert.Equal(t, window.Position{X: -10, Y: -5}, state.Windows["a"].Position)
}

/*
TestState_Drag_Rejections: closed or minimized windows cannot be dragged.
*/
func TestState_Drag_Rejections(t *testing.T) {
	state := window.NewState()

	_, err := state.StartDrag("ghost", window.Position{})
	assert.ErrorIs(t, err, window.ErrWindowNotOpen)

	state.Open("a")
	state.Minimize("a")
	_, err = state.StartDrag("a", window.Position{})
	assert.ErrorIs(t, err, window.ErrWindowNotOpen)
}

/*
TestState_TouchSessionsNeverDrag: touch sessions no-op on drag start.
*/
func TestState_TouchSessionsNeverDrag(t *testing.T) {
	state := window.NewState()
	state.Touch = true
	state.Open("a")

	started, err := state.StartDrag("a", window.Position{X: 60, Y: 60})
	require.NoError(t, err)
	assert.False(t, started)
	assert.Nil(t, state.Drag)

	// MoveDrag without a capture is a no-op.
	before := state.Windows["a"].Position
	state.MoveDrag(window.Position{X: 999, Y: 999})
	assert.Equal(t, before, state.Windows["a"].Position)
}

/*
TestState_MinimizeCancelsDrag: minimizing the dragged window releases the
capture.
*/
func TestState_MinimizeCancelsDrag(t *testing.T) {
	state := window.NewState()
	state.Open("a")

	_, err := state.StartDrag("a", window.Position{X: 55, Y: 55})
	require.NoError(t, err)

	state.Minimize("a")
	assert.Nil(t, state.Drag)
}
