// Package debugui provides Dear ImGui inspector windows for a running game.
// Windows live in an ImguiItems singleton and are drawn by an ImguiSystem
// registered on the game loop, which defers their render functions to the
// end of the frame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// ImguiItem holds a Dear ImGui render function drawn every frame.
type ImguiItem struct {
	Render func()
}

// ImguiItems is the singleton list of windows drawn every frame.
type ImguiItems []ImguiItem

// Add appends a window render function.
func (items *ImguiItems) Add(render func()) {
	*items = append(*items, ImguiItem{Render: render})
}

// ImguiInputState is a singleton tracking whether Dear ImGui is consuming
// input. Frontends consult it before turning keys into game events.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates the ImguiInputState singleton and queues the render
// function of every ImguiItems entry for execution after the frame's systems
// have run.
type ImguiSystem struct {
	Items      loop.Singleton[ImguiItems]
	InputState loop.Singleton[ImguiInputState]

	capture func() ImguiInputState
}

func (i *ImguiSystem) Execute(frame *loop.UpdateFrame) {
	if i.capture == nil {
		i.capture = currentCapture
	}
	if state := i.InputState.Get(); state != nil {
		*state = i.capture()
	}

	items := i.Items.Get()
	if items == nil {
		return
	}
	for _, item := range *items {
		frame.Commands.Defer(item.Render)
	}
}

// WantCaptureKeyboard reports whether ImGui consumed the keyboard last frame.
func (i *ImguiSystem) WantCaptureKeyboard() bool {
	state := i.InputState.Get()
	return state != nil && state.WantCaptureKeyboard
}

func currentCapture() ImguiInputState {
	io := imgui.CurrentIO()
	return ImguiInputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}
