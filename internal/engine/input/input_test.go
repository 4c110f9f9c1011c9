package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestHandleQuit(t *testing.T) {
	in := New()
	if !in.handle(&sdl.QuitEvent{Type: sdl.QUIT}) {
		t.Error("quit event should request quit")
	}
	if len(in.Events()) != 1 || in.Events()[0].Type != EventQuit {
		t.Errorf("events = %+v", in.Events())
	}
}

func TestHandleEscape(t *testing.T) {
	in := New()
	ev := &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_ESCAPE}}
	if !in.handle(ev) {
		t.Error("escape should request quit")
	}
	if !in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		t.Error("escape should be recorded as pressed")
	}
}

func TestHandleResize(t *testing.T) {
	in := New()
	in.handle(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 800, Data2: 600})
	evs := in.Events()
	if len(evs) != 1 || evs[0].Type != EventWindowResize || evs[0].Width != 800 || evs[0].Height != 600 {
		t.Errorf("events = %+v", evs)
	}
}

func TestDragState(t *testing.T) {
	in := New()
	in.handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT})
	if !in.Dragging() {
		t.Fatal("left button down should start dragging")
	}
	in.handle(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, XRel: 5, YRel: -3})
	in.handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT})
	if in.Dragging() {
		t.Error("left button up should stop dragging")
	}

	var move Event
	for _, e := range in.Events() {
		if e.Type == EventMouseMove {
			move = e
		}
	}
	if move.DeltaX != 5 || move.DeltaY != -3 {
		t.Errorf("motion delta = (%d, %d)", move.DeltaX, move.DeltaY)
	}
}

func TestHandleWheel(t *testing.T) {
	in := New()
	in.handle(&sdl.MouseWheelEvent{Type: sdl.MOUSEWHEEL, Y: -2})
	evs := in.Events()
	if len(evs) != 1 || evs[0].Type != EventMouseWheel || evs[0].Wheel != -2 {
		t.Errorf("events = %+v", evs)
	}
}
