// Package input handles SDL2 input events.
package input

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

// Event types for the viewer.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseDown
)

// Event represents a processed input event.
//
// Key holds the KeyboardEvent.key style name of the pressed key ("a", "A",
// ";", ":", " ", "ArrowLeft", "Escape", "F12"). Keys the viewer has no name
// for are dropped. MouseX and MouseY are window coordinates.
type Event struct {
	Type   EventType
	Key    string
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
}

// Input handles all input processing.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the viewer should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			// Auto-repeat is kept so held keys keep moving the camera.
			if e.Type != sdl.KEYDOWN {
				continue
			}
			if name := KeyName(e.Keysym.Sym, sdl.Keymod(e.Keysym.Mod)); name != "" {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: name})
			}

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{
					Type:   EventMouseDown,
					MouseX: int(e.X),
					MouseY: int(e.Y),
					Button: e.Button,
				})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// KeyName maps an SDL key and modifier state to the name the viewer binds.
// It returns "" for keys with no name.
func KeyName(sym sdl.Keycode, mod sdl.Keymod) string {
	shift := mod&sdl.KMOD_SHIFT != 0

	switch {
	case sym >= sdl.K_a && sym <= sdl.K_z:
		name := string(rune(sym))
		if shift != (mod&sdl.KMOD_CAPS != 0) {
			name = strings.ToUpper(name)
		}
		return name
	case sym >= sdl.K_0 && sym <= sdl.K_9 && !shift:
		return string(rune(sym))
	}

	switch sym {
	case sdl.K_SEMICOLON:
		if shift {
			return ":"
		}
		return ";"
	case sdl.K_SPACE:
		return " "
	case sdl.K_LEFT:
		return "ArrowLeft"
	case sdl.K_RIGHT:
		return "ArrowRight"
	case sdl.K_UP:
		return "ArrowUp"
	case sdl.K_DOWN:
		return "ArrowDown"
	case sdl.K_ESCAPE:
		return "Escape"
	case sdl.K_F12:
		return "F12"
	}
	return ""
}
