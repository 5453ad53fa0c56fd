package editor

import "github.com/example/whiteboard/internal/scene"

// Mode is the active interaction mode.
type Mode int

const (
	ModeSelect Mode = iota
	ModeRectangle
	ModePen
	ModeText
	ModeErase
	ModeScreenshot
	ModeDrawingScreenshot
	ModeMoveObject
)

var modeNames = [...]string{
	ModeSelect:            "select",
	ModeRectangle:         "rectangle",
	ModePen:               "pen",
	ModeText:              "text",
	ModeErase:             "erase",
	ModeScreenshot:        "screenshot",
	ModeDrawingScreenshot: "drawing-screenshot",
	ModeMoveObject:        "move-object",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// State is the interaction state between frames. Resizing distinguishes a
// handle drag from a body drag while in ModeMoveObject; Pressed is set
// while a gesture started by a primary press is in progress.
type State struct {
	Mode     Mode
	Handle   scene.Corner
	Resizing bool
	Pressed  bool
}

// EventKind classifies an Event.
type EventKind int

const (
	EvPress EventKind = iota
	EvDrag
	EvRelease
	EvEscape
	EvTool
)

// Target is what lies under the cursor at a press.
type Target int

const (
	TargetNone Target = iota
	TargetEntity
	TargetHandle
)

// Event is one input the state machine reacts to. Target and Corner are
// set for presses, Mode for tool changes.
type Event struct {
	Kind   EventKind
	Target Target
	Corner scene.Corner
	Mode   Mode
}

// Effect is a side effect the editor performs after a transition.
type Effect int

const (
	RecordAnchor Effect = iota
	SelectTarget
	ClearSelection
	Translate
	Resize
	AppendStroke
	CommitRectangle
	Erase
	CaptureRegion
	CreateText
	ResetToolbars
)

var effectNames = [...]string{
	RecordAnchor:    "record-anchor",
	SelectTarget:    "select-target",
	ClearSelection:  "clear-selection",
	Translate:       "translate",
	Resize:          "resize",
	AppendStroke:    "append-stroke",
	CommitRectangle: "commit-rectangle",
	Erase:           "erase",
	CaptureRegion:   "capture-region",
	CreateText:      "create-text",
	ResetToolbars:   "reset-toolbars",
}

func (e Effect) String() string {
	if e < 0 || int(e) >= len(effectNames) {
		return "unknown"
	}
	return effectNames[e]
}

// Transition is the interaction state machine. It has no side effects;
// the returned effects are applied by the editor in order.
func Transition(s State, ev Event) (State, []Effect) {
	switch ev.Kind {
	case EvEscape:
		return State{Mode: ModeSelect}, []Effect{ClearSelection, ResetToolbars}
	case EvTool:
		return toolTransition(ev.Mode)
	}

	switch s.Mode {
	case ModeSelect:
		return pressToSelect(s, ev)

	case ModeText:
		if ev.Kind == EvPress && ev.Target != TargetNone {
			return pressToSelect(s, ev)
		}
		switch ev.Kind {
		case EvPress:
			return State{Mode: ModeText, Pressed: true}, []Effect{ClearSelection, RecordAnchor}
		case EvRelease:
			if s.Pressed {
				return State{Mode: ModeSelect}, []Effect{CreateText}
			}
		}

	case ModeMoveObject:
		switch ev.Kind {
		case EvDrag:
			if s.Resizing {
				return s, []Effect{Resize}
			}
			return s, []Effect{Translate}
		case EvRelease:
			return State{Mode: ModeSelect}, nil
		}

	case ModePen:
		switch ev.Kind {
		case EvPress:
			return State{Mode: ModePen, Pressed: true}, []Effect{RecordAnchor}
		case EvDrag:
			if s.Pressed {
				return s, []Effect{AppendStroke}
			}
		case EvRelease:
			return State{Mode: ModePen}, nil
		}

	case ModeRectangle:
		switch ev.Kind {
		case EvPress:
			return State{Mode: ModeRectangle, Pressed: true}, []Effect{RecordAnchor}
		case EvRelease:
			if s.Pressed {
				return State{Mode: ModeSelect}, []Effect{CommitRectangle, ResetToolbars}
			}
		}

	case ModeErase:
		switch ev.Kind {
		case EvPress:
			return State{Mode: ModeErase, Pressed: true}, []Effect{Erase}
		case EvDrag:
			if s.Pressed {
				return s, []Effect{Erase}
			}
		case EvRelease:
			return State{Mode: ModeErase}, nil
		}

	case ModeScreenshot:
		if ev.Kind == EvPress {
			return State{Mode: ModeDrawingScreenshot, Pressed: true}, []Effect{RecordAnchor}
		}

	case ModeDrawingScreenshot:
		if ev.Kind == EvRelease {
			return State{Mode: ModeSelect}, []Effect{CaptureRegion, ResetToolbars}
		}
	}
	return s, nil
}

func pressToSelect(s State, ev Event) (State, []Effect) {
	switch ev.Kind {
	case EvPress:
		switch ev.Target {
		case TargetHandle:
			return State{Mode: ModeMoveObject, Handle: ev.Corner, Resizing: true, Pressed: true}, []Effect{RecordAnchor}
		case TargetEntity:
			return State{Mode: ModeMoveObject, Pressed: true}, []Effect{SelectTarget, RecordAnchor}
		}
		return State{Mode: s.Mode}, []Effect{ClearSelection}
	case EvRelease:
		if ev.Target == TargetNone {
			return State{Mode: s.Mode}, []Effect{ClearSelection}
		}
	}
	return s, nil
}

func toolTransition(m Mode) (State, []Effect) {
	switch m {
	case ModeText:
		return State{Mode: ModeText}, []Effect{ResetToolbars, CreateText}
	case ModeRectangle, ModePen, ModeErase, ModeScreenshot:
		return State{Mode: m}, []Effect{ClearSelection, ResetToolbars}
	}
	return State{Mode: ModeSelect}, []Effect{ResetToolbars}
}
