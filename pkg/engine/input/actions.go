package input

import (
	"sort"
	"strings"
	"time"

	"github.com/zyedidia/generic/mapset"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Ship thrust
	ActionThrustUp
	ActionThrustDown
	ActionThrustLeft
	ActionThrustRight
	ActionBoost

	// Planet carousel
	ActionScrollLeft
	ActionScrollRight

	// Meta / UI
	ActionMenuUp
	ActionMenuDown
	ActionConfirm
	ActionBack
	ActionQuit
	ActionScreenshot
	ActionTogglePalette
	ActionRegenerate
	ActionToggleMute
	ActionDebugDump
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "w", "arrow_left", "mouse_left").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
type DebouncedInput struct {
	Device Device
	Code   string
}

// Debouncer turns raw key-down samples into one event per press. A code
// fires when it goes down and again only after it has been released.
type Debouncer struct {
	down mapset.Set[string]
}

// NewDebouncer returns a Debouncer with nothing held.
func NewDebouncer() *Debouncer {
	return &Debouncer{down: mapset.New[string]()}
}

// Feed takes every code held during one frame and returns the debounced
// events for codes that were not held in the previous frame.
func (d *Debouncer) Feed(held []RawInput) []DebouncedInput {
	now := mapset.New[string]()
	var out []DebouncedInput
	for _, raw := range held {
		now.Put(raw.Code)
		if !d.down.Has(raw.Code) {
			out = append(out, DebouncedInput{Device: raw.Device, Code: raw.Code})
		}
	}
	d.down = now
	return out
}

// NewDebouncedInput converts a raw event to a debounced event without
// repeat tracking, for sources that already emit one event per press.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"w":          ActionThrustUp,
	"s":          ActionThrustDown,
	"a":          ActionThrustLeft,
	"d":          ActionThrustRight,
	"shift":      ActionBoost,
	"arrow_left": ActionScrollLeft,
	"q":          ActionScrollLeft,

	"arrow_right": ActionScrollRight,
	"e":           ActionScrollRight,

	"arrow_up":   ActionMenuUp,
	"arrow_down": ActionMenuDown,

	"enter":      ActionConfirm,
	"space":      ActionConfirm,
	"mouse_left": ActionConfirm,

	"escape":      ActionBack,
	"backspace":   ActionBack,
	"mouse_right": ActionBack,

	"ctrl_q": ActionQuit,

	// Gamepad: the stick flies, the d-pad drives menus and the carousel
	"gamepad_stick_up":    ActionThrustUp,
	"gamepad_stick_down":  ActionThrustDown,
	"gamepad_stick_left":  ActionThrustLeft,
	"gamepad_stick_right": ActionThrustRight,
	"gamepad_x":           ActionBoost,
	"gamepad_dpad_up":     ActionMenuUp,
	"gamepad_dpad_down":   ActionMenuDown,
	"gamepad_dpad_left":   ActionScrollLeft,
	"gamepad_dpad_right":  ActionScrollRight,
	"gamepad_a":           ActionConfirm,
	"gamepad_b":           ActionBack,
	"gamepad_start":       ActionBack,

	"f12": ActionScreenshot,
	"f3":  ActionTogglePalette,
	"f8":  ActionDebugDump,
	"r":   ActionRegenerate,
	"m":   ActionToggleMute,
}

// reserved codes cannot be rebound away from their action.
var reserved = func() mapset.Set[string] {
	s := mapset.New[string]()
	for _, c := range []string{"enter", "escape", "mouse_left", "arrow_left", "arrow_right"} {
		s.Put(c)
	}
	return s
}()

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// HeldActions reports which actions are bound to at least one held code.
// Continuous controls (thrust, boost) read this instead of intents.
func HeldActions(held []RawInput) mapset.Set[Action] {
	set := mapset.New[Action]()
	for _, raw := range held {
		if act, ok := bindings[raw.Code]; ok {
			set.Put(act)
		}
	}
	return set
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionThrustUp:
		return "Thrust Up"
	case ActionThrustDown:
		return "Thrust Down"
	case ActionThrustLeft:
		return "Thrust Left"
	case ActionThrustRight:
		return "Thrust Right"
	case ActionBoost:
		return "Boost"
	case ActionScrollLeft:
		return "Previous Planet"
	case ActionScrollRight:
		return "Next Planet"
	case ActionMenuUp:
		return "Menu Up"
	case ActionMenuDown:
		return "Menu Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	case ActionTogglePalette:
		return "Toggle Palette"
	case ActionRegenerate:
		return "Regenerate"
	case ActionToggleMute:
		return "Toggle Mute"
	case ActionDebugDump:
		return "Debug Dump"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// SetSingleBinding replaces all non-reserved keyboard bindings for the
// given action with a single code. Reserved and gamepad codes are kept.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reserved.Has(c) || strings.HasPrefix(c, "gamepad_") {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reserved.Has(code) {
		bindings[code] = action
	}
}

// SetBinding adds code as an extra binding for action. Reserved codes are
// left alone.
func SetBinding(action Action, code string) {
	if code == "" || reserved.Has(code) {
		return
	}
	bindings[code] = action
}
