package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "planetfall/pkg/engine/input"
	"planetfall/pkg/game/gameplay"
	gamemenu "planetfall/pkg/game/menu"
	"planetfall/pkg/game/state"
	"planetfall/pkg/game/systems"
)

// Key repeat for menu and carousel navigation
const (
	keyRepeatInitialDelay = 300 // milliseconds
	keyRepeatInterval     = 80
)

// Codes that repeat while held
var repeatingCodes = map[string]bool{
	"arrow_up":           true,
	"arrow_down":         true,
	"arrow_left":         true,
	"arrow_right":        true,
	"gamepad_dpad_up":    true,
	"gamepad_dpad_down":  true,
	"gamepad_dpad_left":  true,
	"gamepad_dpad_right": true,
}

// keyCodes names the keys the game reads. Window keys (F2, =, -) are
// handled separately and never reach the bindings.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:     "arrow_up",
	ebiten.KeyArrowDown:   "arrow_down",
	ebiten.KeyArrowLeft:   "arrow_left",
	ebiten.KeyArrowRight:  "arrow_right",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "enter",
	ebiten.KeySpace:       "space",
	ebiten.KeyEscape:      "escape",
	ebiten.KeyBackspace:   "backspace",
	ebiten.KeyShift:       "shift",
	ebiten.KeyF1:          "f1",
	ebiten.KeyF3:          "f3",
	ebiten.KeyF4:          "f4",
	ebiten.KeyF5:          "f5",
	ebiten.KeyF6:          "f6",
	ebiten.KeyF7:          "f7",
	ebiten.KeyF8:          "f8",
	ebiten.KeyF9:          "f9",
	ebiten.KeyF10:         "f10",
	ebiten.KeyF11:         "f11",
	ebiten.KeyF12:         "f12",
	ebiten.KeyA:           "a",
	ebiten.KeyB:           "b",
	ebiten.KeyC:           "c",
	ebiten.KeyD:           "d",
	ebiten.KeyE:           "e",
	ebiten.KeyF:           "f",
	ebiten.KeyG:           "g",
	ebiten.KeyH:           "h",
	ebiten.KeyI:           "i",
	ebiten.KeyJ:           "j",
	ebiten.KeyK:           "k",
	ebiten.KeyL:           "l",
	ebiten.KeyM:           "m",
	ebiten.KeyN:           "n",
	ebiten.KeyO:           "o",
	ebiten.KeyP:           "p",
	ebiten.KeyQ:           "q",
	ebiten.KeyR:           "r",
	ebiten.KeyS:           "s",
	ebiten.KeyT:           "t",
	ebiten.KeyU:           "u",
	ebiten.KeyV:           "v",
	ebiten.KeyW:           "w",
	ebiten.KeyX:           "x",
	ebiten.KeyY:           "y",
	ebiten.KeyZ:           "z",
}

// Gamepad buttons, tuned for XInput-style controllers
var gamepadButtons = map[ebiten.GamepadButton]string{
	ebiten.GamepadButton0:  "gamepad_a",
	ebiten.GamepadButton1:  "gamepad_b",
	ebiten.GamepadButton2:  "gamepad_x",
	ebiten.GamepadButton7:  "gamepad_start",
	ebiten.GamepadButton11: "gamepad_dpad_up",
	ebiten.GamepadButton12: "gamepad_dpad_right",
	ebiten.GamepadButton13: "gamepad_dpad_down",
	ebiten.GamepadButton14: "gamepad_dpad_left",
}

const stickDeadZone = 0.5

type keyRepeatInfo struct {
	firstPressed int64
	lastRepeat   int64
}

// Update samples input and advances the session by one tick (Ebiten interface).
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.handleWindowKeys()

	held := e.pollHeld()
	events := e.debouncer.Feed(held)
	events = append(events, e.repeats(held)...)

	f := gameplay.Frame{
		DT:   e.tick(),
		Held: engineinput.HeldActions(held),
	}
	for _, ev := range events {
		f.Codes = append(f.Codes, ev.Code)
		if intent := engineinput.MapToIntent(ev); intent.Action != engineinput.ActionNone {
			f.Intents = append(f.Intents, intent)
		}
	}

	mx, my := ebiten.CursorPosition()
	x, y := e.vp.Fit(e.windowWidth, e.windowHeight).ToLogical(mx, my)
	f.Mouse = systems.Mouse{X: x, Y: y, Pressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)}
	if m := e.session.Menu(); m != nil {
		f.Intents = append(f.Intents, e.menuMouse(m, x, y)...)
		f.Mouse.Pressed = false
	}
	e.lastMouseX, e.lastMouseY = x, y

	if err := e.session.Update(f); err != nil {
		log.Printf("Update failed: %v", err)
	}
	if e.session.ScreenshotRequested() {
		e.screenshotPending = true
	}
	if e.session.Quit() {
		return ebiten.Termination
	}

	if e.session.Game.Scene == state.SceneMainMenu {
		e.updateFloatingStars(e.vp.Width, e.vp.Height)
	}
	return nil
}

// tick returns the seconds since the previous update, capped so a stalled
// window does not launch the ship across the screen.
func (e *EbitenRenderer) tick() float64 {
	now := time.Now().UnixMilli()
	last := e.lastTick
	e.lastTick = now
	if last == 0 {
		return 1 / float64(ebiten.TPS())
	}
	return min(float64(now-last)/1000, 0.1)
}

// pollHeld returns every key, button and stick direction held this tick.
func (e *EbitenRenderer) pollHeld() []engineinput.RawInput {
	now := time.Now()
	var held []engineinput.RawInput
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	for key, code := range keyCodes {
		if !ebiten.IsKeyPressed(key) {
			continue
		}
		if ctrl && key == ebiten.KeyQ {
			code = "ctrl_q"
		}
		held = append(held, engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code, Timestamp: now})
	}

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		for button, code := range gamepadButtons {
			if ebiten.IsGamepadButtonPressed(id, button) {
				held = append(held, engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: code, Timestamp: now})
			}
		}
		// Left stick: axis 0 is X, axis 1 is Y (down positive)
		sx, sy := ebiten.GamepadAxisValue(id, 0), ebiten.GamepadAxisValue(id, 1)
		stick := func(on bool, code string) {
			if on {
				held = append(held, engineinput.RawInput{Device: engineinput.DeviceGamepad, Code: code, Timestamp: now})
			}
		}
		stick(sx < -stickDeadZone, "gamepad_stick_left")
		stick(sx > stickDeadZone, "gamepad_stick_right")
		stick(sy < -stickDeadZone, "gamepad_stick_up")
		stick(sy > stickDeadZone, "gamepad_stick_down")
	}
	return held
}

// repeats re-emits navigation codes that have been held past the initial
// delay, once per repeat interval.
func (e *EbitenRenderer) repeats(held []engineinput.RawInput) []engineinput.DebouncedInput {
	now := time.Now().UnixMilli()
	var out []engineinput.DebouncedInput
	seen := make(map[string]bool, len(held))

	for _, raw := range held {
		if !repeatingCodes[raw.Code] || seen[raw.Code] {
			continue
		}
		seen[raw.Code] = true

		st, exists := e.keyRepeatState[raw.Code]
		if !exists {
			e.keyRepeatState[raw.Code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
			continue
		}
		if now-st.firstPressed >= keyRepeatInitialDelay && now-st.lastRepeat >= keyRepeatInterval {
			st.lastRepeat = now
			e.keyRepeatState[raw.Code] = st
			out = append(out, engineinput.NewDebouncedInput(raw))
		}
	}

	// Key released - clean up state
	for code := range e.keyRepeatState {
		if !seen[code] {
			delete(e.keyRepeatState, code)
		}
	}
	return out
}

// menuMouse selects the row under the pointer when the pointer moves and
// turns clicks into Confirm and Back.
func (e *EbitenRenderer) menuMouse(m *gamemenu.Menu, x, y float64) []engineinput.Intent {
	row := e.menuRowAt(x, y)
	moved := x != e.lastMouseX || y != e.lastMouseY
	if row >= 0 && moved {
		m.Select(row)
	}

	var intents []engineinput.Intent
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && row >= 0 && m.Select(row) {
		intents = append(intents, engineinput.Intent{Action: engineinput.ActionConfirm})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		intents = append(intents, engineinput.Intent{Action: engineinput.ActionBack})
	}
	return intents
}

// handleWindowKeys handles = and - for the window scale and F2 for the
// scanline filter.
func (e *EbitenRenderer) handleWindowKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		e.setWindowScale(e.cfg.WindowScale + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		e.setWindowScale(e.cfg.WindowScale - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		if err := e.cfg.SetScanlines(!e.cfg.Scanlines); err != nil {
			log.Printf("Warning: could not save preferences: %v", err)
		}
	}
}

func (e *EbitenRenderer) setWindowScale(scale int) {
	scale, err := e.cfg.SetWindowScale(scale)
	if err != nil {
		log.Printf("Warning: could not save preferences: %v", err)
	}
	ebiten.SetWindowSize(e.vp.Width*scale, e.vp.Height*scale)
}
