package menu

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	engineinput "planetfall/pkg/engine/input"
)

// boundActions are listed in the controls menu, in this order.
var boundActions = []engineinput.Action{
	engineinput.ActionThrustUp,
	engineinput.ActionThrustDown,
	engineinput.ActionThrustLeft,
	engineinput.ActionThrustRight,
	engineinput.ActionBoost,
	engineinput.ActionScrollLeft,
	engineinput.ActionScrollRight,
	engineinput.ActionConfirm,
	engineinput.ActionBack,
	engineinput.ActionScreenshot,
	engineinput.ActionTogglePalette,
	engineinput.ActionRegenerate,
	engineinput.ActionToggleMute,
	engineinput.ActionDebugDump,
}

// fixedActions keep their keys; menus would be unusable otherwise.
var fixedActions = func() mapset.Set[engineinput.Action] {
	s := mapset.New[engineinput.Action]()
	s.Put(engineinput.ActionConfirm)
	s.Put(engineinput.ActionBack)
	return s
}()

// BindingMenuItem shows one action and the keyboard codes bound to it.
type BindingMenuItem struct {
	Action        engineinput.Action
	NonRebindable bool
}

// keyboardCodes returns the codes bound to a, without gamepad buttons.
func keyboardCodes(a engineinput.Action) []string {
	var codes []string
	for _, c := range engineinput.GetBindingsByAction()[a] {
		if !strings.HasPrefix(c, "gamepad_") {
			codes = append(codes, c)
		}
	}
	return codes
}

func (b *BindingMenuItem) GetLabel() string {
	keys := strings.Join(keyboardCodes(b.Action), ", ")
	if keys == "" {
		keys = "(unbound)"
	}
	name := engineinput.ActionName(b.Action)
	if b.NonRebindable {
		return "SUBTLE{" + name + "}: " + keys + " (fixed)"
	}
	return name + ": " + keys
}

func (b *BindingMenuItem) IsSelectable() bool { return true }

func (b *BindingMenuItem) GetHelpText() string {
	if b.NonRebindable {
		return ""
	}
	return "Editing binding for: " + engineinput.ActionName(b.Action)
}

// BindingsMenuHandler drives the controls menu. Activating a rebindable
// item starts capturing: the next key passed to Capture becomes its binding.
type BindingsMenuHandler struct {
	capturing bool
	target    engineinput.Action
}

func NewBindingsMenuHandler() *BindingsMenuHandler {
	return &BindingsMenuHandler{}
}

func (h *BindingsMenuHandler) GetTitle() string { return "GT{MENU_CONTROLS}" }

func (h *BindingsMenuHandler) GetInstructions(selected MenuItem) string {
	switch it, ok := selected.(*BindingMenuItem); {
	case h.capturing:
		return "GT{PRESS_A_KEY}"
	case ok && !it.NonRebindable:
		return "GT{BINDINGS_EDIT_INSTRUCTIONS}"
	default:
		return "GT{BINDINGS_INSTRUCTIONS}"
	}
}

// OnSelect abandons a pending capture when the cursor moves.
func (h *BindingsMenuHandler) OnSelect(MenuItem, int) {
	h.capturing = false
}

func (h *BindingsMenuHandler) OnActivate(item MenuItem, _ int) (bool, string) {
	it, ok := item.(*BindingMenuItem)
	if !ok || it.NonRebindable {
		return false, ""
	}
	h.capturing = true
	h.target = it.Action
	return false, it.GetHelpText()
}

// Capturing reports whether the handler is waiting for a key.
func (h *BindingsMenuHandler) Capturing() bool {
	return h.capturing
}

// Capture binds code to the action being edited and returns a confirmation
// message. An empty code cancels.
func (h *BindingsMenuHandler) Capture(code string) string {
	if !h.capturing {
		return ""
	}
	h.capturing = false
	if code == "" {
		return ""
	}
	engineinput.SetSingleBinding(h.target, code)
	return fmt.Sprintf("Set binding for %s to %s", engineinput.ActionName(h.target), code)
}

func (h *BindingsMenuHandler) OnExit() {
	h.capturing = false
}

func (h *BindingsMenuHandler) GetMenuItems() []MenuItem {
	items := make([]MenuItem, len(boundActions))
	for i, a := range boundActions {
		items[i] = &BindingMenuItem{Action: a, NonRebindable: fixedActions.Has(a)}
	}
	return items
}

// NewBindingsMenu opens the controls menu.
func NewBindingsMenu() (*Menu, *BindingsMenuHandler) {
	h := NewBindingsMenuHandler()
	return New(h.GetMenuItems(), h), h
}
