package menu

// PauseMenuAction represents the action type for pause menu items.
type PauseMenuAction int

const (
	PauseMenuActionResume PauseMenuAction = iota
	PauseMenuActionLeaveOrbit
	PauseMenuActionAbandon
)

// PauseMenuItem represents a menu item in the pause menu.
type PauseMenuItem struct {
	Label  string
	Action PauseMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *PauseMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *PauseMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *PauseMenuItem) GetHelpText() string {
	switch m.Action {
	case PauseMenuActionResume:
		return "GT{HELP_RESUME}"
	case PauseMenuActionLeaveOrbit:
		return "GT{HELP_LEAVE_ORBIT}"
	case PauseMenuActionAbandon:
		return "GT{HELP_ABANDON}"
	default:
		return ""
	}
}

// PauseMenuHandler handles the pause overlay shown while playing.
type PauseMenuHandler struct {
	chosen PauseMenuAction
}

// NewPauseMenuHandler creates a new pause menu handler.
func NewPauseMenuHandler() *PauseMenuHandler {
	return &PauseMenuHandler{}
}

// GetTitle returns the menu title.
func (h *PauseMenuHandler) GetTitle() string {
	return "GT{PAUSED}"
}

// GetInstructions returns the menu instructions.
func (h *PauseMenuHandler) GetInstructions(selected MenuItem) string {
	return "GT{MENU_INSTRUCTIONS}"
}

// OnSelect is called when an item is selected.
func (h *PauseMenuHandler) OnSelect(item MenuItem, index int) {
	// Nothing to do on selection
}

// OnActivate is called when an item is activated.
func (h *PauseMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	if pauseItem, ok := item.(*PauseMenuItem); ok {
		h.chosen = pauseItem.Action
		return true, ""
	}
	return false, ""
}

// OnExit is called when the menu is exited.
func (h *PauseMenuHandler) OnExit() {
	// Nothing to do on exit
}

// Chosen returns the activated action. Backing out of the menu resumes.
func (h *PauseMenuHandler) Chosen() PauseMenuAction {
	return h.chosen
}

// GetMenuItems returns the menu items for the pause menu.
func (h *PauseMenuHandler) GetMenuItems() []MenuItem {
	return []MenuItem{
		&PauseMenuItem{Label: "GT{MENU_RESUME}", Action: PauseMenuActionResume},
		&PauseMenuItem{Label: "GT{MENU_LEAVE_ORBIT}", Action: PauseMenuActionLeaveOrbit},
		&PauseMenuItem{Label: "GT{MENU_ABANDON}", Action: PauseMenuActionAbandon},
	}
}

// NewPauseMenu opens the pause menu.
func NewPauseMenu() (*Menu, *PauseMenuHandler) {
	h := NewPauseMenuHandler()
	return New(h.GetMenuItems(), h), h
}
