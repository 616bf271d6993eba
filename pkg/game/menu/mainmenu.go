package menu

// MainMenuAction is what the player picked on the title screen.
type MainMenuAction int

const (
	MainMenuActionNone MainMenuAction = iota
	MainMenuActionExplore
	MainMenuActionControls
	MainMenuActionQuit
)

// mainEntries lists the title screen in display order with its help keys.
var mainEntries = []struct {
	action MainMenuAction
	label  string
	help   string
}{
	{MainMenuActionExplore, "GT{MENU_EXPLORE}", "GT{HELP_EXPLORE}"},
	{MainMenuActionControls, "GT{MENU_CONTROLS}", "GT{HELP_CONTROLS}"},
	{MainMenuActionQuit, "GT{MENU_QUIT}", "GT{HELP_QUIT}"},
}

// MainMenuItem is one title screen entry.
type MainMenuItem struct {
	Label  string
	Help   string
	Action MainMenuAction
}

func (m *MainMenuItem) GetLabel() string    { return m.Label }
func (m *MainMenuItem) IsSelectable() bool  { return true }
func (m *MainMenuItem) GetHelpText() string { return m.Help }

// MainMenuHandler records the highlighted entry and, once the menu closes,
// the chosen one.
type MainMenuHandler struct {
	highlighted MainMenuAction
	chosen      MainMenuAction
}

func NewMainMenuHandler() *MainMenuHandler {
	return &MainMenuHandler{highlighted: MainMenuActionExplore}
}

func (h *MainMenuHandler) GetTitle() string { return "GT{TITLE}" }

// GetInstructions shows the help of the highlighted entry.
func (h *MainMenuHandler) GetInstructions(selected MenuItem) string {
	if selected == nil {
		return "GT{MENU_INSTRUCTIONS}"
	}
	return selected.GetHelpText()
}

func (h *MainMenuHandler) OnSelect(item MenuItem, _ int) {
	if it, ok := item.(*MainMenuItem); ok {
		h.highlighted = it.Action
	}
}

// OnActivate closes the menu on any entry; the caller reads Chosen.
func (h *MainMenuHandler) OnActivate(item MenuItem, _ int) (bool, string) {
	it, ok := item.(*MainMenuItem)
	if !ok {
		return false, ""
	}
	h.highlighted = it.Action
	h.chosen = it.Action
	return true, ""
}

func (h *MainMenuHandler) OnExit() {}

// GetSelectedAction returns the highlighted entry.
func (h *MainMenuHandler) GetSelectedAction() MainMenuAction {
	return h.highlighted
}

// Chosen returns the activated action, or MainMenuActionNone when the menu
// was left without choosing.
func (h *MainMenuHandler) Chosen() MainMenuAction {
	return h.chosen
}

func (h *MainMenuHandler) GetMenuItems() []MenuItem {
	items := make([]MenuItem, len(mainEntries))
	for i, e := range mainEntries {
		items[i] = &MainMenuItem{Label: e.label, Help: e.help, Action: e.action}
	}
	return items
}

// NewMainMenu opens the title screen menu.
func NewMainMenu() (*Menu, *MainMenuHandler) {
	h := NewMainMenuHandler()
	return New(h.GetMenuItems(), h), h
}
