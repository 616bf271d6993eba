// Package menu provides a generic menu model driven by input intents.
//
// A Menu does not block or draw. The game loop feeds it one intent per
// event and draws Items/Selected however the renderer likes.
package menu

import (
	engineinput "planetfall/pkg/engine/input"
	"planetfall/pkg/game/renderer"
)

// MenuItem is one row. Labels and help text may contain markup.
type MenuItem interface {
	GetLabel() string
	IsSelectable() bool
	GetHelpText() string
}

// MenuHandler supplies a menu's text and reacts to it.
type MenuHandler interface {
	// OnSelect runs after the cursor moves to item.
	OnSelect(item MenuItem, index int)
	// OnActivate runs on Confirm. The menu closes when done is true and
	// shows help until the cursor moves.
	OnActivate(item MenuItem, index int) (done bool, help string)
	// OnExit runs once when the menu closes for any reason.
	OnExit()
	GetTitle() string
	GetInstructions(selected MenuItem) string
}

// Menu is the selection state of an open menu.
type Menu struct {
	Items    []MenuItem
	Selected int
	HelpText string
	Closed   bool

	handler MenuHandler
}

// New opens a menu on its first selectable item.
func New(items []MenuItem, handler MenuHandler) *Menu {
	m := &Menu{Items: items, handler: handler}
	for i, item := range items {
		if item.IsSelectable() {
			m.Selected = i
			break
		}
	}
	return m
}

// Title returns the handler's title.
func (m *Menu) Title() string {
	return m.handler.GetTitle()
}

// Instructions returns the handler's instructions for the selected item.
func (m *Menu) Instructions() string {
	return m.handler.GetInstructions(m.SelectedItem())
}

// SelectedItem returns the selected item, or nil for an empty menu.
func (m *Menu) SelectedItem() MenuItem {
	if m.Selected >= 0 && m.Selected < len(m.Items) {
		return m.Items[m.Selected]
	}
	return nil
}

// HandleIntent applies one intent. It returns true once the menu has closed.
func (m *Menu) HandleIntent(intent engineinput.Intent) bool {
	if m.Closed {
		return true
	}

	switch intent.Action {
	case engineinput.ActionMenuUp, engineinput.ActionThrustUp:
		m.Up()
	case engineinput.ActionMenuDown, engineinput.ActionThrustDown:
		m.Down()
	case engineinput.ActionConfirm:
		m.Activate()
	case engineinput.ActionBack, engineinput.ActionQuit:
		m.Exit()
	}
	return m.Closed
}

// Up moves the selection to the previous selectable item, wrapping around.
func (m *Menu) Up() { m.step(-1) }

// Down moves the selection to the next selectable item, wrapping around.
func (m *Menu) Down() { m.step(1) }

func (m *Menu) step(dir int) {
	n := len(m.Items)
	for k := 1; k < n; k++ {
		i := ((m.Selected+dir*k)%n + n) % n
		if m.Items[i].IsSelectable() {
			m.selectIndex(i)
			return
		}
	}
}

// Select selects item i, e.g. under the mouse. Unselectable or out of range
// items are ignored.
func (m *Menu) Select(i int) bool {
	if i < 0 || i >= len(m.Items) || !m.Items[i].IsSelectable() {
		return false
	}
	if i != m.Selected {
		m.selectIndex(i)
	}
	return true
}

func (m *Menu) selectIndex(i int) {
	m.Selected = i
	m.HelpText = "" // Clear help text when navigating
	m.handler.OnSelect(m.Items[i], i)
}

// Activate activates the selected item.
func (m *Menu) Activate() {
	item := m.SelectedItem()
	if item == nil || !item.IsSelectable() {
		return
	}
	shouldClose, helpText := m.handler.OnActivate(item, m.Selected)
	m.HelpText = helpText
	if shouldClose {
		m.close()
	}
}

// Exit closes the menu without activating anything.
func (m *Menu) Exit() {
	m.close()
}

func (m *Menu) close() {
	if m.Closed {
		return
	}
	m.Closed = true
	m.handler.OnExit()
}

// Lines renders the menu as formatted text lines: title, instructions, help
// text and then the items with the selected one marked.
func (m *Menu) Lines() []string {
	lines := []string{renderer.FormatText("=== %s ===", m.Title())}

	if instructions := m.Instructions(); instructions != "" {
		lines = append(lines, renderer.FormatText("%s", instructions))
	}
	if m.HelpText != "" {
		lines = append(lines, renderer.FormatText("%s", m.HelpText))
	}

	for i, item := range m.Items {
		prefix := "  "
		if i == m.Selected {
			prefix = "> "
		}
		label := renderer.FormatText("%s", item.GetLabel())
		if !item.IsSelectable() {
			// Style non-selectable items differently
			label = renderer.StyleText(label, renderer.StyleSubtle)
		}
		lines = append(lines, prefix+label)
	}
	return lines
}
