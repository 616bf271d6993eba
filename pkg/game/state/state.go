package state

import (
	"errors"
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/zyedidia/generic/mapset"

	"planetfall/pkg/game/planet"
)

// Scene is the screen the game is currently showing
type Scene int

const (
	SceneMainMenu Scene = iota
	ScenePlanetSelect
	ScenePlaying
	ScenePaused
	SceneGameOver
)

func (s Scene) String() string {
	switch s {
	case SceneMainMenu:
		return "main menu"
	case ScenePlanetSelect:
		return "planet select"
	case ScenePlaying:
		return "playing"
	case ScenePaused:
		return "paused"
	case SceneGameOver:
		return "game over"
	default:
		return fmt.Sprintf("scene(%d)", int(s))
	}
}

// ErrInvalidTransition is returned by SetScene for a move the scene graph
// does not allow.
var ErrInvalidTransition = errors.New("invalid scene transition")

var transitions = map[Scene][]Scene{
	SceneMainMenu:     {ScenePlanetSelect},
	ScenePlanetSelect: {ScenePlaying, SceneMainMenu},
	ScenePlaying:      {ScenePaused, ScenePlanetSelect},
	ScenePaused:       {ScenePlaying, ScenePlanetSelect, SceneGameOver},
	SceneGameOver:     {SceneMainMenu},
}

const maxMessages = 5

// Game represents the state of one expedition
type Game struct {
	Scene Scene

	// World holds the entities of the current scene
	World donburi.World

	Planets  []*planet.Planet
	Selected int
	Landed   *planet.Planet
	Visited  mapset.Set[*planet.Planet]

	Messages []string

	Seed    int64
	Elapsed float64
}

// NewGame creates a new game on the main menu
func NewGame(seed int64) *Game {
	return &Game{
		Scene:    SceneMainMenu,
		World:    donburi.NewWorld(),
		Selected: -1,
		Visited:  mapset.New[*planet.Planet](),
		Messages: make([]string, 0),
		Seed:     seed,
	}
}

// CanTransition reports whether the game may move from one scene to another.
func CanTransition(from, to Scene) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// SetScene moves to another scene and gives it a fresh world.
func (g *Game) SetScene(to Scene) error {
	if !CanTransition(g.Scene, to) {
		return fmt.Errorf("%w: %v -> %v", ErrInvalidTransition, g.Scene, to)
	}
	// Pausing keeps the playing world underneath the overlay.
	if to != ScenePaused && !(g.Scene == ScenePaused && to == ScenePlaying) {
		g.World = donburi.NewWorld()
	}
	g.Scene = to
	return nil
}

// ResetWorld gives the current scene an empty world.
func (g *Game) ResetWorld() {
	g.World = donburi.NewWorld()
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Select marks the planet at index i as selected. An out of range index
// clears the selection and returns false.
func (g *Game) Select(i int) bool {
	if i < 0 || i >= len(g.Planets) {
		g.Selected = -1
		return false
	}
	g.Selected = i
	return true
}

// SelectedPlanet returns the selected planet, or nil.
func (g *Game) SelectedPlanet() *planet.Planet {
	if g.Selected < 0 || g.Selected >= len(g.Planets) {
		return nil
	}
	return g.Planets[g.Selected]
}

// Land lands on the selected planet and records the visit.
func (g *Game) Land() (*planet.Planet, error) {
	p := g.SelectedPlanet()
	if p == nil {
		return nil, errors.New("no planet selected")
	}
	if err := g.SetScene(ScenePlaying); err != nil {
		return nil, err
	}
	g.Landed = p
	g.Visited.Put(p)
	return p, nil
}

// Reset starts a new expedition with different planets.
func (g *Game) Reset(seed int64) {
	g.Planets = nil
	g.Selected = -1
	g.Landed = nil
	g.Visited = mapset.New[*planet.Planet]()
	g.Seed = seed
	g.Elapsed = 0
	g.ClearMessages()
}

// Chart replaces the star system. Visits to the old planets are forgotten
// even when a new planet reuses an old name.
func (g *Game) Chart(planets []*planet.Planet, seed int64) {
	g.Planets = planets
	g.Seed = seed
	g.Selected = -1
	g.Landed = nil
	g.Visited = mapset.New[*planet.Planet]()
}
