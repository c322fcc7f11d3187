// Package registry is the global catalog of game factories. A game
// registers itself in an init() function; the platform discovers and
// instantiates games by ID without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mkravets/chomp-arcade/internal/core"
)

// Game is the interface every arcade game implements. Games contain pure
// simulation logic with no external dependencies (especially no Bubble
// Tea); the platform handles input mapping, timing, rendering and audio.
type Game interface {
	// ID returns the unique identifier used for CLI commands and score
	// storage, e.g. "chomp".
	ID() string

	// Title returns the human-readable display name, e.g. "Chomp".
	Title() string

	// Reset initializes or restarts the game session. Called once before
	// the first Step and again when the player restarts.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one fixed logic tick and
	// returns the tick's outcome, including any sound events.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer. The buffer
	// is pre-cleared before this call.
	Render(dst *core.Screen)

	// State reports score and lifecycle flags to the platform.
	State() core.GameState
}

// GameInfo is the registered metadata of one game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, un-Reset instance of a game.
type Factory func() Game

// entry pairs a factory with the metadata captured at registration.
type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under the given ID. It is meant to be
// called from a game package's init() function and panics on an empty or
// duplicate ID, since either is a programming error.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game ID")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	// capture the title once, from a throwaway instance
	entries[id] = entry{factory: f, info: GameInfo{ID: id, Title: f().Title()}}
}

// List returns the metadata of all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return e.factory(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
