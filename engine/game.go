package engine

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hoodev/fixedstep/core"
)

// GameState represents the states a fixedstep host can be in.
type GameState int

const (
	StateLoading GameState = iota
	StateMenu
	StatePlaying
	StatePaused
	StateTransition
)

// StateManager drives transitions between game states. Transition
// progress and per-tick callbacks advance in units of core.DT rather
// than wall-clock seconds, so a host's state machine stays in lockstep
// with the physics core it wraps.
type StateManager struct {
	currentState       GameState
	previousState      GameState
	targetState        GameState
	isTransitioning    bool
	transitionTicks    uint64
	maxTransitionTicks uint64
	tickCount          uint64
	onEnterCallbacks   map[GameState]func()
	onExitCallbacks    map[GameState]func()
	onUpdateCallbacks  map[GameState]func() error
}

// NewStateManager creates a new state manager
func NewStateManager(initialState GameState) *StateManager {
	return &StateManager{
		currentState:      initialState,
		previousState:     initialState,
		targetState:       initialState,
		onEnterCallbacks:  make(map[GameState]func()),
		onExitCallbacks:   make(map[GameState]func()),
		onUpdateCallbacks: make(map[GameState]func() error),
	}
}

// GetCurrentState returns the current game state
func (sm *StateManager) GetCurrentState() GameState {
	return sm.currentState
}

// GetPreviousState returns the previous game state
func (sm *StateManager) GetPreviousState() GameState {
	return sm.previousState
}

// IsTransitioning returns true if a state transition is in progress
func (sm *StateManager) IsTransitioning() bool {
	return sm.isTransitioning
}

// TickCount returns the number of core.DT-sized ticks this manager has
// processed since creation.
func (sm *StateManager) TickCount() uint64 {
	return sm.tickCount
}

// GetTransitionProgress returns progress of current transition (0.0 to 1.0)
func (sm *StateManager) GetTransitionProgress() float64 {
	if !sm.isTransitioning || sm.maxTransitionTicks == 0 {
		return 1.0
	}
	return float64(sm.transitionTicks) / float64(sm.maxTransitionTicks)
}

// TransitionTo initiates a transition to a new state lasting duration
// seconds, quantised to the nearest whole core.DT tick.
func (sm *StateManager) TransitionTo(newState GameState, duration float64) {
	if sm.currentState == newState {
		return
	}

	log.Printf("Transitioning from %s to %s", sm.StateToString(sm.currentState), sm.StateToString(newState))

	sm.previousState = sm.currentState
	sm.targetState = newState
	sm.maxTransitionTicks = secondsToTicks(duration)
	sm.transitionTicks = 0

	if sm.maxTransitionTicks > 0 {
		sm.isTransitioning = true
		sm.currentState = StateTransition
	} else {
		sm.completeTransition()
	}
}

// secondsToTicks quantises a duration in seconds to a whole number of
// core.DT ticks, rounding to the nearest tick.
func secondsToTicks(seconds float64) uint64 {
	if seconds <= 0 {
		return 0
	}
	ticks := seconds/float64(core.DT) + 0.5
	return uint64(ticks)
}

// SetState immediately changes to a new state without transition
func (sm *StateManager) SetState(newState GameState) {
	sm.TransitionTo(newState, 0)
}

// Update advances the manager by one core.DT tick, progressing any
// in-flight transition and invoking the current state's update
// callback.
func (sm *StateManager) Update() error {
	sm.tickCount++

	if sm.isTransitioning {
		sm.transitionTicks++
		if sm.transitionTicks >= sm.maxTransitionTicks {
			sm.completeTransition()
		}
	}

	if callback, exists := sm.onUpdateCallbacks[sm.currentState]; exists {
		return callback()
	}

	return nil
}

// completeTransition finishes a state transition
func (sm *StateManager) completeTransition() {
	if callback, exists := sm.onExitCallbacks[sm.previousState]; exists {
		callback()
	}

	sm.currentState = sm.targetState
	sm.isTransitioning = false
	sm.transitionTicks = 0

	if callback, exists := sm.onEnterCallbacks[sm.currentState]; exists {
		callback()
	}

	log.Printf("Completed transition to %s", sm.StateToString(sm.currentState))
}

// RegisterOnEnter registers a callback for when entering a specific state
func (sm *StateManager) RegisterOnEnter(state GameState, callback func()) {
	sm.onEnterCallbacks[state] = callback
}

// RegisterOnExit registers a callback for when exiting a specific state
func (sm *StateManager) RegisterOnExit(state GameState, callback func()) {
	sm.onExitCallbacks[state] = callback
}

// RegisterOnUpdate registers a callback for updating a specific state
func (sm *StateManager) RegisterOnUpdate(state GameState, callback func() error) {
	sm.onUpdateCallbacks[state] = callback
}

// StateToString converts a GameState to a readable string
func (sm *StateManager) StateToString(state GameState) string {
	switch state {
	case StateLoading:
		return "Loading"
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateTransition:
		return "Transition"
	default:
		return fmt.Sprintf("Unknown(%d)", int(state))
	}
}

// Game wraps an AssetManager and StateManager behind the ebiten.Game
// interface. It carries no physics of its own; hosts embed it and step
// their own core.State from their Update method.
type Game struct {
	assetManager *AssetManager
	stateManager *StateManager
	screenWidth  int
	screenHeight int
}

// GameConfig holds configuration for creating a new game
type GameConfig struct {
	ScreenWidth  int
	ScreenHeight int
	AssetConfig  AssetConfig
}

// NewGame creates a new game instance
func NewGame(config GameConfig) *Game {
	game := &Game{
		assetManager: NewAssetManager(config.AssetConfig),
		stateManager: NewStateManager(StateLoading),
		screenWidth:  config.ScreenWidth,
		screenHeight: config.ScreenHeight,
	}

	game.setupDefaultStateCallbacks()

	return game
}

// setupDefaultStateCallbacks sets up default behavior for each state
func (g *Game) setupDefaultStateCallbacks() {
	g.stateManager.RegisterOnEnter(StateLoading, func() {
		log.Println("Entered Loading state")
	})

	g.stateManager.RegisterOnExit(StateLoading, func() {
		log.Println("Exited Loading state")
	})

	g.stateManager.RegisterOnEnter(StateMenu, func() {
		log.Println("Entered Menu state")
	})

	g.stateManager.RegisterOnEnter(StatePlaying, func() {
		log.Println("Entered Playing state - simulation running")
	})

	g.stateManager.RegisterOnEnter(StatePaused, func() {
		log.Println("Simulation paused")
	})

	g.stateManager.RegisterOnExit(StatePaused, func() {
		log.Println("Simulation resumed")
	})
}

// GetAssetManager returns the game's asset manager
func (g *Game) GetAssetManager() *AssetManager {
	return g.assetManager
}

// GetState returns the current game state
func (g *Game) GetState() GameState {
	return g.stateManager.GetCurrentState()
}

// GetStateManager returns the state manager
func (g *Game) GetStateManager() *StateManager {
	return g.stateManager
}

// SetState changes the game state immediately
func (g *Game) SetState(state GameState) {
	g.stateManager.SetState(state)
}

// TransitionToState changes the game state with a transition
func (g *Game) TransitionToState(state GameState, duration float64) {
	g.stateManager.TransitionTo(state, duration)
}

// TogglePause toggles between playing and paused states
func (g *Game) TogglePause() {
	currentState := g.stateManager.GetCurrentState()
	if currentState == StatePlaying {
		g.TransitionToState(StatePaused, 0.2)
	} else if currentState == StatePaused {
		g.TransitionToState(StatePlaying, 0.2)
	}
}

// SimTicks returns the number of core.DT ticks the state manager has
// processed, i.e. how many times Update has run.
func (g *Game) SimTicks() uint64 {
	return g.stateManager.TickCount()
}

// Update implements ebiten.Game. ebiten runs at a fixed 60 TPS
// (cmd/demo pins it with ebiten.SetTPS), so each call corresponds to
// exactly one core.DT tick.
func (g *Game) Update() error {
	return g.stateManager.Update()
}

// Draw implements ebiten.Game interface
func (g *Game) Draw(screen *ebiten.Image) {
	// Base drawing will be handled by the specific game implementation
}

// Layout implements ebiten.Game interface
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.screenWidth, g.screenHeight
}
