// Command demo is a playable ebiten host for the physics core: it
// builds a small level, wires keyboard input into a button bitset,
// and steps a core.State once per fixed tick.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hoodev/fixedstep/core"
	"github.com/hoodev/fixedstep/engine"
	"github.com/hoodev/fixedstep/entities"
	"github.com/hoodev/fixedstep/level"
	"github.com/hoodev/fixedstep/presets"
)

const (
	spawnX, spawnY          = 100, 200
	playerWidth, playerHeight = 28, 30
)

// newDemoLevel builds the scene this host ships with: a ground strip
// and a single floating platform to jump onto.
func newDemoLevel() *level.Level {
	lvl := level.NewLevel(30, 20, 32, "Demo Level")

	for x := 0; x < lvl.Width; x++ {
		lvl.SetTile(x, lvl.Height-1, level.TileSolid)
		lvl.SetTile(x, lvl.Height-2, level.TileSolid)
	}

	for x := 8; x <= 14; x++ {
		lvl.SetTile(x, 12, level.TileSolid)
	}

	return lvl
}

// RoboGame wires the engine's generic state machine to the platformer
// entities and the physics core.
type RoboGame struct {
	*engine.Game
	playerImage  *ebiten.Image
	overlayImage *ebiten.Image
	player       *entities.Player
	inputHandler *entities.InputHandler
	currentLevel *level.Level
}

// NewRoboGame creates a new platformer game instance. Tuning
// parameters are loaded later, by LoadAssets.
func NewRoboGame() *RoboGame {
	config := engine.GameConfig{
		ScreenWidth:  480,
		ScreenHeight: 360,
		AssetConfig: engine.AssetConfig{
			AssetDir:    "assets",
			UseEmbedded: false,
		},
	}

	baseGame := engine.NewGame(config)

	game := &RoboGame{
		Game:         baseGame,
		overlayImage: ebiten.NewImage(480, 360),
	}

	game.setupGameStateCallbacks()

	return game
}

func (g *RoboGame) setupGameStateCallbacks() {
	stateManager := g.GetStateManager()

	stateManager.RegisterOnUpdate(engine.StatePlaying, func() error {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.TogglePause()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			g.TransitionToState(engine.StateMenu, 0.5)
		}
		return nil
	})

	stateManager.RegisterOnUpdate(engine.StatePaused, func() error {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.TogglePause()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyM) {
			g.TransitionToState(engine.StateMenu, 0.5)
		}
		return nil
	})

	stateManager.RegisterOnUpdate(engine.StateMenu, func() error {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.TransitionToState(engine.StatePlaying, 0.5)
		}
		return nil
	})
}

// LoadAssets loads the sprite sheet, builds the level, and wires the
// player into it. presetName selects one of the built-in tuning
// presets.
func (g *RoboGame) LoadAssets(presetName string) error {
	assetManager := g.GetAssetManager()

	playerImg, err := assetManager.LoadImage("player.png")
	if err != nil {
		log.Printf("could not load player.png, using generated sprite sheet: %v", err)
		playerImg = entities.CreateTestSpriteSheet()
	}
	g.playerImage = playerImg

	params, err := presets.Load(presetName)
	if err != nil {
		return fmt.Errorf("loading preset %q: %w", presetName, err)
	}

	g.currentLevel = newDemoLevel()
	g.player = entities.NewPlayer(spawnX, spawnY, playerWidth, playerHeight, params, playerImg)
	g.inputHandler = entities.NewInputHandler()

	g.SetState(engine.StateMenu)

	log.Printf("level %q loaded: %dx%d tiles, tile size %d", g.currentLevel.Name, g.currentLevel.Width, g.currentLevel.Height, g.currentLevel.TileSize)
	return nil
}

// Update implements ebiten.Game. ebiten calls Update once per tick at
// a fixed TPS, which is what gives the physics core the one-call-per-DT
// cadence it requires.
func (g *RoboGame) Update() error {
	stateManager := g.GetStateManager()
	if stateManager.GetCurrentState() == engine.StatePlaying && g.player != nil {
		if g.inputHandler.JustPressedReset() {
			g.resetPlayer()
		}

		buttons := g.inputHandler.Poll()
		g.player.Step(g.currentLevel.ToWorld(), buttons)
	}

	return g.Game.Update()
}

// resetPlayer snaps the player back to its spawn point with zero
// velocity, bound to the R key in setupGameStateCallbacks' sibling
// Update loop above.
func (g *RoboGame) resetPlayer() {
	g.player.State = core.State{
		X: spawnX,
		Y: spawnY,
		W: playerWidth,
		H: playerHeight,
	}
}

// Draw implements ebiten.Game.
func (g *RoboGame) Draw(screen *ebiten.Image) {
	g.Game.Draw(screen)

	switch g.GetStateManager().GetCurrentState() {
	case engine.StateLoading:
		g.drawLoadingScreen(screen)
	case engine.StateMenu:
		g.drawMenuScreen(screen)
	case engine.StatePlaying:
		g.drawGameScreen(screen)
	case engine.StatePaused:
		g.drawPausedScreen(screen)
	case engine.StateTransition:
		g.drawGameScreen(screen)
	}
}

func (g *RoboGame) drawLoadingScreen(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 40, 255})
	ebitenutil.DebugPrintAt(screen, "Loading...", 10, 10)
}

func (g *RoboGame) drawMenuScreen(screen *ebiten.Image) {
	screen.Fill(color.RGBA{40, 60, 100, 255})
	ebitenutil.DebugPrintAt(screen, "FIXEDSTEP PLATFORMER DEMO", 140, 80)
	ebitenutil.DebugPrintAt(screen, "ENTER - Start", 170, 140)
	ebitenutil.DebugPrintAt(screen, "Arrows/WASD - Move, Space - Jump, Shift - Run", 20, 240)
}

func (g *RoboGame) drawGameScreen(screen *ebiten.Image) {
	screen.Fill(color.RGBA{135, 206, 235, 255})

	if g.currentLevel != nil {
		g.currentLevel.Draw(screen)
	}

	if g.player != nil {
		g.player.Draw(screen)

		x, y := g.player.GetPosition()
		vx, vy := g.player.GetVelocity()
		debugInfo := fmt.Sprintf("pos (%.1f, %.1f)\nvel (%.1f, %.1f)\ngrounded %v\nanim %v",
			x, y, vx, vy, g.player.IsOnGround(), g.player.GetAnimationState())
		ebitenutil.DebugPrintAt(screen, debugInfo, 10, 60)
	}

	ebitenutil.DebugPrint(screen, "ESC: Pause | M: Menu | R: Reset")
}

func (g *RoboGame) drawPausedScreen(screen *ebiten.Image) {
	g.drawGameScreen(screen)
	g.overlayImage.Fill(color.RGBA{0, 0, 0, 128})
	screen.DrawImage(g.overlayImage, nil)
	ebitenutil.DebugPrintAt(screen, "PAUSED", 210, 150)
}

func main() {
	presetName := flag.String("preset", "classic", "tuning preset to load: "+fmt.Sprint(presets.Names()))
	flag.Parse()

	ebiten.SetWindowSize(960, 720)
	ebiten.SetWindowTitle("fixedstep demo")
	ebiten.SetTPS(60)

	game := NewRoboGame()
	if err := game.LoadAssets(*presetName); err != nil {
		log.Fatalf("loading assets: %v", err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
