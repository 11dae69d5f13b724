package level

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hoodev/fixedstep/core"
)

// Level is a tile-grid description of a playable area. It owns no
// physics state of its own; ToWorld projects it into the flat
// collider list the core steps against.
type Level struct {
	Width      int
	Height     int
	TileSize   int
	Tiles      [][]*Tile
	Background *ebiten.Image
	Name       string
}

// NewLevel creates an empty level of the given tile dimensions.
func NewLevel(width, height, tileSize int, name string) *Level {
	tiles := make([][]*Tile, height)
	for y := 0; y < height; y++ {
		tiles[y] = make([]*Tile, width)
		for x := 0; x < width; x++ {
			tiles[y][x] = NewTile(TileEmpty, x, y)
		}
	}

	return &Level{
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Tiles:    tiles,
		Name:     name,
	}
}

// SetTile sets the tile at the given grid coordinates. Out-of-bounds
// coordinates are ignored.
func (l *Level) SetTile(x, y int, tileType TileType) {
	if l.IsValidCoord(x, y) {
		l.Tiles[y][x] = NewTile(tileType, x, y)
	}
}

// GetTile returns the tile at the given grid coordinates, or an empty
// tile if the coordinates fall outside the level.
func (l *Level) GetTile(x, y int) *Tile {
	if l.IsValidCoord(x, y) {
		return l.Tiles[y][x]
	}
	return NewTile(TileEmpty, x, y)
}

// IsValidCoord reports whether x,y names a cell inside the level.
func (l *Level) IsValidCoord(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// GetWorldBounds returns the pixel dimensions of the full level.
func (l *Level) GetWorldBounds() (width, height float64) {
	return float64(l.Width * l.TileSize), float64(l.Height * l.TileSize)
}

// ToWorld projects the solid tiles into the flat collider list a
// core.Step call resolves against. Colliders are emitted row-major,
// left to right, top to bottom, which fixes the iteration order the
// ground-snap and substep resolution depend on. Runs of adjacent solid
// tiles in the same row are merged into a single wide rectangle so
// sliding along a floor doesn't catch on internal tile seams.
func (l *Level) ToWorld() core.World {
	var world core.World
	ts := float32(l.TileSize)

	for y := 0; y < l.Height; y++ {
		runStart := -1
		flushRun := func(endX int) {
			if runStart < 0 {
				return
			}
			world = append(world, core.Rect{
				X: float32(runStart) * ts,
				Y: float32(y) * ts,
				W: float32(endX-runStart) * ts,
				H: ts,
			})
			runStart = -1
		}
		for x := 0; x < l.Width; x++ {
			if l.Tiles[y][x].IsSolid() {
				if runStart < 0 {
					runStart = x
				}
			} else {
				flushRun(x)
			}
		}
		flushRun(l.Width)
	}

	return world
}

// Draw renders the level as flat-colored tiles; it has no bearing on
// simulation and exists only for the demo host.
func (l *Level) Draw(screen *ebiten.Image) {
	if l.Background != nil {
		screen.DrawImage(l.Background, &ebiten.DrawImageOptions{})
	}

	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			tile := l.Tiles[y][x]
			if tile.Type != TileEmpty {
				l.drawTile(screen, tile, x, y)
			}
		}
	}
}

func (l *Level) drawTile(screen *ebiten.Image, tile *Tile, x, y int) {
	tileImg := ebiten.NewImage(l.TileSize, l.TileSize)
	switch tile.Type {
	case TileSolid:
		tileImg.Fill(color.RGBA{128, 128, 128, 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x*l.TileSize), float64(y*l.TileSize))
	screen.DrawImage(tileImg, op)
}
