package systems

import (
	"image/color"
	"math"

	"github.com/cbag/codebird-cave/components"
	cfg "github.com/cbag/codebird-cave/config"
	"github.com/cbag/codebird-cave/shared/leveldata"
	"github.com/cbag/codebird-cave/shared/physics"
	"github.com/cbag/codebird-cave/shared/tilegrid"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// Pre-rendered decorative layers per level; nil when a level has none.
	backdrops = map[string]*ebiten.Image{}
)

// View maps world units (Y up) to screen pixels (Y down) around a camera
// centre.
type View struct {
	CamX, CamY    float64
	Scale         float64
	Width, Height float64
}

func newView(camera *components.CameraData, screen *ebiten.Image) View {
	return View{
		CamX:   camera.Position.X,
		CamY:   camera.Position.Y,
		Scale:  cfg.C.Scale,
		Width:  float64(screen.Bounds().Dx()),
		Height: float64(screen.Bounds().Dy()),
	}
}

// Box returns the screen rectangle of a world box whose bottom-left corner
// is (x, y).
func (v View) Box(x, y, w, h float64) (sx, sy, sw, sh float32) {
	sx = float32((x-v.CamX)*v.Scale + v.Width/2)
	sy = float32(v.Height/2 - (y+h-v.CamY)*v.Scale)
	return sx, sy, float32(w * v.Scale), float32(h * v.Scale)
}

// Cells is the range of cells visible through the view, one cell of
// padding on each side.
func (v View) Cells() tilegrid.CellRange {
	halfW := v.Width / 2 / v.Scale
	halfH := v.Height / 2 / v.Scale
	return tilegrid.CellRange{
		MinX: int(math.Floor(v.CamX-halfW)) - 1,
		MinY: int(math.Floor(v.CamY-halfH)) - 1,
		MaxX: int(math.Ceil(v.CamX+halfW)) + 1,
		MaxY: int(math.Ceil(v.CamY+halfH)) + 1,
	}
}

// DrawLevel renders the tile layers and hazards of the current session as
// flat rectangles.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	level := getLevel(e)
	if level == nil || level.Session == nil {
		return
	}
	view := newView(components.Camera.Get(cameraEntry), screen)
	grid := level.Session.World.Grid

	drawBackdrop(screen, view, level.Session.Level)
	drawLayer(screen, view, grid, tilegrid.Door, cfg.Colors.Door)
	drawLayer(screen, view, grid, tilegrid.SolidA, cfg.Colors.SolidA)
	drawLayer(screen, view, grid, tilegrid.SolidB, cfg.Colors.SolidB)
	drawLayer(screen, view, grid, tilegrid.Exit, cfg.Colors.Exit)

	for _, h := range level.Session.Level.Hazards {
		x, y, w, hh := view.Box(h.X, h.Y, h.W, h.H)
		vector.FillRect(screen, x, y, w, hh, cfg.Colors.Hazard, false)
	}
}

func drawLayer(screen *ebiten.Image, view View, grid *tilegrid.Grid, role tilegrid.LayerRole, clr color.RGBA) {
	layer := grid.Layer(role)
	if layer == nil {
		return
	}
	cells := view.Cells()
	for cy := max(cells.MinY, 0); cy <= min(cells.MaxY, grid.Height-1); cy++ {
		for cx := max(cells.MinX, 0); cx <= min(cells.MaxX, grid.Width-1); cx++ {
			if !layer.Occupied(cx, cy) {
				continue
			}
			x, y, w, h := view.Box(float64(cx), float64(cy), 1, 1)
			vector.FillRect(screen, x, y, w, h, clr, false)
		}
	}
}

func drawBackdrop(screen *ebiten.Image, view View, level *leveldata.Level) {
	img, ok := backdrops[level.Name]
	if !ok {
		src, err := level.RenderBackdrop()
		if err != nil {
			log.Warn("could not render backdrop", "level", level.Name, "error", err)
		}
		if src != nil {
			img = ebiten.NewImageFromImage(src)
		}
		backdrops[level.Name] = img
	}
	if img == nil || level.TileSize == 0 {
		return
	}

	// The image's top-left is the top-left of the map.
	x, y, _, _ := view.Box(0, float64(level.Grid.Height), 0, 0)
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(view.Scale/float64(level.TileSize), view.Scale/float64(level.TileSize))
	drawOp.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, drawOp)
}

// DrawPlayer renders the player box with a notch on the side it faces.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	level := getLevel(e)
	if level == nil || level.Session == nil {
		return
	}
	view := newView(components.Camera.Get(cameraEntry), screen)
	a := level.Session.Player

	x, y, w, h := view.Box(a.Pos.X, a.Pos.Y, a.Width, a.Height)
	vector.FillRect(screen, x, y, w, h, cfg.Colors.Player, false)

	eyeX := x + w*0.6
	if !a.FacingRight {
		eyeX = x + w*0.2
	}
	eyeY := y + h*0.25
	if a.State == physics.Jump {
		eyeY = y + h*0.15
	}
	vector.FillRect(screen, eyeX, eyeY, w*0.2, h*0.15, cfg.Colors.Background, false)
}
