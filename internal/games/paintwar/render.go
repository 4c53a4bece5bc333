package paintwar

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-paintwar/internal/core"
	"github.com/vovakirdan/tui-paintwar/internal/physics"
)

// Visual characters for rendering
const (
	BallChar  = '●'
	BlockChar = '█'
	WallChar  = '▓'
)

// PrimitiveKind discriminates drawable shapes.
type PrimitiveKind uint8

const (
	PrimitiveRect PrimitiveKind = iota
	PrimitiveCircle
)

// Primitive is a renderer-agnostic description of one body: the top-left
// corner and size of its bounding box in world units, its rotation and its
// fill color.
type Primitive struct {
	Kind  PrimitiveKind
	Label string
	X, Y  float64
	W, H  float64
	Angle float64
	Color physics.Team
}

// Bounds returns the primitive's bounding box.
func (p Primitive) Bounds() core.FRect {
	return core.FRect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// PrimitiveOf describes a single body.
func PrimitiveOf(b *physics.Body) Primitive {
	pos := b.Position()
	w, h := b.Shape.Size()
	kind := PrimitiveRect
	if b.Shape.Kind == physics.ShapeCircle {
		kind = PrimitiveCircle
	}
	box := core.CenteredRect(pos.X, pos.Y, w, h)
	return Primitive{
		Kind:  kind,
		Label: b.Label,
		X:     box.X,
		Y:     box.Y,
		W:     box.W,
		H:     box.H,
		Angle: b.Angle(),
		Color: b.Color,
	}
}

// Primitives reads every entity in order and describes each body. It never
// mutates the world.
func Primitives(entities []Entity) []Primitive {
	var out []Primitive
	for _, e := range entities {
		for _, b := range e.Bodies() {
			out = append(out, PrimitiveOf(b))
		}
	}
	return out
}

// cellAspect is how many columns make up the height of one terminal row.
const cellAspect = 2.0

// fitEpsilon absorbs rounding when the arena exactly fills the area.
const fitEpsilon = 1e-9

// Viewport maps world coordinates onto a block of terminal cells.
// One world unit spans ScaleX columns and ScaleY rows, with ScaleX twice
// ScaleY so the arena keeps its proportions.
type Viewport struct {
	Origin core.Rect // screen cells occupied by the arena
	ScaleX float64
	ScaleY float64
}

// FitViewport scales a worldW x worldH arena to fit inside area, centered.
func FitViewport(worldW, worldH float64, area core.Rect) Viewport {
	if worldW <= 0 || worldH <= 0 || area.Empty() {
		return Viewport{Origin: core.Rect{X: area.X, Y: area.Y}}
	}

	sy := math.Min(float64(area.H)/worldH, float64(area.W)/(worldW*cellAspect))
	sx := sy * cellAspect
	w := int(math.Floor(worldW*sx + fitEpsilon))
	h := int(math.Floor(worldH*sy + fitEpsilon))

	return Viewport{
		Origin: core.Rect{
			X: area.X + (area.W-w)/2,
			Y: area.Y + (area.H-h)/2,
			W: w,
			H: h,
		},
		ScaleX: sx,
		ScaleY: sy,
	}
}

// ToCell converts a world point to the screen cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	return v.Origin.X + int(math.Floor(x*v.ScaleX)), v.Origin.Y + int(math.Floor(y*v.ScaleY))
}

// ToWorld returns the world point at the center of screen cell (cx, cy).
func (v Viewport) ToWorld(cx, cy int) (float64, float64) {
	return (float64(cx-v.Origin.X) + 0.5) / v.ScaleX, (float64(cy-v.Origin.Y) + 0.5) / v.ScaleY
}

// RectCells returns the screen cells whose centers fall inside r. A
// rectangle thinner than a cell still covers the cell holding its center.
func (v Viewport) RectCells(r core.FRect) core.Rect {
	x0, x1 := span(r.X, r.W, v.ScaleX)
	y0, y1 := span(r.Y, r.H, v.ScaleY)
	return core.Rect{X: v.Origin.X + x0, Y: v.Origin.Y + y0, W: x1 - x0, H: y1 - y0}
}

// span returns the half-open cell range whose centers lie in [pos, pos+size).
func span(pos, size, scale float64) (int, int) {
	lo := int(math.Ceil(pos*scale - 0.5))
	hi := int(math.Ceil((pos+size)*scale - 0.5))
	if hi <= lo {
		lo = int(math.Floor((pos + size/2) * scale))
		hi = lo + 1
	}
	return lo, hi
}

// Draw rasterizes primitives into dst, clipped to the viewport. Rectangles
// are drawn first so the balls stay on top of walls and blocks.
func (v Viewport) Draw(dst *core.Screen, prims []Primitive) {
	for _, p := range prims {
		if p.Kind == PrimitiveRect {
			v.drawRect(dst, p)
		}
	}
	for _, p := range prims {
		if p.Kind == PrimitiveCircle {
			v.drawCircle(dst, p)
		}
	}
}

func (v Viewport) drawRect(dst *core.Screen, p Primitive) {
	glyph := BlockChar
	if p.Label != "block" {
		glyph = WallChar
	}
	cells := v.clip(v.RectCells(p.Bounds()))
	dst.FillRect(cells, glyph, TeamColor(p.Color))
}

func (v Viewport) drawCircle(dst *core.Screen, p Primitive) {
	color := TeamColor(p.Color)
	cx, cy := p.X+p.W/2, p.Y+p.H/2
	r := p.W / 2

	box := v.clip(v.RectCells(p.Bounds()))
	drawn := false
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			wx, wy := v.ToWorld(x, y)
			if (wx-cx)*(wx-cx)+(wy-cy)*(wy-cy) <= r*r {
				dst.SetCell(x, y, BallChar, color)
				drawn = true
			}
		}
	}
	if !drawn {
		x, y := v.ToCell(cx, cy)
		if v.Origin.Contains(x, y) {
			dst.SetCell(x, y, BallChar, color)
		}
	}
}

func (v Viewport) clip(r core.Rect) core.Rect {
	x0 := max(r.X, v.Origin.X)
	y0 := max(r.Y, v.Origin.Y)
	x1 := min(r.Right(), v.Origin.Right())
	y1 := min(r.Bottom(), v.Origin.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// TeamColor maps a team onto the screen palette.
func TeamColor(t physics.Team) core.Color {
	if t == physics.TeamBlack {
		return core.ColorBlack
	}
	return core.ColorWhite
}

// Minimum terminal size for a readable arena plus HUD.
const (
	minScreenW = 20
	minScreenH = 8
)

// Render draws the HUD on row 0 and the arena below it.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if g.entities == nil {
		if g.loadErr != nil {
			dst.DrawTextCentered(dst.Height()/2-1, "Cannot build arena")
			dst.DrawTextCentered(dst.Height()/2, g.loadErr.Error())
		}
		return
	}

	area := core.Rect{X: 0, Y: 1, W: dst.Width(), H: dst.Height() - 1}
	vp := FitViewport(g.cfg.Arena.Width, g.cfg.Arena.Height, area)
	vp.Draw(dst, Primitives(g.entities.All()))

	g.renderHUD(dst)
	g.renderOverlay(dst, vp)
}

// renderHUD draws the tally, mode, sub-step count and round clock.
func (g *Game) renderHUD(dst *core.Screen) {
	tally := fmt.Sprintf("White %d  Black %d", g.white, g.black)
	dst.DrawTextColor(1, 0, tally, core.ColorYellow)

	dst.DrawTextCentered(0, g.Title())

	right := fmt.Sprintf("x%d  %s", g.subSteps, g.clockText())
	dst.DrawTextColor(dst.Width()-len([]rune(right))-1, 0, right, core.ColorCyan)
}

// clockText shows the remaining time of a timed round, or the elapsed time.
func (g *Game) clockText() string {
	secs := int(g.seconds())
	if limit := g.mode.RoundSeconds; limit > 0 {
		secs = max(limit-secs, 0)
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// renderOverlay draws pause and game-over messages over the arena.
func (g *Game) renderOverlay(dst *core.Screen, vp Viewport) {
	mid := vp.Origin.Y + vp.Origin.H/2
	switch {
	case g.gameOver:
		drawCentered(dst, mid-1, " ROUND OVER ", core.ColorRed)
		drawCentered(dst, mid, fmt.Sprintf(" Winner: %s ", g.Winner()), core.ColorYellow)
		drawCentered(dst, mid+1, " R restart  Q quit ", core.ColorGray)
	case g.paused:
		drawCentered(dst, mid, " PAUSED ", core.ColorYellow)
	}
}

func drawCentered(dst *core.Screen, y int, text string, c core.Color) {
	x := (dst.Width() - len([]rune(text))) / 2
	dst.DrawTextColor(x, y, text, c)
}
