package crossing

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Visual characters for rendering
const (
	SidewalkChar  = '·'
	RoadChar      = ' '
	CrosswalkChar = '▒'
	VehicleChar   = '█'
	BoxChar       = '■'
	TreeChar      = '♣'
	HydrantChar   = '¶'
)

// SkinRune returns the player glyph for a skin name. Unknown skins use
// the classic glyph.
func SkinRune(name string) rune {
	switch name {
	case "dark":
		return '☻'
	case "star":
		return '★'
	default:
		return '☺'
	}
}

// Skins lists the selectable skin names.
func Skins() []string {
	return []string{"classic", "dark", "star"}
}

// layout maps playfield cells to screen cells.
type layout struct {
	x, y   int // Top-left screen cell of the field
	cellW  int // Screen columns per field column
	rowH   int // Screen rows per lane
	fieldW int
	fieldH int
}

func (g *Game) layout(dst *core.Screen) layout {
	cols, rows := g.world.Columns(), g.world.VisibleRows()
	l := layout{
		cellW: core.Clamp((dst.Width()-2)/cols, 2, 6),
		rowH:  core.Clamp((dst.Height()-3)/rows, 1, 2),
	}
	l.fieldW = cols * l.cellW
	l.fieldH = rows * l.rowH
	l.x = (dst.Width() - l.fieldW) / 2
	l.y = 2 + (dst.Height()-2-l.fieldH)/2
	if l.x < 1 {
		l.x = 1
	}
	if l.y < 2 {
		l.y = 2
	}
	return l
}

// laneTop returns the first screen row of a lane. Lane 0 is at the bottom.
func (l layout) laneTop(lane, rows int) int {
	return l.y + (rows-1-lane)*l.rowH
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	w := g.world
	l := g.layout(dst)
	rows := w.VisibleRows()

	dst.DrawBox(core.NewRect(l.x-1, l.y-1, l.fieldW+2, l.fieldH+2))

	for i, lane := range w.Lanes() {
		top := l.laneTop(i, rows)
		for col := 0; col < w.Columns(); col++ {
			r := core.NewRect(l.x+col*l.cellW, top, l.cellW, l.rowH)
			switch {
			case lane.Kind == LaneSidewalk:
				dst.DrawRect(r, SidewalkChar, core.ColorGray)
			case lane.HasCrosswalk(col):
				dst.DrawRect(r, CrosswalkChar, core.ColorWhite)
			default:
				dst.DrawRect(r, RoadChar, core.ColorDefault)
			}
		}
		for _, o := range lane.Obstacles {
			g.drawObstacle(dst, l, top, o)
		}
	}

	for _, v := range w.Vehicles() {
		g.drawVehicle(dst, l, rows, v)
	}

	p := w.Player()
	px := l.x + p.Column*l.cellW + l.cellW/2
	py := l.laneTop(p.Lane, rows) + l.rowH/2
	playerColor := core.ColorBrightYellow
	if w.Terminal() {
		playerColor = core.ColorRed
	}
	dst.SetColor(px, py, SkinRune(g.cfg.Player.Skin), playerColor)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d  Best: %d ", w.Score(), w.Best()))
	if w.gen.Difficulty().IsEnabled() {
		levelText := fmt.Sprintf(" Lvl: %.0f%% ", w.Level()*100)
		dst.DrawText(dst.Width()-len(levelText)-2, 0, levelText)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if w.Terminal() {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", w.Score()))
	}
}

func (g *Game) drawObstacle(dst *core.Screen, l layout, top int, o Obstacle) {
	ch, color := BoxChar, core.ColorBrown
	switch o.Kind {
	case ObstacleTree:
		ch, color = TreeChar, core.ColorGreen
	case ObstacleHydrant:
		ch, color = HydrantChar, core.ColorRed
	}
	x := l.x + o.Column*l.cellW
	for dy := 0; dy < l.rowH; dy++ {
		for dx := 0; dx < l.cellW; dx++ {
			dst.SetColor(x+dx, top+dy, ch, color)
		}
	}
}

// drawVehicle fills the screen cells covered by the vehicle's extent,
// clipped to the field.
func (g *Game) drawVehicle(dst *core.Screen, l layout, rows int, v Vehicle) {
	color := core.ColorRed
	switch v.Class() {
	case VehicleMinibus:
		color = core.ColorOrange
	case VehicleBus:
		color = core.ColorYellow
	}

	half := v.Width() / 2
	x0 := int(math.Floor((v.X - half) * float64(l.cellW)))
	x1 := int(math.Ceil((v.X + half) * float64(l.cellW)))
	x0 = core.Clamp(x0, 0, l.fieldW)
	x1 = core.Clamp(x1, 0, l.fieldW)
	if x1 <= x0 {
		return
	}

	top := l.laneTop(v.Lane, rows)
	dst.DrawRect(core.NewRect(l.x+x0, top, x1-x0, l.rowH), VehicleChar, color)
}

// drawCenteredMessage displays a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	width := len([]rune(subtitle)) + 4
	if tw := len([]rune(title)) + 4; tw > width {
		width = tw
	}
	height := 5

	x := (dst.Width() - width) / 2
	y := (dst.Height() - height) / 2

	dst.DrawRect(core.NewRect(x+1, y+1, width-2, height-2), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(x, y, width, height))

	dst.DrawText(x+(width-len([]rune(title)))/2, y+1, title)
	dst.DrawText(x+(width-len([]rune(subtitle)))/2, y+3, subtitle)
}
