package moonrunner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/moonrunner/internal/core"
)

// Terminal cell size in world units. A cell is roughly twice as tall as it is
// wide, so the vertical scale is doubled to keep shapes proportional.
const (
	CellW = 10.0
	CellH = 20.0
)

// Visual characters for terminal rendering.
const (
	StarChar     = '.'
	GroundChar   = '▔'
	RegolithChar = '░'
	RockChar     = '▲'
	RoverBody    = '▆'
	RoverWheel   = 'o'
	CraterEdgeL  = '◟'
	CraterEdgeR  = '◞'
	PowerUpChar  = '◉'
	TrailChar    = '·'
	DustChar     = '∙'
	SuitChar     = '█'
	HelmetChar   = '◍'
	BootChar     = '▚'
)

// ViewportForCells returns the world viewport that maps onto a terminal of
// the given size.
func ViewportForCells(cols, rows int) (w, h float64) {
	return float64(cols) * CellW, float64(rows) * CellH
}

// cellX converts a world x to a terminal column.
func cellX(x float64) int {
	return int(math.Floor(x / CellW))
}

// cellY converts a world y to a terminal row.
func cellY(y float64) int {
	return int(math.Floor(y / CellH))
}

// cellSpan converts a world interval to a half-open column range of at least
// one cell.
func cellSpan(x, w float64) (int, int) {
	x0 := cellX(x)
	x1 := int(math.Ceil((x + w) / CellW))
	return x0, max(x1, x0+1)
}

// Render draws a snapshot onto a terminal screen buffer.
func Render(s Snapshot, dst *core.Screen) {
	dst.Clear()

	groundRow := cellY(s.Ground)

	for _, st := range s.Stars {
		if y := cellY(st.Y); y < groundRow {
			dst.SetColored(cellX(st.X), y, StarChar, core.ColorGray)
		}
	}

	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGround)
	dst.FillRect(0, groundRow+1, dst.Width(), dst.Height()-groundRow-1, RegolithChar, core.ColorGround)

	for _, o := range s.Obstacles {
		drawObstacle(dst, o, groundRow)
	}

	for _, p := range s.PowerUps {
		dst.SetColored(cellX(p.X), cellY(p.Y), PowerUpChar, core.ColorCyan)
	}

	for _, m := range s.Trail {
		dst.SetColored(cellX(m.X), cellY(m.Y+s.Player.H/2), TrailChar, core.ColorCyan)
	}

	for _, d := range s.Dust {
		dst.SetColored(cellX(d.X), cellY(d.Y)-1, DustChar, core.ColorDust)
	}

	drawPlayer(dst, s.Player)
	drawHUD(dst, s)

	switch s.Phase {
	case core.PhaseIdle:
		drawCenteredMessage(dst, "MOON RUNNER", "SPACE jump  S fast fall  ENTER start")
	case core.PhaseOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Survived %.2fs  |  ENTER to retry", s.Elapsed))
	case core.PhaseRunning:
	}
}

// drawObstacle renders one obstacle by kind.
func drawObstacle(dst *core.Screen, o Obstacle, groundRow int) {
	x0, x1 := cellSpan(o.X, o.W)

	switch o.Kind {
	case KindRock:
		top := cellY(o.Y)
		dst.FillRect(x0, top, x1-x0, max(groundRow-top, 1), RockChar, core.ColorBlue)
	case KindRover:
		top := cellY(o.Y)
		dst.FillRect(x0, top, x1-x0, max(groundRow-top-1, 1), RoverBody, core.ColorYellow)
		for x := x0; x < x1; x += 2 {
			dst.SetColored(x, groundRow-1, RoverWheel, core.ColorYellow)
		}
	case KindCrater:
		// A hole in the surface: blank the ground line and one row below.
		dst.FillRect(x0, groundRow, x1-x0, 2, ' ', core.ColorDefault)
		dst.SetColored(x0, groundRow, CraterEdgeL, core.ColorGround)
		dst.SetColored(x1-1, groundRow, CraterEdgeR, core.ColorGround)
	}
}

// drawPlayer renders the astronaut as a helmet over a suit with boots.
func drawPlayer(dst *core.Screen, p Player) {
	color := core.ColorWhite
	if p.Boosted() {
		color = core.ColorBrightCyan
	}

	x0, x1 := cellSpan(p.X, p.W)
	bottom := cellY(p.Feet()) - 1
	top := bottom - int(math.Round(p.H/CellH)) + 1

	for y := top; y <= bottom; y++ {
		ch := SuitChar
		switch y {
		case top:
			ch = HelmetChar
		case bottom:
			ch = BootChar
		}
		for x := x0; x < x1; x++ {
			dst.SetColored(x, y, ch, color)
		}
	}
}

// drawHUD renders elapsed time, speed and the anti-gravity timer.
func drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" TIME %6.2fs ", s.Elapsed), core.ColorWhite)

	speed := fmt.Sprintf(" SPD %3.0f ", s.Speed)
	if tag := s.SpeedTag(); tag != "" {
		speed = fmt.Sprintf(" SPD %3.0f %s ", s.Speed, tag)
	}
	dst.DrawTextColored(dst.Width()-len(speed)-2, 0, speed, core.ColorGray)

	if s.Player.Boosted() {
		dst.DrawTextColored(2, 1, fmt.Sprintf(" ANTI-G %.1fs ", s.Player.AntiGravity), core.ColorBrightCyan)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 3

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorGray)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightCyan)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
