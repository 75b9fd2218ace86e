package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/moonrunner/internal/core"
	"github.com/vovakirdan/moonrunner/internal/games/moonrunner"
	"github.com/vovakirdan/moonrunner/internal/leaderboard"
)

// DebugPrint glyph size.
const (
	glyphW = 6
	glyphH = 16
)

var (
	colorSky      = color.NRGBA{R: 0x0b, G: 0x10, B: 0x22, A: 0xff}
	colorStar     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe6}
	colorGround   = color.NRGBA{R: 0x12, G: 0x19, B: 0x33, A: 0xff}
	colorHorizon  = color.NRGBA{R: 0xa9, G: 0xb7, B: 0xff, A: 0x38}
	colorRock     = color.NRGBA{R: 0x98, G: 0xa5, B: 0xff, A: 0xff}
	colorRover    = color.NRGBA{R: 0xff, G: 0xd1, B: 0x66, A: 0xff}
	colorWheel    = color.NRGBA{R: 0x20, G: 0x2b, B: 0x52, A: 0xff}
	colorCrater   = color.NRGBA{R: 0x05, G: 0x07, B: 0x10, A: 0xff}
	colorRim      = color.NRGBA{R: 0xa9, G: 0xb7, B: 0xff, A: 0x59}
	colorPowerUp  = color.NRGBA{R: 0x5b, G: 0xff, B: 0xea, A: 0xe6}
	colorSuit     = color.NRGBA{R: 0xe0, G: 0xe6, B: 0xff, A: 0xff}
	colorVisor    = color.NRGBA{R: 0x2b, G: 0xd1, B: 0xc4, A: 0xff}
	colorPack     = color.NRGBA{R: 0x9f, G: 0xb3, B: 0xff, A: 0xff}
	colorBoots    = color.NRGBA{R: 0x8d, G: 0xa0, B: 0xff, A: 0xff}
	colorDust     = color.NRGBA{R: 0xa9, G: 0xb7, B: 0xff, A: 0xff}
	colorOverlay  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xa0}
	colorPanelRim = color.NRGBA{R: 0xa9, G: 0xb7, B: 0xff, A: 0xff}
)

// Draw renders the world and the current overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.world.Snapshot()

	screen.Fill(colorSky)
	drawStars(screen, s.Stars)
	drawGround(screen, s)
	drawObstacles(screen, s)
	drawPowerUps(screen, s.PowerUps)
	drawTrail(screen, s)
	drawPlayer(screen, s.Player)
	drawDust(screen, s.Dust)
	drawHUD(screen, s)

	switch g.mode {
	case modeNameEntry:
		g.drawNameEntry(screen)
	case modeScores:
		g.drawScores(screen)
	case modePlay:
		if s.Phase == core.PhaseIdle {
			drawTitle(screen)
		}
	}
}

func drawStars(screen *ebiten.Image, stars []moonrunner.Star) {
	for _, st := range stars {
		vector.DrawFilledCircle(screen, float32(st.X), float32(st.Y), float32(st.Radius), colorStar, true)
	}
}

func drawGround(screen *ebiten.Image, s moonrunner.Snapshot) {
	top := float32(s.Ground)
	vector.DrawFilledRect(screen, 0, top, float32(s.ViewW), float32(s.ViewH-s.Ground), colorGround, false)
	vector.StrokeLine(screen, 0, top, float32(s.ViewW), top, 1, colorHorizon, false)
}

func drawObstacles(screen *ebiten.Image, s moonrunner.Snapshot) {
	for _, o := range s.Obstacles {
		x, y, w, h := float32(o.X), float32(o.Y), float32(o.W), float32(o.H)
		switch o.Kind {
		case moonrunner.KindRock:
			vector.DrawFilledRect(screen, x, y, w, h, colorRock, false)
		case moonrunner.KindRover:
			vector.DrawFilledRect(screen, x, y, w, h, colorRover, false)
			wheel := min(18, w/3)
			vector.DrawFilledRect(screen, x+8, y+h-8, wheel, 8, colorWheel, false)
			vector.DrawFilledRect(screen, x+w-8-wheel, y+h-8, wheel, 8, colorWheel, false)
		case moonrunner.KindCrater:
			ground := float32(s.Ground)
			vector.DrawFilledRect(screen, x, ground, w, h, colorCrater, false)
			vector.StrokeRect(screen, x, ground, w, h, 1, colorRim, false)
		}
	}
}

func drawPowerUps(screen *ebiten.Image, powerUps []moonrunner.PowerUp) {
	for _, pu := range powerUps {
		// Gentle pulse keyed to position so pickups do not beat in sync.
		r := pu.Radius + math.Sin(pu.X*0.02)*1.5
		vector.DrawFilledCircle(screen, float32(pu.X), float32(pu.Y), float32(r), colorPowerUp, true)
		vector.StrokeCircle(screen, float32(pu.X), float32(pu.Y), float32(r+2), 2, withAlpha(colorPowerUp, 0.5), true)
	}
}

func drawTrail(screen *ebiten.Image, s moonrunner.Snapshot) {
	p := s.Player
	for _, t := range s.Trail {
		if t.Alpha <= 0 {
			continue
		}
		vector.DrawFilledRect(screen, float32(t.X), float32(t.Y), float32(p.W), float32(p.H), withAlpha(colorPowerUp, t.Alpha), false)
	}
}

func drawPlayer(screen *ebiten.Image, p moonrunner.Player) {
	x, y, w, h := float32(p.X), float32(p.Y), float32(p.W), float32(p.H)

	vector.DrawFilledRect(screen, x, y, w, h, colorSuit, false)
	vector.DrawFilledRect(screen, x+6, y+10, w-12, min(22, h/3), colorVisor, false)
	vector.DrawFilledRect(screen, x-8, y+18, 8, min(30, h/2), colorPack, false)
	vector.DrawFilledRect(screen, x, y+h-10, w, 10, colorBoots, false)

	if p.Boosted() {
		vector.StrokeRect(screen, x-4, y-4, w+8, h+8, 3, colorPowerUp, false)
	}
}

func drawDust(screen *ebiten.Image, dust []moonrunner.Dust) {
	for _, d := range dust {
		if d.Alpha <= 0 || d.Radius <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), float32(d.Radius), withAlpha(colorDust, d.Alpha), true)
	}
}

func drawHUD(screen *ebiten.Image, s moonrunner.Snapshot) {
	hud := fmt.Sprintf("TIME %.1fs  SPD %.0f", s.Elapsed, s.Speed)
	if tag := s.SpeedTag(); tag != "" {
		hud += " " + tag
	}
	if s.Player.Boosted() {
		hud += fmt.Sprintf("  ANTI-G %.1fs", s.Player.AntiGravity)
	}
	ebitenutil.DebugPrintAt(screen, hud, 12, 8)
}

func drawTitle(screen *ebiten.Image) {
	lines := []string{
		"MOON RUNNER",
		"",
		"SPACE / UP / tap top: jump",
		"DOWN / S / tap bottom: fast fall",
		"",
		"press SPACE or ENTER to launch",
	}
	drawPanel(screen, lines)
}

func (g *Game) drawNameEntry(screen *ebiten.Image) {
	cursor := ""
	if len(g.name.buf) < leaderboard.NameLen {
		cursor = "_"
	}
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("%.1fs  %s", g.elapsed, causeText(g.cause)),
		"",
		"NEW RECORD!",
		"NAME > " + g.name.Text() + cursor,
		"",
	}
	lines = append(lines, scoreLines(g)...)
	lines = append(lines, "", "ENTER save   ESC skip")
	drawPanel(screen, lines)
}

func (g *Game) drawScores(screen *ebiten.Image) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("%.1fs  %s", g.elapsed, causeText(g.cause)),
		"",
	}
	lines = append(lines, scoreLines(g)...)
	lines = append(lines, "", "ENTER / SPACE run again   Q quit")
	drawPanel(screen, lines)
}

// scoreLines formats the top five with a marker on the current run.
func scoreLines(g *Game) []string {
	if len(g.entries) == 0 {
		return []string{"No runs recorded yet."}
	}
	lines := []string{"TOP 5"}
	for i, e := range g.entries {
		marker := " "
		if i == g.highlight {
			marker = ">"
		}
		lines = append(lines, fmt.Sprintf("%s %d. %-5s %7.1fs", marker, i+1, e.Name, e.Score))
	}
	return lines
}

// drawPanel draws lines centered in a dimmed box.
func drawPanel(screen *ebiten.Image, lines []string) {
	b := screen.Bounds()
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	pw := float32(width*glyphW + 40)
	ph := float32(len(lines)*glyphH + 32)
	px := (float32(b.Dx()) - pw) / 2
	py := (float32(b.Dy()) - ph) / 3

	vector.DrawFilledRect(screen, px, py, pw, ph, colorOverlay, false)
	vector.StrokeRect(screen, px, py, pw, ph, 1, colorPanelRim, false)

	for i, l := range lines {
		x := int(px) + (int(pw)-len(l)*glyphW)/2
		ebitenutil.DebugPrintAt(screen, l, x, int(py)+16+i*glyphH)
	}
}

func causeText(cause string) string {
	switch cause {
	case "":
		return ""
	case "crater":
		return "fell into a crater"
	default:
		return "hit a " + cause
	}
}

func withAlpha(c color.NRGBA, a float64) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(core.ClampF(a, 0, 1) * 255)}
}
