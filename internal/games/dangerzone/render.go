package dangerzone

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-dangerzone/internal/core"
)

// Glyphs used by the renderer.
const (
	PlayerChar  = '●'
	CrashChar   = '✹'
	TrailChar   = '•'
	BlurChar    = '·'
	StarChar    = '·'
	CeilingChar = '▼'
	FloorChar   = '▲'
	GapChar     = ' '
)

var (
	dangerGlyphs   = []rune{'✚', '✖'}
	particleGlyphs = []rune{'*', '+', 'x', '×'}
	particleColors = []core.Color{core.ColorOrange, core.ColorRed, core.ColorYellow}
)

// jawPeriod is the number of cells between gaps in the ceiling and floor teeth.
const jawPeriod = 6

// blinkPeriod is the cycle of the blinking "press any key" hint, in seconds.
const blinkPeriod = 1.4

// RenderOptions carries host-owned state drawn over the playfield.
type RenderOptions struct {
	NameField string // Current contents of the name prompt
	ShowTier  bool
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, s *Session) viewport {
	w := s.cfg.World
	return viewport{
		sx: float64(dst.Width()) / w.Width,
		sy: float64(dst.Height()) / w.Height,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), int(math.Floor(y * v.sy))
}

// Render draws the session into dst. It only reads the session.
func Render(dst *core.Screen, s *Session, opts RenderOptions) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	vp := newViewport(dst, s)

	drawBackground(dst, s, vp)
	drawJaws(dst, s, vp)
	drawDangers(dst, s, vp)
	drawPlayer(dst, s, vp)
	drawParticles(dst, s, vp)
	drawHUD(dst, s, opts)

	switch s.state {
	case StateIdle:
		drawTitle(dst, s)
	case StateGameOver:
		hint := ""
		if s.debounced() && blinkOn(s.uptime) {
			hint = "Press any key to continue"
		}
		drawCenteredMessage(dst, core.ColorRed, "GAME OVER", fmt.Sprintf("Score: %d", s.Score()), hint)
	case StateHighScoreEntry:
		drawCenteredMessage(dst, core.ColorYellow, "NEW HIGH SCORE!",
			fmt.Sprintf("Score: %d", s.Score()),
			"Name: "+opts.NameField+"_",
			"Enter to save")
	}
}

func blinkOn(t float64) bool {
	return math.Mod(t, blinkPeriod) < blinkPeriod/2
}

// drawBackground scrolls a sparse star layer at a quarter of the world speed.
func drawBackground(dst *core.Screen, s *Session, vp viewport) {
	shift := int(s.scroll * vp.sx / 4)
	h := dst.Height()
	for _, row := range []int{h / 3, 2 * h / 3} {
		for x := 0; x < dst.Width(); x++ {
			if (x+shift+row*7)%13 == 0 {
				dst.SetColored(x, row, StarChar, core.ColorDarkGray)
			}
		}
	}
}

// drawJaws draws the ceiling and floor teeth scrolling with the world.
func drawJaws(dst *core.Screen, s *Session, vp viewport) {
	shift := int(s.scroll * vp.sx)
	bottom := dst.Height() - 1
	for x := 0; x < dst.Width(); x++ {
		phase := (x + shift) % jawPeriod
		top, floor := CeilingChar, FloorChar
		if phase == jawPeriod-1 {
			top, floor = GapChar, GapChar
		}
		dst.SetColored(x, 0, top, core.ColorRed)
		dst.SetColored(x, bottom, floor, core.ColorRed)
	}
}

func drawDangers(dst *core.Screen, s *Session, vp viewport) {
	samples := s.cfg.Motion.BlurSamples / 3
	step := math.Max(s.cfg.Motion.BlurOffset, 1/vp.sx)
	for _, d := range s.pool.Active() {
		y := d.Pos
		// Blur trails behind the danger, to the right since it moves left.
		for i := samples; i >= 1; i-- {
			cx, cy := vp.cell(d.Dist+float64(i)*step, y)
			dst.SetColored(cx, cy, BlurChar, core.FadeColor(i, samples))
		}
		cx, cy := vp.cell(d.Dist, y)
		dst.SetColored(cx, cy, spinGlyph(dangerGlyphs, d.Angle), core.ColorMagenta)
	}
}

func drawPlayer(dst *core.Screen, s *Session, vp viewport) {
	x := s.cfg.Player.OffsetX
	if s.state.IsOver() {
		if !s.particles.Seeded() {
			cx, cy := vp.cell(x, s.player.Pos)
			dst.SetColored(cx, cy, CrashChar, core.ColorRed)
		}
		return
	}

	h := s.history
	step := math.Max(s.cfg.Motion.BlurOffset, 1/vp.sx)
	for i := h.Len() - 1; i >= 1; i-- {
		cx, cy := vp.cell(x-float64(i)*step, h.At(i))
		dst.SetColored(cx, cy, TrailChar, core.FadeColor(i, h.Cap()))
	}
	cx, cy := vp.cell(x, s.player.Pos)
	dst.SetColored(cx, cy, PlayerChar, core.ColorOrange)
}

func drawParticles(dst *core.Screen, s *Session, vp viewport) {
	for i, p := range s.particles.Particles() {
		cx, cy := vp.cell(p.X, p.Y)
		dst.SetColored(cx, cy, spinGlyph(particleGlyphs, p.Angle), particleColors[i%len(particleColors)])
	}
}

// spinGlyph picks a frame for a rotating sprite, one frame per 45 degrees.
func spinGlyph(frames []rune, angle float64) rune {
	n := len(frames)
	i := int(math.Floor(angle/45)) % n
	if i < 0 {
		i += n
	}
	return frames[i]
}

func drawHUD(dst *core.Screen, s *Session, opts RenderOptions) {
	if s.state == StateIdle {
		return
	}
	dst.DrawText(2, 1, fmt.Sprintf(" Score: %d ", s.Score()), core.ColorBrightWhite)
	if opts.ShowTier {
		tier := fmt.Sprintf(" Tier %d/%d ", s.Tier()+1, s.difficulty.TierCount())
		dst.DrawText(dst.Width()-len(tier)-2, 1, tier, core.ColorCyan)
	}
}

// drawTitle draws the idle screen: title, hint and the high-score table.
func drawTitle(dst *core.Screen, s *Session) {
	h := dst.Height()
	y := h / 5
	dst.DrawTextCentered(y, "FURRY DANGERZONE", core.ColorYellow)
	if blinkOn(s.uptime) {
		dst.DrawTextCentered(y+2, "Press any key to start, space to jump", core.ColorWhite)
	}

	entries := s.ledger.Entries()
	if len(entries) == 0 {
		return
	}
	y += 4
	dst.DrawTextCentered(y, "HIGH SCORES", core.ColorSky)
	for i, e := range entries {
		row := y + 2 + i
		if row >= h-1 {
			break
		}
		dst.DrawTextCentered(row, fmt.Sprintf("%d. %-16s %6d", i+1, e.Name, e.Score), core.ColorPaleSky)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
// Empty lines keep their row so the layout does not jump while blinking.
func drawCenteredMessage(dst *core.Screen, c core.Color, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l, core.ColorWhite)
	}
}
