package dodge

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/cashdodge/internal/core"
)

// Visual characters for rendering
const (
	CharacterChar  = '█'
	CharacterFace  = '☻'
	ProjectileChar = '▼'
	CashChar       = '$'
	BackgroundChar = '·'
	HealthFull     = '█'
	HealthEmpty    = '░'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// viewport maps world coordinates onto the playfield area of a screen.
type viewport struct {
	sx, sy  float64
	offsetY int
	w, h    int
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	w := dst.Width()
	h := dst.Height() - hudRows
	if h < 1 {
		h = 1
	}
	return viewport{
		sx:      float64(w) / worldW,
		sy:      float64(h) / worldH,
		offsetY: hudRows,
		w:       w,
		h:       h,
	}
}

// rect converts a world rectangle into screen cells, at least one cell in each direction.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	x0 := int(math.Floor(x * v.sx))
	y0 := int(math.Floor(y * v.sy))
	x1 := int(math.Ceil((x + w) * v.sx))
	y1 := int(math.Ceil((y + h) * v.sy))
	return core.NewRect(x0, y0+v.offsetY, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot(), g.paused)
}

// RenderSnapshot draws a snapshot. It is shared by local play and replays of
// snapshots received from elsewhere.
func RenderSnapshot(dst *core.Screen, s Snapshot, paused bool) {
	dst.Clear()
	v := newViewport(dst, s.WorldW, s.WorldH)

	drawBackground(dst, v, s)

	if s.Collectible.Visible {
		c := s.Collectible
		r := v.rect(c.X, c.Y, c.W, c.H)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dst.SetColored(x, y, CashChar, core.ColorBrightGreen)
			}
		}
	}

	for _, p := range s.Projectiles {
		r := v.rect(p.X, p.Y, p.W, p.H)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				dst.SetColored(x, y, ProjectileChar, core.ColorBrightRed)
			}
		}
	}

	drawCharacter(dst, v, s.Character)

	for _, n := range s.Notices {
		drawNotice(dst, v, n)
	}

	drawHUD(dst, s)

	if paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if s.Phase == PhaseGameOver {
		drawCenteredMessage(dst, fmt.Sprintf("Your score was %d.", s.Score), "Press R to play again")
	}
}

// drawBackground draws faint stripes that scroll with the background offset.
func drawBackground(dst *core.Screen, v viewport, s Snapshot) {
	if s.WorldH <= 0 {
		return
	}
	const stripes = 4
	spacing := s.WorldH / stripes
	for i := 0; i <= stripes; i++ {
		worldY := math.Mod(float64(i)*spacing+s.ScrollOffset, s.WorldH)
		y := int(worldY*v.sy) + v.offsetY
		for x := i % 2; x < v.w; x += 4 {
			dst.SetColored(x, y, BackgroundChar, core.ColorGray)
		}
	}
}

func drawCharacter(dst *core.Screen, v viewport, c CharacterState) {
	r := v.rect(c.X, c.Y, c.W, c.H)
	color := core.ColorBrightYellow
	if c.HealthFraction() < 0.25 {
		color = core.ColorOrange
	}
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, CharacterChar, color)
		}
	}
	cx, _ := r.Center()
	dst.SetColored(cx, r.Y, CharacterFace, core.ColorBrightWhite)
}

func drawNotice(dst *core.Screen, v viewport, n Notice) {
	y := int(n.Y*v.sy) + v.offsetY
	switch n.Kind {
	case EventLevelUp:
		x := (dst.Width() - len([]rune(n.Text))) / 2
		dst.DrawTextColored(core.Max(0, x), y, n.Text, core.ColorBrightCyan)
	default:
		x := int(n.X * v.sx)
		if y > v.offsetY {
			y--
		}
		dst.DrawTextColored(x, y, n.Text, core.ColorBrightGreen)
	}
}

// drawHUD renders score, level and the health bar on the top row.
func drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawHLine(0, 0, dst.Width(), ' ')
	left := fmt.Sprintf(" Bank: $%d  Lvl: %d ", s.Score, s.Level)
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	barWidth := dst.Width() / 4
	if barWidth < 5 {
		return
	}
	filled := int(math.Round(s.Character.HealthFraction() * float64(barWidth)))
	bar := strings.Repeat(string(HealthFull), filled) + strings.Repeat(string(HealthEmpty), barWidth-filled)
	x := dst.Width() - barWidth - 2
	if x <= len(left) {
		return
	}
	barColor := core.ColorGreen
	switch f := s.Character.HealthFraction(); {
	case f < 0.25:
		barColor = core.ColorRed
	case f < 0.5:
		barColor = core.ColorYellow
	}
	dst.DrawTextColored(x, 0, bar, barColor)
}

// drawCenteredMessage draws a boxed two-line message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	width := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	height := 4
	x := (dst.Width() - width) / 2
	y := (dst.Height() - height) / 2

	box := core.NewRect(x, y, width, height)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(x+(width-len([]rune(title)))/2, y+1, title, core.ColorBrightYellow)
	dst.DrawText(x+(width-len([]rune(subtitle)))/2, y+2, subtitle)
}
