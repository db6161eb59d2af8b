package tui

import (
	"math"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/friday-breakfast/internal/config"
	"github.com/vovakirdan/friday-breakfast/internal/core"
	"github.com/vovakirdan/friday-breakfast/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrown:        lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorTan:          lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
	core.ColorDarkTan:      lipgloss.NewStyle().Foreground(lipgloss.Color("137")),
	core.ColorDarkGreen:    lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
}

// carpetTile is the side of one carpet tile in world units.
const carpetTile = 48

// viewport maps world units onto terminal cells. The horizontal scale fits
// the world width into the available columns; the vertical scale follows
// from the cell aspect ratio so squares stay square.
type viewport struct {
	cols, rows  int
	colsPerUnit float64
	rowsPerUnit float64
	camera      float64
}

func newViewport(cols, rows int, worldWidth, cellWidth, cellHeight float64) viewport {
	v := viewport{cols: max(cols, 0), rows: max(rows, 0)}
	if worldWidth > 0 && cellHeight > 0 {
		v.colsPerUnit = float64(v.cols) / worldWidth
		v.rowsPerUnit = v.colsPerUnit * cellWidth / cellHeight
	}
	return v
}

// height returns how many world units fit in the rows.
func (v viewport) height() float64 {
	if v.rowsPerUnit <= 0 {
		return 0
	}
	return float64(v.rows) / v.rowsPerUnit
}

// cellRect converts a world rectangle into cells, clipped to the viewport.
// Rectangles smaller than a cell still cover one. ok is false when nothing
// of r is on screen.
func (v viewport) cellRect(r core.Rect) (x, y, w, h int, ok bool) {
	if v.colsPerUnit <= 0 || v.rowsPerUnit <= 0 {
		return 0, 0, 0, 0, false
	}

	x0 := int(math.Floor(r.X * v.colsPerUnit))
	x1 := int(math.Ceil(r.Right() * v.colsPerUnit))
	y0 := int(math.Floor((r.Y - v.camera) * v.rowsPerUnit))
	y1 := int(math.Ceil((r.Bottom() - v.camera) * v.rowsPerUnit))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	x0, x1 = max(x0, 0), min(x1, v.cols)
	y0, y1 = max(y0, 0), min(y1, v.rows)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	return x0, y0, x1 - x0, y1 - y0, true
}

// toWorld returns the world coordinates of the center of cell (col, row).
func (v viewport) toWorld(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / v.colsPerUnit, v.camera + (float64(row)+0.5)/v.rowsPerUnit
}

// renderer draws snapshots into a screen buffer.
type renderer struct {
	cfg    config.TUIConfig
	noise  *perlin.Perlin
	screen *core.Screen
}

func newRenderer(cfg config.TUIConfig, seed int64) *renderer {
	return &renderer{
		cfg:    cfg,
		noise:  perlin.NewPerlin(2, 2, 3, seed),
		screen: core.NewScreen(0, 0),
	}
}

// draw paints the playfield of snap. The screen is resized to the viewport.
func (r *renderer) draw(snap game.Snapshot, v viewport) *core.Screen {
	if r.screen.Width() != v.cols || r.screen.Height() != v.rows {
		r.screen.Resize(v.cols, v.rows)
	}
	v.camera = snap.CameraOffset

	r.drawCarpet(v)
	r.drawGoal(snap.Goal, v)
	for _, ob := range snap.Obstacles {
		r.drawObstacle(ob.Rect, v)
	}
	for _, p := range snap.Patrols {
		r.drawPatrol(p.Rect, v)
	}
	if x, y, w, h, ok := v.cellRect(snap.Player); ok {
		r.screen.FillRect(x, y, w, h, '█', core.ColorBrightYellow)
	}
	return r.screen
}

// drawCarpet shades the floor in a checker of tiles, roughened with
// Perlin noise when enabled.
func (r *renderer) drawCarpet(v viewport) {
	for row := 0; row < v.rows; row++ {
		for col := 0; col < v.cols; col++ {
			wx, wy := v.toWorld(col, row)
			tile := int(math.Floor(wx/carpetTile)) + int(math.Floor(wy/carpetTile))

			ch, color := ' ', core.ColorTan
			if tile%2 == 0 {
				ch, color = '·', core.ColorDarkTan
			}
			if r.cfg.FloorNoise {
				n := r.noise.Noise2D(wx*r.cfg.NoiseScale, wy*r.cfg.NoiseScale)
				switch {
				case n > 0.25:
					ch, color = '░', core.ColorDarkTan
				case n > 0.15:
					ch = '░'
				}
			}
			r.screen.SetCell(col, row, ch, color)
		}
	}
}

func (r *renderer) drawGoal(goal core.Rect, v viewport) {
	x, y, w, h, ok := v.cellRect(goal)
	if !ok {
		return
	}
	r.screen.FillRect(x, y, w, h, '▓', core.ColorDarkGreen)
	if h >= 3 {
		r.screen.DrawHLine(x, y+h-1, w, '▀', core.ColorGreen)
	}

	// The banner sits a little below the middle of the band.
	banner := int(math.Floor((goal.Y + 0.6*goal.H - v.camera) * v.rowsPerUnit))
	banner = core.Clamp(banner, y, y+h-1)
	r.screen.DrawTextCenteredColor(banner, " FRIDAY BREAKFAST ", core.ColorBrightWhite)
}

func (r *renderer) drawObstacle(ob core.Rect, v viewport) {
	x, y, w, h, ok := v.cellRect(ob)
	if !ok {
		return
	}
	r.screen.FillRect(x, y, w, h, '▒', core.ColorBrown)
	if w >= 2 && h >= 2 {
		r.screen.DrawBox(x, y, w, h, core.ColorBrown)
	}
	// Wide cubicles hold two desks.
	if w >= 10 && h >= 3 {
		r.screen.DrawVLine(x+w/2, y+1, h-2, '│', core.ColorBrown)
	}
}

// drawPatrol draws a coworker with a pair of eyes on its top row.
func (r *renderer) drawPatrol(p core.Rect, v viewport) {
	x, y, w, h, ok := v.cellRect(p)
	if !ok {
		return
	}
	r.screen.FillRect(x, y, w, h, '█', core.ColorRed)
	if w >= 3 {
		r.screen.SetCell(x, y, '•', core.ColorBrightWhite)
		r.screen.SetCell(x+w-1, y, '•', core.ColorBrightWhite)
	}
}

// drawJoystick draws the widget ring centered on (cx, cy) and the knob.
// Radii are in cells.
func drawJoystick(s *core.Screen, cx, cy, rx, ry int, knobX, knobY int, active bool) {
	if rx <= 0 || ry <= 0 {
		return
	}
	ring := core.ColorGray
	for i := 0; i < 32; i++ {
		a := float64(i) * 2 * math.Pi / 32
		x := cx + int(math.Round(float64(rx)*math.Cos(a)))
		y := cy + int(math.Round(float64(ry)*math.Sin(a)))
		s.SetCell(x, y, '·', ring)
	}

	knob := core.ColorWhite
	if active {
		knob = core.ColorBrightWhite
	}
	s.SetCell(cx+knobX, cy+knobY, '●', knob)
}

// drawMessage draws a centered bordered box holding lines.
func drawMessage(s *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	w := min(width+4, s.Width())
	h := min(len(lines)+2, s.Height())
	if w < 2 || h < 2 {
		return
	}
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.FillRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, c)
	for i, l := range lines {
		s.DrawTextCenteredColor(y+1+i, l, core.ColorBrightWhite)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
