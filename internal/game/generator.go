package game

import (
	"math/rand"

	"github.com/vovakirdan/friday-breakfast/internal/config"
	"github.com/vovakirdan/friday-breakfast/internal/core"
)

// Generator lays out cubicles and coworkers for a run.
//
// The world between the generator margins is cut into equal horizontal
// bands. Every entity is placed fully inside one band and inside the
// viewport width, which caps how crowded any stretch of floor can get.
// Entities may overlap each other.
type Generator struct {
	cfg    config.GeneratorConfig
	patrol config.PatrolConfig
	rng    *rand.Rand
}

// NewGenerator creates a generator with the given RNG seed.
func NewGenerator(cfg config.Config, seed int64) *Generator {
	return &Generator{
		cfg:    cfg.Generator,
		patrol: cfg.Patrol,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Reset reseeds the generator.
func (g *Generator) Reset(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// Band returns the vertical extent [top, bottom] of section i.
// Section 0 is the lowest band, nearest the player's start.
func (g *Generator) Band(i int, worldHeight float64) (top, bottom float64) {
	h := g.sectionHeight(worldHeight)
	bottom = worldHeight - g.cfg.BottomMargin - float64(i)*h
	return bottom - h, bottom
}

func (g *Generator) sectionHeight(worldHeight float64) float64 {
	if g.cfg.Sections <= 0 {
		return 0
	}
	return (worldHeight - g.cfg.TopMargin - g.cfg.BottomMargin) / float64(g.cfg.Sections)
}

// Generate builds a fresh layout for a viewport of the given width.
func (g *Generator) Generate(viewportWidth, worldHeight float64) Layout {
	layout := Layout{
		Obstacles: make([]Obstacle, 0, g.cfg.Sections*g.cfg.MaxObstacles),
		Patrols:   make([]Patrol, 0, g.cfg.Sections/2+1),
	}

	bandH := g.sectionHeight(worldHeight)
	if viewportWidth <= 0 || bandH <= 0 {
		return layout
	}

	for i := 0; i < g.cfg.Sections; i++ {
		top, _ := g.Band(i, worldHeight)

		count := g.cfg.MinObstacles
		if spread := g.cfg.MaxObstacles - g.cfg.MinObstacles; spread > 0 {
			count += g.rng.Intn(spread + 1)
		}
		for j := 0; j < count; j++ {
			w := g.span(g.cfg.MinWidth, g.cfg.MaxWidth)
			h := g.span(g.cfg.MinHeight, g.cfg.MaxHeight)
			r, ok := g.place(w, h, g.cfg.SideMargin, viewportWidth, top, bandH)
			if !ok {
				continue
			}
			layout.Obstacles = append(layout.Obstacles, Obstacle{Rect: r})
		}

		if g.rng.Float64() < g.patrol.Chance {
			size := g.patrol.Size
			r, ok := g.place(size, size, g.patrol.SideMargin, viewportWidth, top, bandH)
			if !ok {
				continue
			}
			dir := 1
			if g.rng.Float64() < 0.5 {
				dir = -1
			}
			layout.Patrols = append(layout.Patrols, Patrol{
				Rect:  r,
				Dir:   dir,
				Speed: g.span(g.patrol.MinSpeed, g.patrol.MaxSpeed),
			})
		}
	}

	return layout
}

// place positions a w×h rectangle at a random spot inside the band that
// starts at top and is bandH tall, keeping margin from both side walls.
// Sizes shrink to fit; the margin is dropped when the viewport is too
// narrow to honor it.
func (g *Generator) place(w, h, margin, viewportWidth, top, bandH float64) (core.Rect, bool) {
	room := viewportWidth - 2*margin
	if room <= 0 {
		margin = 0
		room = viewportWidth
	}
	w = min(w, room)
	h = min(h, bandH)
	if w <= 0 || h <= 0 {
		return core.Rect{}, false
	}

	x := margin + g.rng.Float64()*(room-w)
	y := top + g.rng.Float64()*(bandH-h)
	return core.NewRect(x, y, w, h), true
}

// span returns a uniform value in [lo, hi].
func (g *Generator) span(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Float64()*(hi-lo)
}
