package citynet

import (
	"image"
	"math"
	"math/rand"

	"github.com/boljen/go-bitmap"
)

// directions we grow a settlement in
var growth = [4]image.Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// layoutBuilder grows the footprints of one settlement. All in progress
// state lives here & every random decision is drawn from rng in a fixed
// order, so a given rng always produces the same layout.
type layoutBuilder struct {
	t      *Terrain
	cfg    *LayoutConfig
	rng    *rand.Rand
	center image.Point
	radius int

	// occupied marks footprint cells & their street buffers
	occupied bitmap.Bitmap

	footprints []*Footprint
}

// newLayoutBuilder returns an empty builder for a settlement at center
func newLayoutBuilder(t *Terrain, cfg *LayoutConfig, center image.Point, radius int, rng *rand.Rand) *layoutBuilder {
	return &layoutBuilder{
		t:        t,
		cfg:      cfg,
		rng:      rng,
		center:   center,
		radius:   radius,
		occupied: bitmap.New(t.Width * t.Height),
	}
}

// rollRange returns a value in [lo, hi]
func (b *layoutBuilder) rollRange(lo, hi int) int {
	return lo + b.rng.Intn(hi-lo+1)
}

// build places the central footprint then grows outward until target
// footprints exist or attempts run out.
func (b *layoutBuilder) build(target int) []*Footprint {
	w := b.rollRange(b.cfg.CentralMin, b.cfg.CentralMax)
	h := b.rollRange(b.cfg.CentralMin, b.cfg.CentralMax)
	central := &Footprint{
		Origin: b.center.Sub(image.Pt(w/2, h/2)),
		Width:  w,
		Height: h,
		Shape:  Shape{Kind: Rectangle},
		Use:    Civic,
	}
	if !b.tryPlace(central) {
		return b.footprints
	}

	attempts := target * b.cfg.AttemptFactor
	for i := 0; i < attempts && len(b.footprints) < target; i++ {
		b.grow()
	}

	return b.footprints
}

// grow makes a single attempt at adding a footprint next to an existing one.
func (b *layoutBuilder) grow() {
	src := b.footprints[b.rng.Intn(len(b.footprints))]
	dir := growth[b.rng.Intn(len(growth))]
	w := b.rollRange(b.cfg.BlockMin, b.cfg.BlockMax)
	h := b.rollRange(b.cfg.BlockMin, b.cfg.BlockMax)
	jitter := b.rng.Intn(3) - 1
	sw := b.cfg.StreetWidth

	var origin image.Point
	switch {
	case dir.X > 0:
		origin = image.Pt(src.Origin.X+src.Width+sw, src.Origin.Y+jitter)
	case dir.X < 0:
		origin = image.Pt(src.Origin.X-w-sw, src.Origin.Y+jitter)
	case dir.Y > 0:
		origin = image.Pt(src.Origin.X+jitter, src.Origin.Y+src.Height+sw)
	default:
		origin = image.Pt(src.Origin.X+jitter, src.Origin.Y-h-sw)
	}

	mid := origin.Add(image.Pt(w/2, h/2)).Sub(b.center)
	distSq := mid.X*mid.X + mid.Y*mid.Y
	if distSq > b.radius*b.radius {
		return
	}

	use := b.pickUse(math.Sqrt(float64(distSq)) / float64(b.radius))
	shape := b.pickShape(w, h)
	b.tryPlace(&Footprint{Origin: origin, Width: w, Height: h, Shape: shape, Use: use})
}

// pickUse rolls a building use; civic & trade near the centre,
// industry & soldiers at the edge.
func (b *layoutBuilder) pickUse(distRatio float64) Use {
	roll := b.rng.Float64()
	switch {
	case distRatio < 0.3:
		switch {
		case roll < 0.08:
			return Civic
		case roll < 0.25:
			return Commercial
		case roll < 0.45:
			return Market
		}
	case distRatio < 0.65:
		switch {
		case roll < 0.12:
			return Commercial
		case roll < 0.22:
			return Industrial
		}
	default:
		switch {
		case roll < 0.15:
			return Industrial
		case roll < 0.22:
			return Military
		}
	}
	return Residential
}

// pickShape rolls a footprint shape. Small footprints are always rectangles.
func (b *layoutBuilder) pickShape(w, h int) Shape {
	if w < 4 || h < 4 {
		return Shape{Kind: Rectangle}
	}

	roll := b.rng.Float64()
	switch {
	case roll < 0.45:
		return Shape{Kind: Rectangle}
	case roll < 0.65:
		return Shape{Kind: LShape, Corner: Corner(b.rng.Intn(4))}
	case roll < 0.78:
		return Shape{Kind: TShape, Side: Side(b.rng.Intn(4))}
	case roll < 0.88:
		return Shape{Kind: UShape, Side: Side(b.rng.Intn(4))}
	case roll < 0.95:
		return Shape{Kind: Plus}
	}
	return Shape{Kind: ZShape, Flipped: b.rng.Float64() < 0.5}
}

// tryPlace adds f if all of its tiles are valid, reporting if it did
func (b *layoutBuilder) tryPlace(f *Footprint) bool {
	tiles := f.Tiles()
	if !b.canPlace(tiles) {
		return false
	}
	b.mark(tiles)
	b.footprints = append(b.footprints, f)
	return true
}

// canPlace returns if every tile is inside the margin, on buildable land &
// clear of other footprints and their streets.
func (b *layoutBuilder) canPlace(tiles []image.Point) bool {
	if len(tiles) == 0 {
		return false
	}
	m := b.cfg.Margin
	for _, p := range tiles {
		if p.X < m || p.Y < m || p.X >= b.t.Width-m || p.Y >= b.t.Height-m {
			return false
		}
		if !b.t.CanBuildOn(p, b.cfg.MaxBuildableHeight) {
			return false
		}
		if b.occupied.Get(b.t.index(p)) {
			return false
		}
	}
	return true
}

// mark sets tiles & every cell within StreetWidth of them as occupied
func (b *layoutBuilder) mark(tiles []image.Point) {
	sw := b.cfg.StreetWidth
	for _, p := range tiles {
		for dy := -sw; dy <= sw; dy++ {
			for dx := -sw; dx <= sw; dx++ {
				n := p.Add(image.Pt(dx, dy))
				if b.t.InBounds(n) {
					b.occupied.Set(b.t.index(n), true)
				}
			}
		}
	}
}
