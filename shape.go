package citynet

import (
	"image"
)

// ShapeKind names the outline of a building footprint
type ShapeKind string

const (
	Rectangle ShapeKind = "rectangle" // plain block
	LShape    ShapeKind = "l"         // rectangle with one corner cut away
	TShape    ShapeKind = "t"         // bar with a stem, see Side
	UShape    ShapeKind = "u"         // three sided courtyard block, see Side
	Plus      ShapeKind = "plus"      // cross
	ZShape    ShapeKind = "z"         // two offset halves joined by a column, see Flipped
)

// Corner of a rectangle
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Side of a rectangle
type Side int

const (
	Up Side = iota
	Down
	Left
	Right
)

// Shape is a footprint outline. Only the field relevant to Kind is read:
// Corner for LShape, Side for TShape & UShape, Flipped for ZShape.
type Shape struct {
	Kind    ShapeKind
	Corner  Corner `json:",omitempty"`
	Side    Side   `json:",omitempty"`
	Flipped bool   `json:",omitempty"`
}

// covers returns if the cell (x,y), relative to the footprint origin, is
// part of a w x h footprint of this shape.
func (s Shape) covers(x, y, w, h int) bool {
	switch s.Kind {
	case LShape:
		cw, ch := w/2, h/2
		switch s.Corner {
		case TopLeft:
			return !(x < cw && y < ch)
		case TopRight:
			return !(x >= w-cw && y < ch)
		case BottomLeft:
			return !(x < cw && y >= h-ch)
		default:
			return !(x >= w-cw && y >= h-ch)
		}
	case TShape:
		aw, ah := w/3, h/3
		switch s.Side {
		case Up:
			return y >= ah || (x >= aw && x < w-aw)
		case Down:
			return y < h-ah || (x >= aw && x < w-aw)
		case Left:
			return x >= aw || (y >= ah && y < h-ah)
		default:
			return x < w-aw || (y >= ah && y < h-ah)
		}
	case UShape:
		ww, wh := maxint(1, w/3), maxint(1, h/3)
		switch s.Side {
		case Up:
			return y >= wh || x < ww || x >= w-ww
		case Down:
			return y < h-wh || x < ww || x >= w-ww
		case Left:
			return x >= ww || y < wh || y >= h-wh
		default:
			return x < w-ww || y < wh || y >= h-wh
		}
	case Plus:
		aw, ah := w/3, h/3
		return (y >= ah && y < h-ah) || (x >= aw && x < w-aw)
	case ZShape:
		sw, sh := w/2, h/2
		joint := x >= sw-1 && x <= sw
		if s.Flipped {
			return (y < sh && x >= sw) || (y >= sh && x < sw) || joint
		}
		return (y < sh && x < sw) || (y >= sh && x >= sw) || joint
	}
	return true
}

// Footprint is a single building block within a settlement.
type Footprint struct {
	Origin image.Point // top left
	Width  int
	Height int
	Shape  Shape
	Use    Use
}

// Center of the footprint's bounding box
func (f *Footprint) Center() image.Point {
	return image.Pt(f.Origin.X+f.Width/2, f.Origin.Y+f.Height/2)
}

// Bounds of the footprint
func (f *Footprint) Bounds() image.Rectangle {
	return image.Rect(f.Origin.X, f.Origin.Y, f.Origin.X+f.Width, f.Origin.Y+f.Height)
}

// Tiles returns every cell the footprint occupies in row-major order.
// It depends only on origin, size & shape.
func (f *Footprint) Tiles() []image.Point {
	return shapeTiles(f.Origin, f.Width, f.Height, f.Shape)
}

// shapeTiles lists the cells of a w x h footprint of shape s at origin
func shapeTiles(origin image.Point, w, h int, s Shape) []image.Point {
	out := []image.Point{}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if s.covers(x, y, w, h) {
				out = append(out, origin.Add(image.Pt(x, y)))
			}
		}
	}
	return out
}
