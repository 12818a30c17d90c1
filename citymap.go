package citynet

import (
	"fmt"
	"image"
	"image/color"

	"github.com/boljen/go-bitmap"
	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"github.com/voidshard/citynet/internal/encoding"
	"github.com/voidshard/citynet/internal/field"
)

const (
	// bit numbers for our bitmap
	bitRoad     = 0
	bitBridge   = 1
	bitWall     = 2
	bitGate     = 3
	bitBuilding = 4
)

// CityMap is a raster of a Network, one pixel per terrain cell.
type CityMap interface {
	// Save as custom file in a format defined by the library
	Save(fpath string) error

	// SaveAdv saves as an image with the given color scheme
	SaveAdv(fpath string, scheme *ColourScheme) error

	// CustomImage returns an image with the given color scheme
	CustomImage(scheme *ColourScheme) (image.Image, error)

	// roads are never marked inside a settlement's buildings
	IsRoad(x, y int) bool
	IsBridge(x, y int) bool
	IsWall(x, y int) bool
	IsGate(x, y int) bool
	IsBuilding(x, y int) bool

	// Settlement returns the settlement ID at x,y or -1 if there is none.
	// Buildings, walls & gates belong to a settlement.
	Settlement(x, y int) (int, error)

	// Use returns the use of the building at x,y ("" if there is none)
	Use(x, y int) (Use, error)

	// Territory returns the ID of the settlement whose land x,y is, or -1
	// if there are no settlements.
	Territory(x, y int) (int, error)

	// RoadDistance returns the distance from x,y to the nearest road cell
	// outside of a settlement. Cells far from any road hold
	// NetworkConfig.RoadFieldFill.
	RoadDistance(x, y int) float64
}

// imageMap is a particular implementation of CityMap using a RGBA64
type imageMap struct {
	// Map is an RGBA64 image where each pixel of 64 bits is split via
	//
	// R [16 bits] -> settlement id + 1 (0 is no settlement)
	// G [16 bits] -> footprint index + 1 within the settlement
	// B [16 bits] -> unused
	// A [16 bits]
	//   16-9 [8 bits] -> use (see Use.ID())
	//    8-1 [8 bits] -> bitmap (true if set, false if not)
	//       bit 0 -> isRoad
	//       bit 1 -> isBridge
	//       bit 2 -> isWall
	//       bit 3 -> isGate
	//       bit 4 -> isBuilding
	//       bit 5-7 -> unused
	im *image.RGBA64

	// distance to the nearest road, far when there is none nearby
	roads *field.Field[float64]
	far   float64

	// owning settlement of each cell
	owners *field.Field[int]
}

// ColourScheme defines how various features should be coloured.
type ColourScheme struct {
	Roads   color.Color
	Bridges color.Color
	Walls   color.Color
	Gates   color.Color
	Borders color.Color // territory borders, nil to skip
	Uses    map[Use]color.Color
}

// DefaultScheme returns a reasonable default ColourScheme.
func DefaultScheme() *ColourScheme {
	return &ColourScheme{
		Roads:   colornames.Dimgray,
		Bridges: colornames.Saddlebrown,
		Walls:   colornames.Black,
		Gates:   colornames.Crimson,
		Borders: colornames.Lightgray,
		Uses: map[Use]color.Color{
			Residential: colornames.Steelblue,
			Commercial:  colornames.Hotpink,
			Industrial:  colornames.Firebrick,
			Civic:       colornames.Indigo,
			Military:    colornames.Maroon,
			Market:      colornames.Gold,
		},
	}
}

// newMap rasterises settlements & roads over the given terrain
func newMap(t *Terrain, cfg *NetworkConfig, settlements []*Settlement, roads []*Road, owners *field.Field[int]) *imageMap {
	c := &imageMap{im: image.NewRGBA64(t.Bounds()), far: cfg.RoadFieldFill, owners: owners}

	for _, s := range settlements {
		for i, f := range s.Footprints {
			for _, p := range f.Tiles() {
				c.setBuilding(p.X, p.Y, s.ID, i, f.Use)
			}
		}
		for _, p := range s.Walls {
			c.setSettlement(p.X, p.Y, s.ID)
			c.setFlag(p.X, p.Y, bitWall)
		}
		for _, p := range s.Gates {
			c.setSettlement(p.X, p.Y, s.ID)
			c.setFlag(p.X, p.Y, bitGate)
		}
	}

	for _, r := range roads {
		for _, p := range r.Path {
			if c.IsBuilding(p.X, p.Y) {
				continue
			}
			c.setFlag(p.X, p.Y, bitRoad)
			if t.IsRiver(p) || t.IsLake(p) {
				c.setFlag(p.X, p.Y, bitBridge)
			}
		}
	}

	c.roads = field.Chamfer(
		t.Width, t.Height,
		func(p image.Point) bool { return c.IsRoad(p.X, p.Y) },
		func(p image.Point) bool { return !c.IsBuilding(p.X, p.Y) },
		cfg.RoadFieldMax, cfg.RoadFieldFill,
	)

	return c
}

// Save the CityMap as is to disk
func (c *imageMap) Save(fpath string) error {
	return gg.SavePNG(fpath, c.im)
}

// CustomImage returns the CityMap coloured with the given Scheme
func (c *imageMap) CustomImage(scheme *ColourScheme) (image.Image, error) {
	bnds := c.im.Bounds()
	im := image.NewRGBA(bnds)

	for dy := bnds.Min.Y; dy < bnds.Max.Y; dy++ {
		for dx := bnds.Min.X; dx < bnds.Max.X; dx++ {
			bm := c.getBM(dx, dy)

			if bm.Get(bitGate) {
				im.Set(dx, dy, scheme.Gates)
				continue
			} else if bm.Get(bitWall) {
				im.Set(dx, dy, scheme.Walls)
				continue
			} else if bm.Get(bitBridge) {
				im.Set(dx, dy, scheme.Bridges)
				continue
			} else if bm.Get(bitRoad) {
				im.Set(dx, dy, scheme.Roads)
				continue
			} else if !bm.Get(bitBuilding) {
				if scheme.Borders != nil && c.isBorder(dx, dy) {
					im.Set(dx, dy, scheme.Borders)
				}
				continue
			}

			use, err := c.Use(dx, dy)
			if err != nil {
				return nil, err
			}
			col, ok := scheme.Uses[use]
			if ok {
				im.Set(dx, dy, col)
			}
		}
	}

	return im, nil
}

// SaveAdv essentially saves the CityMap using the given scheme to disk.
// Essentially sugar around "CustomImage()" followed by writing out a PNG.
func (c *imageMap) SaveAdv(fpath string, scheme *ColourScheme) error {
	im, err := c.CustomImage(scheme)
	if err != nil {
		return err
	}
	return gg.SavePNG(fpath, im)
}

// Settlement returns the settlement ID at x,y
func (c *imageMap) Settlement(x, y int) (int, error) {
	if c.isOutOfBounds(x, y) {
		return -1, fmt.Errorf("(%d,%d) is out of bounds", x, y)
	}
	return int(c.im.RGBA64At(x, y).R) - 1, nil
}

// Use returns the building use at x,y
func (c *imageMap) Use(x, y int) (Use, error) {
	if c.isOutOfBounds(x, y) {
		return "", fmt.Errorf("(%d,%d) is out of bounds", x, y)
	}
	useid, _ := encoding.Split16(c.im.RGBA64At(x, y).A)
	return useForID(int(useid)), nil
}

// Territory returns the settlement whose land x,y is
func (c *imageMap) Territory(x, y int) (int, error) {
	if c.isOutOfBounds(x, y) {
		return -1, fmt.Errorf("(%d,%d) is out of bounds", x, y)
	}
	return c.owners.At(image.Pt(x, y)), nil
}

// isBorder returns if x,y is owned by a different settlement than the cell
// right or below of it
func (c *imageMap) isBorder(x, y int) bool {
	p := image.Pt(x, y)
	v := c.owners.At(p)
	for _, o := range [2]image.Point{{1, 0}, {0, 1}} {
		n := p.Add(o)
		if c.owners.InBounds(n) && c.owners.At(n) != v {
			return true
		}
	}
	return false
}

// RoadDistance returns the distance to the nearest road from x,y
func (c *imageMap) RoadDistance(x, y int) float64 {
	p := image.Pt(x, y)
	if !c.roads.InBounds(p) {
		return c.far
	}
	return c.roads.At(p)
}

// setSettlement sets the given settlement id at x,y
func (c *imageMap) setSettlement(x, y, id int) {
	v := c.im.RGBA64At(x, y)
	v.R = uint16(id + 1)
	c.im.SetRGBA64(x, y, v)
}

// setBuilding marks x,y as part of footprint index of settlement id
func (c *imageMap) setBuilding(x, y, id, index int, use Use) {
	v := c.im.RGBA64At(x, y)
	_, bmbits := encoding.Split16(v.A)

	v.R = uint16(id + 1)
	v.G = uint16(index + 1)
	v.A = encoding.Merge8(uint8(use.ID()), bmbits)
	c.im.SetRGBA64(x, y, v)

	c.setFlag(x, y, bitBuilding)
}

// setFlag sets bit at x,y
func (c *imageMap) setFlag(x, y, bit int) {
	bm := c.getBM(x, y)
	bm.Set(bit, true)
	c.setBM(x, y, bm)
}

// setBM sets the 8 bit bitmap at x,y
func (c *imageMap) setBM(x, y int, bm bitmap.Bitmap) {
	num := encoding.FromBytes8(bm.Data(true))

	current := c.im.RGBA64At(x, y)
	useid, _ := encoding.Split16(current.A)
	current.A = encoding.Merge8(useid, num)

	c.im.SetRGBA64(x, y, current)
}

// getBM gets the 8 bit bitmap at x,y
func (c *imageMap) getBM(x, y int) bitmap.Bitmap {
	current := c.im.RGBA64At(x, y)

	_, bmdata := encoding.Split16(current.A)
	return bitmap.Bitmap(encoding.ToBytes8(bmdata))
}

// flag returns if bit is set at x,y; false off the map
func (c *imageMap) flag(x, y, bit int) bool {
	if c.isOutOfBounds(x, y) {
		return false
	}
	return c.getBM(x, y).Get(bit)
}

// IsRoad returns if there is a road at x,y
func (c *imageMap) IsRoad(x, y int) bool { return c.flag(x, y, bitRoad) }

// IsBridge returns if there is a bridge at x,y
func (c *imageMap) IsBridge(x, y int) bool { return c.flag(x, y, bitBridge) }

// IsWall returns if there is a wall at x,y
func (c *imageMap) IsWall(x, y int) bool { return c.flag(x, y, bitWall) }

// IsGate returns if there is a gate at x,y
func (c *imageMap) IsGate(x, y int) bool { return c.flag(x, y, bitGate) }

// IsBuilding returns if there is a building footprint at x,y
func (c *imageMap) IsBuilding(x, y int) bool { return c.flag(x, y, bitBuilding) }

// isOutOfBounds determines if x,y is outside of the image area
func (c *imageMap) isOutOfBounds(x, y int) bool {
	return !image.Pt(x, y).In(c.im.Bounds())
}
