package citynet

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeTiles(t *testing.T) {
	cases := []struct {
		name  string
		w, h  int
		shape Shape
		want  int
	}{
		{"rectangle", 5, 4, Shape{Kind: Rectangle}, 20},
		{"l top left", 5, 5, Shape{Kind: LShape, Corner: TopLeft}, 21},
		{"l bottom right", 4, 4, Shape{Kind: LShape, Corner: BottomRight}, 12},
		{"t up", 5, 5, Shape{Kind: TShape, Side: Up}, 23},
		{"t right", 4, 4, Shape{Kind: TShape, Side: Right}, 14},
		{"u up", 5, 5, Shape{Kind: UShape, Side: Up}, 22},
		{"u left", 5, 4, Shape{Kind: UShape, Side: Left}, 18},
		{"plus", 5, 5, Shape{Kind: Plus}, 21},
		{"z", 5, 5, Shape{Kind: ZShape}, 18},
		{"z flipped", 5, 5, Shape{Kind: ZShape, Flipped: true}, 17},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			f := &Footprint{Origin: image.Pt(10, 20), Width: tt.w, Height: tt.h, Shape: tt.shape}
			tiles := f.Tiles()
			assert.Len(t, tiles, tt.want)

			for _, p := range tiles {
				assert.True(t, p.In(f.Bounds()), "%v outside %v", p, f.Bounds())
			}

			// pure: same inputs, same tiles
			assert.Equal(t, tiles, f.Tiles())
		})
	}
}

func TestShapeUpOpensTop(t *testing.T) {
	f := &Footprint{Width: 5, Height: 5, Shape: Shape{Kind: UShape, Side: Up}}
	tiles := f.Tiles()
	assert.Contains(t, tiles, image.Pt(0, 0))
	assert.Contains(t, tiles, image.Pt(4, 0))
	assert.NotContains(t, tiles, image.Pt(2, 0))
	assert.Contains(t, tiles, image.Pt(2, 1))
}

func TestFootprintCenter(t *testing.T) {
	f := &Footprint{Origin: image.Pt(3, 4), Width: 5, Height: 4}
	assert.Equal(t, image.Pt(5, 6), f.Center())
}
