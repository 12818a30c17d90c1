// Package field holds per cell grids & the distance transforms run over them.
package field

import (
	"image"
)

// Field is a row-major grid of width x height values.
type Field[T any] struct {
	Width  int
	Height int
	Data   []T
}

// New returns a field with every cell set to fill.
func New[T any](width, height int, fill T) *Field[T] {
	data := make([]T, width*height)
	for i := range data {
		data[i] = fill
	}
	return &Field[T]{Width: width, Height: height, Data: data}
}

// InBounds returns if p is a cell of the field
func (f *Field[T]) InBounds(p image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < f.Width && p.Y < f.Height
}

// Index of p in Data. Callers are expected to check InBounds first.
func (f *Field[T]) Index(p image.Point) int {
	return p.Y*f.Width + p.X
}

// Point is the inverse of Index
func (f *Field[T]) Point(i int) image.Point {
	return image.Pt(i%f.Width, i/f.Width)
}

// At returns the value at p
func (f *Field[T]) At(p image.Point) T {
	return f.Data[f.Index(p)]
}

// Set the value at p
func (f *Field[T]) Set(p image.Point, v T) {
	f.Data[f.Index(p)] = v
}
