// Package encoding packs small values into the channels of a CityMap pixel.
package encoding

// Split16 uint16 to high & low uint8
func Split16(in uint16) (uint8, uint8) {
	return uint8(in >> 8), uint8(in)
}

// Merge8 high & low uint8 to uint16
func Merge8(hi, lo uint8) uint16 {
	return (uint16(hi) << 8) + uint16(lo)
}

// ToBytes8 turns a uint8 into a single byte slice, the layout go-bitmap
// expects for an 8 bit map.
func ToBytes8(in uint8) []byte {
	return []byte{in}
}

// FromBytes8 is the inverse of ToBytes8. An empty slice is 0.
func FromBytes8(data []byte) uint8 {
	if len(data) == 0 {
		return 0
	}
	return data[0]
}
