package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitMerge(t *testing.T) {
	hi, lo := Split16(0xA1B2)
	assert.Equal(t, uint8(0xA1), hi)
	assert.Equal(t, uint8(0xB2), lo)
	assert.Equal(t, uint16(0xA1B2), Merge8(hi, lo))
}

func TestBytes8(t *testing.T) {
	assert.Equal(t, []byte{0x2c}, ToBytes8(0x2c))
	assert.Equal(t, uint8(0x2c), FromBytes8([]byte{0x2c}))
	assert.Equal(t, uint8(0), FromBytes8(nil))
}
