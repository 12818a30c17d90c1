package citynet

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"

	"github.com/voidshard/citynet/internal/prng"
)

func TestRandomName(t *testing.T) {
	a, b := prng.New(8), prng.New(8)
	for i := 0; i < 50; i++ {
		name := randomName(a)
		assert.Equal(t, name, randomName(b))
		assert.NotEmpty(t, name)
		assert.True(t, unicode.IsUpper([]rune(name)[0]), name)
	}
}

func TestRandomNameWords(t *testing.T) {
	prefixes := map[string]bool{}
	for _, p := range namePrefixes {
		prefixes[p] = true
	}
	roots := map[string]bool{}
	for _, r := range nameRoots {
		roots[strings.ToUpper(r[:1])+r[1:]] = true
	}

	rng := prng.New(21)
	for i := 0; i < 200; i++ {
		name := randomName(rng)
		words := strings.Fields(name)
		assert.Equal(t, name, strings.Join(words, " "))

		root := words[0]
		if prefixes[root] {
			if !assert.Greater(t, len(words), 1, name) {
				continue
			}
			root = words[1]
		}
		assert.True(t, roots[root], "%q has no root word", name)
	}
}
