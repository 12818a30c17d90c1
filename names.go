package citynet

import (
	"math/rand"
	"strings"
)

var (
	namePrefixes = []string{
		"North", "South", "East", "West", "New", "Old", "Port", "Fort", "Mount",
		"Lake", "River", "King's", "Queen's", "Saint", "High", "Low", "Great",
		"Upper", "Lower",
	}
	nameRoots = []string{
		"haven", "ford", "bridge", "ton", "ville", "burg", "dale", "field",
		"gate", "hill", "wood", "stone", "creek", "bay", "cliff", "vale",
		"brook", "marsh", "grove", "peak", "hollow", "spring", "meadow", "crest",
	}
	nameSuffixes = []string{
		"", " City", " Town", " Keep", " Hold", " Landing", " Crossing",
		" Falls", " Springs", " Harbor",
	}
)

const (
	prefixChance = 0.35
	suffixChance = 0.25
)

// randomName returns a settlement name like "Ford", "Old Brook" or "Port Haven Landing".
func randomName(rng *rand.Rand) string {
	var b strings.Builder

	if rng.Float64() < prefixChance {
		b.WriteString(namePrefixes[rng.Intn(len(namePrefixes))])
		b.WriteString(" ")
	}

	root := nameRoots[rng.Intn(len(nameRoots))]
	b.WriteString(strings.ToUpper(root[:1]))
	b.WriteString(root[1:])

	if rng.Float64() < suffixChance {
		b.WriteString(nameSuffixes[rng.Intn(len(nameSuffixes))])
	}

	return b.String()
}
