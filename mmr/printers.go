package mmr

import (
	"fmt"
	"strings"
)

// debug utilities

func (p PosPair) String() string {
	return fmt.Sprintf("(%d, %d)", p.Parent, p.Sibling)
}

func familyPathStringer(path []PosPair, sep string) string {
	var spath []string

	for _, it := range path {
		spath = append(spath, it.String())
	}
	return strings.Join(spath, sep)
}

func peaksStringer(peaks []uint64, sep string) string {
	var speaks []string

	for _, p := range peaks {
		speaks = append(speaks, fmt.Sprintf("%d", p))
	}
	return strings.Join(speaks, sep)
}
