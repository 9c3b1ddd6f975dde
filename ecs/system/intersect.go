package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/brawler/ecs/component"
)

var ErrUnsupportedShapePair = errors.New("system: unsupported shape pair")

// Placement is how a volume's owner sits in the world for an intersection
// test: the sprite pivot subtracted from x and y, and the horizontal mirror.
type Placement struct {
	Pivot    [2]float32
	Mirrored bool
}

// Intersects reports whether bound, placed by from, overlaps body, placed by
// to and displaced by disp relative to from. Only Box/Box is supported; any
// other pair returns ErrUnsupportedShapePair.
func Intersects(bound component.Volume, from Placement, body component.Volume, to Placement, disp [3]float32) (bool, error) {
	switch b := bound.(type) {
	case component.Box:
		switch v := body.(type) {
		case component.Box:
			return boxesIntersect(b, from, v, to, disp), nil
		}
	}
	return false, fmt.Errorf("%w: %s vs %s", ErrUnsupportedShapePair, bound, body)
}

func boxesIntersect(a component.Box, from Placement, b component.Box, to Placement, disp [3]float32) bool {
	ax1, ax2 := span(a.X, a.W, from.Pivot[0], from.Mirrored)
	bx1, bx2 := span(b.X, b.W, to.Pivot[0], to.Mirrored)
	if !spansTouch(ax1, ax2, bx1+disp[0], bx2+disp[0]) {
		return false
	}

	ay1, ay2 := span(a.Y, a.H, from.Pivot[1], false)
	by1, by2 := span(b.Y, b.H, to.Pivot[1], false)
	if !spansTouch(ay1, ay2, by1+disp[1], by2+disp[1]) {
		return false
	}

	// z has no sprite pivot.
	az1, az2 := span(a.Z, a.D, 0, false)
	bz1, bz2 := span(b.Z, b.D, 0, false)
	return spansTouch(az1, az2, bz1+disp[2], bz2+disp[2])
}

// span is the half-open extent [lo, hi) of a box side after removing the
// sprite pivot, reflected about zero when mirrored.
func span(pos int32, size uint32, pivot float32, mirrored bool) (float32, float32) {
	lo := float32(pos) - pivot
	hi := lo + float32(size)
	if mirrored {
		return -hi, -lo
	}
	return lo, hi
}

// spansTouch reports whether either end of [a1, a2) falls inside [b1, b2).
// A span of b strictly inside a without sharing an end is not reported; the
// pipeline keeps this rule so collision results stay stable.
func spansTouch(a1, a2, b1, b2 float32) bool {
	return (a1 >= b1 && a1 < b2) || (a2 >= b1 && a2 < b2)
}
