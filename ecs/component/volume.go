package component

import "fmt"

// Axis names one of the three local sprite-space axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("axis(%d)", uint8(a))
	}
}

// Volume is a primitive shape in an actor's local sprite space. The set of
// implementations is closed: Box, Cylinder and Sphere.
type Volume interface {
	volume()
	String() string
}

// Box is an axis-aligned box anchored at its minimum corner.
type Box struct {
	X, Y, Z int32
	W, H, D uint32
}

// Cylinder is aligned with Axis; Center locates it along that axis.
type Cylinder struct {
	Axis   Axis
	Center int32
	R, L   uint32
}

type Sphere struct {
	X, Y, Z int32
	R       uint32
}

func (Box) volume()      {}
func (Cylinder) volume() {}
func (Sphere) volume()   {}

func (b Box) String() string {
	return fmt.Sprintf("box(%d,%d,%d %dx%dx%d)", b.X, b.Y, b.Z, b.W, b.H, b.D)
}

func (c Cylinder) String() string {
	return fmt.Sprintf("cylinder(%s@%d r=%d l=%d)", c.Axis, c.Center, c.R, c.L)
}

func (s Sphere) String() string {
	return fmt.Sprintf("sphere(%d,%d,%d r=%d)", s.X, s.Y, s.Z, s.R)
}
