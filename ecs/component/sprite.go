package component

// SpriteGeometry describes the current sprite frame of an actor: the sheet's
// pixel offset for the frame and the frame size.
type SpriteGeometry struct {
	Sheet  string
	Offset [2]float32
	Width  float32
	Height float32
}

// Pivot returns the sprite-local correction subtracted from volume
// coordinates so that volumes are expressed relative to the frame centre.
func (g SpriteGeometry) Pivot() [2]float32 {
	return [2]float32{g.Offset[0] + g.Width/2, g.Offset[1] + g.Height/2}
}

var SpriteGeometryComponent = NewComponent[SpriteGeometry]()
