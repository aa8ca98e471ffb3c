package components

import (
	"github.com/automoto/swoopers/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Rect returns the object's bounding box.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// MoveTo places the object at x, y and refreshes its cells in the space.
func (o *ObjectData) MoveTo(x, y float64) {
	o.X = x
	o.Y = y
	if o.Space != nil {
		o.Update()
	}
}
