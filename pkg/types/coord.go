package types

import "fmt"

// Coord is a planar coordinate.
type Coord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// String formats the coordinate the way the point table displays it.
func (c Coord) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.X, c.Y)
}
