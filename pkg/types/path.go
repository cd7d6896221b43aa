package types

// Path is a recorded trajectory set: one coordinate sequence per tracked
// point across an input sweep, plus sub-paths for slider joints keyed by
// point row.
type Path struct {
	Coords  [][]Coord       `yaml:"coords"`
	Sliders map[int][]Coord `yaml:"sliders,omitempty"`
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	c := Path{Coords: make([][]Coord, len(p.Coords))}
	for i, seg := range p.Coords {
		c.Coords[i] = append([]Coord(nil), seg...)
	}
	if p.Sliders != nil {
		c.Sliders = make(map[int][]Coord, len(p.Sliders))
		for k, seg := range p.Sliders {
			c.Sliders[k] = append([]Coord(nil), seg...)
		}
	}
	return c
}
