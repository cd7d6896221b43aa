package types

import "strings"

// The ground link occupies row 0 of the link table for the lifetime of a
// document. It can be edited (color, members) but never removed.
const (
	GroundName = "ground"
	GroundRow  = 0

	// DefaultGroundColor is the seed color of the ground row.
	DefaultGroundColor = "White"
)

// Link is one row of the link table: a rigid body connecting a set of
// points. Links are identified by name; point references key on that name,
// which is why renames must propagate (see internal/undo.EditLink).
type Link struct {
	Name   string
	Color  string
	Points []int // point row indices, in insertion order
}

// HasPoint reports whether the link lists the given point row.
func (l *Link) HasPoint(row int) bool {
	for _, p := range l.Points {
		if p == row {
			return true
		}
	}
	return false
}

// AttachPoint appends a point row index to the link's member list.
func (l *Link) AttachPoint(row int) {
	l.Points = append(l.Points, row)
}

// DetachPoint removes the first occurrence of the given point row.
func (l *Link) DetachPoint(row int) bool {
	for i, p := range l.Points {
		if p == row {
			l.Points = append(l.Points[:i], l.Points[i+1:]...)
			return true
		}
	}
	return false
}

// PointsText returns the comma-joined member field ("Point0,Point2") as the
// original file formats store it.
func (l *Link) PointsText() string {
	names := make([]string, len(l.Points))
	for i, p := range l.Points {
		names[i] = PointName(p)
	}
	return strings.Join(names, ",")
}

// Clone returns a deep copy of the link.
func (l *Link) Clone() Link {
	c := *l
	c.Points = append([]int(nil), l.Points...)
	return c
}

// ParsePointRefs parses a comma-joined "Point{n}" member field into row
// indices, dropping empty entries.
func ParsePointRefs(text string) ([]int, error) {
	var rows []int
	for _, name := range SplitNames(text) {
		row, err := PointIndex(name)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
