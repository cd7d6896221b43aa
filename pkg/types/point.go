package types

import (
	"fmt"
	"strconv"
	"strings"
)

// JointType is the kind of a kinematic joint.
type JointType int

// Joint types. A revolute joint rotates freely; prismatic and
// revolute-prismatic joints slide along an oriented axis.
const (
	JointR  JointType = iota // Revolute
	JointP                   // Prismatic
	JointRP                  // Revolute-prismatic
)

// String returns the short joint tag used in expressions and tables.
func (j JointType) String() string {
	switch j {
	case JointP:
		return "P"
	case JointRP:
		return "RP"
	default:
		return "R"
	}
}

// HasAngle reports whether the joint type carries a slider angle.
func (j JointType) HasAngle() bool {
	return j == JointP || j == JointRP
}

// ParseJointType parses a joint tag ("R", "P", "RP").
// Returns ErrInvalidJointType for anything else.
func ParseJointType(s string) (JointType, error) {
	switch s {
	case "R":
		return JointR, nil
	case "P":
		return JointP, nil
	case "RP":
		return JointRP, nil
	}
	return JointR, fmt.Errorf("%w: %q", ErrInvalidJointType, s)
}

// Point is one row of the point table. A point's identity is its row index;
// Name holds the derived display name ("Point0", "Point1", ...) and is
// rewritten by renumbering when rows above it are removed.
type Point struct {
	Name    string
	Links   []string // names of links this point belongs to, in insertion order
	Joint   JointType
	Angle   float64 // slider axis angle, meaningful for P and RP joints
	Color   string
	X, Y    float64
	Current []Coord // solved position; two entries for slider joints (pin, slot)
}

// HasLink reports whether the point lists the named link.
func (p *Point) HasLink(name string) bool {
	for _, l := range p.Links {
		if l == name {
			return true
		}
	}
	return false
}

// AttachLink appends a link name to the point's membership list.
func (p *Point) AttachLink(name string) {
	p.Links = append(p.Links, name)
}

// DetachLink removes the first occurrence of the named link.
// Detaching an empty name is a no-op, as is a name that is not present.
func (p *Point) DetachLink(name string) bool {
	if name == "" {
		return false
	}
	for i, l := range p.Links {
		if l == name {
			p.Links = append(p.Links[:i], p.Links[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceLink rewrites every occurrence of the link name from into to,
// dropping the entry when to is empty. Renaming a link to the empty name is
// how link deletion clears memberships.
func (p *Point) ReplaceLink(from, to string) {
	out := p.Links[:0]
	for _, l := range p.Links {
		if l == from {
			l = to
		}
		if l != "" {
			out = append(out, l)
		}
	}
	p.Links = out
}

// LinksText returns the comma-joined membership field as the original file
// formats store it.
func (p *Point) LinksText() string {
	return strings.Join(p.Links, ",")
}

// TypeText returns the joint field in "type" or "type:angle" form.
func (p *Point) TypeText() string {
	if p.Joint.HasAngle() {
		return p.Joint.String() + ":" + strconv.FormatFloat(p.Angle, 'g', -1, 64)
	}
	return p.Joint.String()
}

// Clone returns a deep copy of the point.
func (p *Point) Clone() Point {
	c := *p
	c.Links = append([]string(nil), p.Links...)
	c.Current = append([]Coord(nil), p.Current...)
	return c
}

// PointName returns the display name for a point row index.
func PointName(row int) string {
	return fmt.Sprintf("Point%d", row)
}

// PointIndex parses a "Point{n}" display name back into a row index.
func PointIndex(name string) (int, error) {
	n, ok := strings.CutPrefix(name, "Point")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPoint, name)
	}
	row, err := strconv.Atoi(n)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPoint, name)
	}
	return row, nil
}

// SplitNames splits a comma-joined name field, dropping empty entries.
func SplitNames(text string) []string {
	var names []string
	for _, s := range strings.Split(text, ",") {
		if s = strings.TrimSpace(s); s != "" {
			names = append(names, s)
		}
	}
	return names
}
