package undo

import (
	"fmt"

	"github.com/kinematics-lab/linkage/pkg/types"
)

// PointArgs is the editable field tuple of a point row.
type PointArgs struct {
	Links []string
	Joint types.JointType
	Angle float64
	Color string
	X, Y  float64
}

// EditPoint rewrites a point row and patches the member lists of every link
// gaining or losing the point. The gained and lost sets are resolved to
// link rows by name at construction time against the current link table.
//
// Patching is positional: the position of this point inside each losing
// link's member list is recorded at construction, so Revert reinserts it
// exactly where it was. The stack's LIFO discipline guarantees the recorded
// positions are valid whenever Apply or Revert runs.
type EditPoint struct {
	points types.PointTable
	links  types.LinkTable
	row    int

	newPoint types.Point
	oldPoint types.Point
	gained   []int // link rows gaining this point (appended at the end)
	lost     []int // link rows losing this point
	lostAt   []int // position of this point in each lost link's members
}

// NewEditPoint snapshots the old row and resolves the membership deltas.
// Returns ErrRowOutOfRange for a bad row and ErrUnknownLink when a name in
// the delta does not resolve against the link table — the latter means the
// referential invariant was already broken before this command.
func NewEditPoint(points types.PointTable, links types.LinkTable, row int, args PointArgs) (*EditPoint, error) {
	old, err := points.Point(row)
	if err != nil {
		return nil, fmt.Errorf("edit point %d: %w", row, err)
	}

	c := &EditPoint{
		points: points,
		links:  links,
		row:    row,
		newPoint: types.Point{
			Name:    types.PointName(row),
			Links:   append([]string(nil), args.Links...),
			Joint:   args.Joint,
			Angle:   args.Angle,
			Color:   args.Color,
			X:       args.X,
			Y:       args.Y,
			Current: []types.Coord{{X: args.X, Y: args.Y}},
		},
		oldPoint: old,
	}

	added := diffNames(args.Links, old.Links)
	removed := diffNames(old.Links, args.Links)
	if c.gained, err = resolveLinkRows(links, added); err != nil {
		return nil, fmt.Errorf("edit point %d: %w", row, err)
	}
	if c.lost, err = resolveLinkRows(links, removed); err != nil {
		return nil, fmt.Errorf("edit point %d: %w", row, err)
	}
	c.lostAt = make([]int, len(c.lost))
	for i, lrow := range c.lost {
		l, err := links.Link(lrow)
		if err != nil {
			return nil, err
		}
		at := indexOfRow(l.Points, row)
		if at < 0 {
			return nil, fmt.Errorf("edit point %d: link %q does not list the point: %w",
				row, l.Name, types.ErrUnknownPoint)
		}
		c.lostAt[i] = at
	}
	return c, nil
}

// Text returns the command label.
func (c *EditPoint) Text() string { return "edit point" }

// Apply writes the new fields, then rewrites the dependent links: gained
// links append this point, lost links drop it at its recorded position.
func (c *EditPoint) Apply() error {
	if err := c.points.SetPoint(c.row, c.newPoint); err != nil {
		return err
	}
	for _, lrow := range c.gained {
		l, err := c.links.Link(lrow)
		if err != nil {
			return err
		}
		l.AttachPoint(c.row)
		if err := c.links.SetLink(lrow, l); err != nil {
			return err
		}
	}
	for i, lrow := range c.lost {
		l, err := c.links.Link(lrow)
		if err != nil {
			return err
		}
		l.Points = removeAt(l.Points, c.lostAt[i])
		if err := c.links.SetLink(lrow, l); err != nil {
			return err
		}
	}
	return nil
}

// Revert rewrites the dependents with the sets swapped — lost links get the
// point back at its recorded position, gained links drop the appended entry
// — then restores the old fields. The order is inverted relative to Apply
// so the tables never pass through a state Apply did not produce.
func (c *EditPoint) Revert() error {
	for i, lrow := range c.lost {
		l, err := c.links.Link(lrow)
		if err != nil {
			return err
		}
		l.Points = insertAt(l.Points, c.lostAt[i], c.row)
		if err := c.links.SetLink(lrow, l); err != nil {
			return err
		}
	}
	for _, lrow := range c.gained {
		l, err := c.links.Link(lrow)
		if err != nil {
			return err
		}
		l.Points = removeAt(l.Points, len(l.Points)-1)
		if err := c.links.SetLink(lrow, l); err != nil {
			return err
		}
	}
	return c.points.SetPoint(c.row, c.oldPoint)
}

func indexOfRow(rows []int, row int) int {
	for i, r := range rows {
		if r == row {
			return i
		}
	}
	return -1
}

func removeAt(rows []int, at int) []int {
	return append(rows[:at], rows[at+1:]...)
}

func insertAt(rows []int, at, row int) []int {
	rows = append(rows, 0)
	copy(rows[at+1:], rows[at:])
	rows[at] = row
	return rows
}

// diffNames returns the names in a that are not in b, preserving order.
func diffNames(a, b []string) []string {
	var out []string
	for _, name := range a {
		found := false
		for _, other := range b {
			if name == other {
				found = true
				break
			}
		}
		if !found {
			out = append(out, name)
		}
	}
	return out
}

// resolveLinkRows maps link names to their current rows, in link-table
// order. Every name must resolve.
func resolveLinkRows(links types.LinkTable, names []string) ([]int, error) {
	if len(names) == 0 {
		return nil, nil
	}
	pending := make(map[string]bool, len(names))
	for _, name := range names {
		pending[name] = true
	}
	var rows []int
	for row := 0; row < links.RowCount(); row++ {
		l, err := links.Link(row)
		if err != nil {
			return nil, err
		}
		if pending[l.Name] {
			rows = append(rows, row)
			delete(pending, l.Name)
		}
	}
	for name := range pending {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownLink, name)
	}
	return rows, nil
}
