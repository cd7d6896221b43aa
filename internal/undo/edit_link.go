package undo

import (
	"fmt"

	"github.com/kinematics-lab/linkage/pkg/types"
)

// LinkArgs is the editable field tuple of a link row.
type LinkArgs struct {
	Name   string
	Color  string
	Points []int
}

// EditLink rewrites a link row, propagates a rename to every point that
// referenced the old name, and patches the membership lists of every point
// gaining or losing the link.
//
// Rename runs before membership patching on apply, over the pre-rename
// point set; the revert order is fully inverted. Points key on link names,
// so the rename must land while the old references are still in place.
// Renaming to the empty name drops the reference outright, which is how
// clearing a link (the first step of link deletion) detaches its points.
//
// Like EditPoint, patching is positional: the position of the old name in
// each affected point's membership list is recorded at construction, so
// Revert restores the list exactly. The stack's LIFO discipline keeps the
// recorded positions valid.
type EditLink struct {
	links  types.LinkTable
	points types.PointTable
	row    int

	newLink types.Link
	oldLink types.Link
	gained  []int       // point rows gaining this link (appended at the end)
	lost    []int       // point rows losing this link
	oldAt   map[int]int // position of the old name per old member row
}

// NewEditLink snapshots the old row and computes the membership deltas.
// Returns ErrRowOutOfRange for a bad link row, ErrUnknownPoint when a
// referenced point row does not exist, and ErrUnknownLink when an old
// member point does not list the link — which means the referential
// invariant was already broken before this command.
func NewEditLink(links types.LinkTable, points types.PointTable, row int, args LinkArgs) (*EditLink, error) {
	old, err := links.Link(row)
	if err != nil {
		return nil, fmt.Errorf("edit link %d: %w", row, err)
	}
	for _, p := range args.Points {
		if p < 0 || p >= points.RowCount() {
			return nil, fmt.Errorf("edit link %d: %w: row %d", row, types.ErrUnknownPoint, p)
		}
	}

	c := &EditLink{
		links:  links,
		points: points,
		row:    row,
		newLink: types.Link{
			Name:   args.Name,
			Color:  args.Color,
			Points: append([]int(nil), args.Points...),
		},
		oldLink: old,
		gained:  diffRows(args.Points, old.Points),
		lost:    diffRows(old.Points, args.Points),
		oldAt:   make(map[int]int, len(old.Points)),
	}
	if old.Name != "" {
		for _, prow := range old.Points {
			p, err := points.Point(prow)
			if err != nil {
				return nil, err
			}
			at := indexOfName(p.Links, old.Name)
			if at < 0 {
				return nil, fmt.Errorf("edit link %d: point %d does not list %q: %w",
					row, prow, old.Name, types.ErrUnknownLink)
			}
			c.oldAt[prow] = at
		}
	}
	return c, nil
}

// Text returns the command label.
func (c *EditLink) Text() string { return "edit link" }

// Apply writes the new fields, renames the old references in place, then
// rewrites the dependent points under the new name.
func (c *EditLink) Apply() error {
	if err := c.links.SetLink(c.row, c.newLink); err != nil {
		return err
	}
	if c.newLink.Name != c.oldLink.Name {
		for _, prow := range c.oldLink.Points {
			p, err := c.points.Point(prow)
			if err != nil {
				return err
			}
			p.ReplaceLink(c.oldLink.Name, c.newLink.Name)
			if err := c.points.SetPoint(prow, p); err != nil {
				return err
			}
		}
	}
	if c.newLink.Name == "" {
		// The rename already dropped every reference; nothing to patch.
		return nil
	}
	for _, prow := range c.gained {
		p, err := c.points.Point(prow)
		if err != nil {
			return err
		}
		p.AttachLink(c.newLink.Name)
		if err := c.points.SetPoint(prow, p); err != nil {
			return err
		}
	}
	for _, prow := range c.lost {
		p, err := c.points.Point(prow)
		if err != nil {
			return err
		}
		p.Links = removeNameAt(p.Links, c.oldAt[prow])
		if err := c.points.SetPoint(prow, p); err != nil {
			return err
		}
	}
	return nil
}

// Revert is the exact inverse of Apply: it rewrites the dependents with the
// sets swapped, renames the new references back (reinserting references a
// rename-to-empty dropped), then restores the old fields.
func (c *EditLink) Revert() error {
	if c.newLink.Name != "" {
		for _, prow := range c.lost {
			p, err := c.points.Point(prow)
			if err != nil {
				return err
			}
			p.Links = insertNameAt(p.Links, c.oldAt[prow], c.newLink.Name)
			if err := c.points.SetPoint(prow, p); err != nil {
				return err
			}
		}
		for _, prow := range c.gained {
			p, err := c.points.Point(prow)
			if err != nil {
				return err
			}
			p.Links = removeNameAt(p.Links, len(p.Links)-1)
			if err := c.points.SetPoint(prow, p); err != nil {
				return err
			}
		}
	}
	if c.newLink.Name != c.oldLink.Name {
		for _, prow := range c.oldLink.Points {
			p, err := c.points.Point(prow)
			if err != nil {
				return err
			}
			if c.newLink.Name == "" {
				p.Links = insertNameAt(p.Links, c.oldAt[prow], c.oldLink.Name)
			} else {
				p.ReplaceLink(c.newLink.Name, c.oldLink.Name)
			}
			if err := c.points.SetPoint(prow, p); err != nil {
				return err
			}
		}
	}
	return c.links.SetLink(c.row, c.oldLink)
}

func indexOfName(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func removeNameAt(names []string, at int) []string {
	return append(names[:at], names[at+1:]...)
}

func insertNameAt(names []string, at int, name string) []string {
	names = append(names, "")
	copy(names[at+1:], names[at:])
	names[at] = name
	return names
}

// diffRows returns the rows in a that are not in b, preserving order.
func diffRows(a, b []int) []int {
	var out []int
	for _, row := range a {
		found := false
		for _, other := range b {
			if row == other {
				found = true
				break
			}
		}
		if !found {
			out = append(out, row)
		}
	}
	return out
}
