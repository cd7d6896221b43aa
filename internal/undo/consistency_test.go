package undo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kinematics-lab/linkage/internal/model"
	"github.com/kinematics-lab/linkage/pkg/types"
)

// checkConsistent asserts the referential invariant: every point lists link
// L exactly when L lists the point's row, in both directions.
func checkConsistent(t *testing.T, points *model.PointTable, links *model.LinkTable) {
	t.Helper()

	for row := 0; row < points.RowCount(); row++ {
		p, err := points.Point(row)
		require.NoError(t, err)
		for _, name := range p.Links {
			lrow, ok := links.FindByName(name)
			require.Truef(t, ok, "point %d references missing link %q", row, name)
			l, err := links.Link(lrow)
			require.NoError(t, err)
			require.Truef(t, l.HasPoint(row),
				"point %d lists link %q but the link does not list the point", row, name)
		}
	}
	for lrow := 0; lrow < links.RowCount(); lrow++ {
		l, err := links.Link(lrow)
		require.NoError(t, err)
		for _, prow := range l.Points {
			p, err := points.Point(prow)
			require.NoErrorf(t, err, "link %q references missing point row %d", l.Name, prow)
			require.Truef(t, p.HasLink(l.Name),
				"link %q lists point %d but the point does not list the link", l.Name, prow)
		}
	}
}

// fixture builds a document fragment with n empty point rows and the ground
// link, all mutations going through the given stack.
func fixture(t *testing.T, n int) (*model.PointTable, *model.LinkTable, *Stack) {
	t.Helper()

	points := model.NewPointTable()
	links := model.NewLinkTable()
	stack := NewStack()
	for i := 0; i < n; i++ {
		require.NoError(t, stack.Push(NewAddRow(points)))
		cmd, err := NewEditPoint(points, links, i, PointArgs{Color: "Green"})
		require.NoError(t, err)
		require.NoError(t, stack.Push(cmd))
	}
	return points, links, stack
}

// addLink appends a link row with the given members through the stack.
func addLink(t *testing.T, points *model.PointTable, links *model.LinkTable, stack *Stack, name, color string, members []int) int {
	t.Helper()

	require.NoError(t, stack.Push(NewAddRow(links)))
	row := links.RowCount() - 1
	cmd, err := NewEditLink(links, points, row, LinkArgs{Name: name, Color: color, Points: members})
	require.NoError(t, err)
	require.NoError(t, stack.Push(cmd))
	return row
}

// pointLinks returns the membership list of a point row.
func pointLinks(t *testing.T, points *model.PointTable, row int) []string {
	t.Helper()
	p, err := points.Point(row)
	require.NoError(t, err)
	return p.Links
}

// linkPoints returns the member list of a link row.
func linkPoints(t *testing.T, links *model.LinkTable, row int) []int {
	t.Helper()
	l, err := links.Link(row)
	require.NoError(t, err)
	return l.Points
}

// snapshot captures the full observable state of both tables for
// byte-for-byte round-trip comparison.
func snapshot(points *model.PointTable, links *model.LinkTable) ([]types.Point, []types.Link) {
	return points.Points(), links.Links()
}
