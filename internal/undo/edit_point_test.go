package undo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinematics-lab/linkage/pkg/types"
)

func TestEditPointFields(t *testing.T) {
	points, links, stack := fixture(t, 1)

	cmd, err := NewEditPoint(points, links, 0, PointArgs{
		Joint: types.JointP,
		Angle: 30,
		Color: "Blue",
		X:     1.5,
		Y:     -2,
	})
	require.NoError(t, err)
	require.NoError(t, stack.Push(cmd))

	p, err := points.Point(0)
	require.NoError(t, err)
	assert.Equal(t, "Point0", p.Name)
	assert.Equal(t, types.JointP, p.Joint)
	assert.Equal(t, 30.0, p.Angle)
	assert.Equal(t, "Blue", p.Color)
	assert.Equal(t, []types.Coord{{X: 1.5, Y: -2}}, p.Current)

	require.NoError(t, stack.Undo())
	p, err = points.Point(0)
	require.NoError(t, err)
	assert.Equal(t, "Point0", p.Name)
	assert.Equal(t, "Green", p.Color)
}

func TestEditPointMembership(t *testing.T) {
	points, links, stack := fixture(t, 2)
	l1 := addLink(t, points, links, stack, "L1", "Red", nil)

	cmd, err := NewEditPoint(points, links, 0, PointArgs{
		Links: []string{types.GroundName, "L1"},
		Color: "Green",
	})
	require.NoError(t, err)
	require.NoError(t, stack.Push(cmd))

	assert.Equal(t, []string{"ground", "L1"}, pointLinks(t, points, 0))
	assert.Equal(t, []int{0}, linkPoints(t, links, types.GroundRow))
	assert.Equal(t, []int{0}, linkPoints(t, links, l1))
	checkConsistent(t, points, links)

	require.NoError(t, stack.Undo())
	assert.Empty(t, pointLinks(t, points, 0))
	assert.Empty(t, linkPoints(t, links, types.GroundRow))
	assert.Empty(t, linkPoints(t, links, l1))
	checkConsistent(t, points, links)

	require.NoError(t, stack.Redo())
	assert.Equal(t, []int{0}, linkPoints(t, links, l1))
	checkConsistent(t, points, links)
}

// Removing a middle member must reinsert it at the same position on undo,
// leaving both tables byte-identical to their pre-apply state.
func TestEditPointRoundTripExact(t *testing.T) {
	points, links, stack := fixture(t, 3)
	l1 := addLink(t, points, links, stack, "L1", "Red", []int{0, 1, 2})
	before, beforeLinks := snapshot(points, links)

	cmd, err := NewEditPoint(points, links, 1, PointArgs{Color: "Green"})
	require.NoError(t, err)
	require.NoError(t, stack.Push(cmd))
	assert.Equal(t, []int{0, 2}, linkPoints(t, links, l1))
	after, afterLinks := snapshot(points, links)
	checkConsistent(t, points, links)

	require.NoError(t, stack.Undo())
	gotPoints, gotLinks := snapshot(points, links)
	assert.Equal(t, before, gotPoints)
	assert.Equal(t, beforeLinks, gotLinks)

	require.NoError(t, stack.Redo())
	gotPoints, gotLinks = snapshot(points, links)
	assert.Equal(t, after, gotPoints)
	assert.Equal(t, afterLinks, gotLinks)
}

func TestEditPointPreconditions(t *testing.T) {
	points, links, _ := fixture(t, 1)

	_, err := NewEditPoint(points, links, 5, PointArgs{})
	assert.ErrorIs(t, err, types.ErrRowOutOfRange)

	_, err = NewEditPoint(points, links, 0, PointArgs{Links: []string{"missing"}})
	assert.ErrorIs(t, err, types.ErrUnknownLink)
}
