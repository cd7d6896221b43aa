package undo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinematics-lab/linkage/pkg/types"
)

func TestEditLinkAttachMembers(t *testing.T) {
	points, links, stack := fixture(t, 2)

	require.NoError(t, stack.Push(NewAddRow(links)))
	cmd, err := NewEditLink(links, points, 1, LinkArgs{Name: "L1", Color: "Red", Points: []int{0, 1}})
	require.NoError(t, err)
	require.NoError(t, stack.Push(cmd))

	assert.Equal(t, []string{"L1"}, pointLinks(t, points, 0))
	assert.Equal(t, []string{"L1"}, pointLinks(t, points, 1))
	assert.Equal(t, []int{0, 1}, linkPoints(t, links, 1))
	checkConsistent(t, points, links)

	require.NoError(t, stack.Undo())
	assert.Empty(t, pointLinks(t, points, 0))
	assert.Empty(t, pointLinks(t, points, 1))
	l, err := links.Link(1)
	require.NoError(t, err)
	assert.Equal(t, types.Link{}, l, "revert restores the empty row")
	checkConsistent(t, points, links)

	require.NoError(t, stack.Redo())
	assert.Equal(t, []int{0, 1}, linkPoints(t, links, 1))
	checkConsistent(t, points, links)
}

// Renaming a link must rewrite the reference held by every member point,
// and undo must rename them back.
func TestEditLinkRenamePropagation(t *testing.T) {
	points, links, stack := fixture(t, 4)
	l1 := addLink(t, points, links, stack, "L1", "Red", []int{3})
	require.Equal(t, []string{"L1"}, pointLinks(t, points, 3))

	cmd, err := NewEditLink(links, points, l1, LinkArgs{Name: "L2", Color: "Red", Points: []int{3}})
	require.NoError(t, err)
	require.NoError(t, stack.Push(cmd))

	assert.Equal(t, []string{"L2"}, pointLinks(t, points, 3))
	assert.Equal(t, "L2", linkName(t, links, l1))
	checkConsistent(t, points, links)

	require.NoError(t, stack.Undo())
	assert.Equal(t, []string{"L1"}, pointLinks(t, points, 3))
	assert.Equal(t, "L1", linkName(t, links, l1))
	checkConsistent(t, points, links)
}

// A single edit can rename the link and change its membership at once; the
// rename lands on the surviving members, the patch covers the delta, and
// undo restores both tables byte-for-byte.
func TestEditLinkRenameWithMembershipChange(t *testing.T) {
	points, links, stack := fixture(t, 3)
	l1 := addLink(t, points, links, stack, "L1", "Red", []int{0, 1})
	before, beforeLinks := snapshot(points, links)

	cmd, err := NewEditLink(links, points, l1, LinkArgs{Name: "L2", Color: "Red", Points: []int{1, 2}})
	require.NoError(t, err)
	require.NoError(t, stack.Push(cmd))

	assert.Empty(t, pointLinks(t, points, 0))
	assert.Equal(t, []string{"L2"}, pointLinks(t, points, 1))
	assert.Equal(t, []string{"L2"}, pointLinks(t, points, 2))
	checkConsistent(t, points, links)

	require.NoError(t, stack.Undo())
	gotPoints, gotLinks := snapshot(points, links)
	assert.Equal(t, before, gotPoints)
	assert.Equal(t, beforeLinks, gotLinks)
	checkConsistent(t, points, links)
}

// Renaming to the empty name drops the reference from every member point.
// This is the first half of link deletion; undo reinserts each reference at
// its original position.
func TestEditLinkClearName(t *testing.T) {
	points, links, stack := fixture(t, 3)
	l1 := addLink(t, points, links, stack, "L1", "Red", []int{0, 2})
	l2 := addLink(t, points, links, stack, "L2", "Blue", []int{2})
	require.Equal(t, []string{"L1", "L2"}, pointLinks(t, points, 2))
	before, beforeLinks := snapshot(points, links)

	cmd, err := NewEditLink(links, points, l1, LinkArgs{Name: "", Color: types.DefaultGroundColor})
	require.NoError(t, err)
	require.NoError(t, stack.Push(cmd))

	assert.Empty(t, pointLinks(t, points, 0))
	assert.Equal(t, []string{"L2"}, pointLinks(t, points, 2))
	assert.Empty(t, linkPoints(t, links, l1))
	assert.Equal(t, []int{2}, linkPoints(t, links, l2))
	checkConsistent(t, points, links)

	require.NoError(t, stack.Undo())
	gotPoints, gotLinks := snapshot(points, links)
	assert.Equal(t, before, gotPoints)
	assert.Equal(t, beforeLinks, gotLinks)
	assert.Equal(t, []string{"L1", "L2"}, pointLinks(t, points, 2),
		"reference restored at its original position")
}

func TestEditLinkPreconditions(t *testing.T) {
	points, links, _ := fixture(t, 1)

	_, err := NewEditLink(links, points, 9, LinkArgs{})
	assert.ErrorIs(t, err, types.ErrRowOutOfRange)

	_, err = NewEditLink(links, points, 0, LinkArgs{Name: "ground", Points: []int{4}})
	assert.ErrorIs(t, err, types.ErrUnknownPoint)
}

func linkName(t *testing.T, links types.LinkTable, row int) string {
	t.Helper()
	l, err := links.Link(row)
	require.NoError(t, err)
	return l.Name
}
