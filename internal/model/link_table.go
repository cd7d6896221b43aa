package model

import (
	"github.com/kinematics-lab/linkage/pkg/types"
)

// LinkTable holds the link rows of a document. Row 0 is always the ground
// link; RemoveRow refuses to take it and Clear reseeds it.
type LinkTable struct {
	rows []types.Link
}

var _ types.LinkTable = (*LinkTable)(nil)

// NewLinkTable creates a link table seeded with the ground row.
func NewLinkTable() *LinkTable {
	return &LinkTable{rows: []types.Link{
		{Name: types.GroundName, Color: types.DefaultGroundColor},
	}}
}

// RowCount returns the number of link rows.
func (t *LinkTable) RowCount() int {
	return len(t.rows)
}

// Link returns a deep copy of the row.
func (t *LinkTable) Link(row int) (types.Link, error) {
	if row < 0 || row >= len(t.rows) {
		return types.Link{}, types.ErrRowOutOfRange
	}
	return t.rows[row].Clone(), nil
}

// SetLink overwrites the row with a deep copy of l.
func (t *LinkTable) SetLink(row int, l types.Link) error {
	if row < 0 || row >= len(t.rows) {
		return types.ErrRowOutOfRange
	}
	t.rows[row] = l.Clone()
	return nil
}

// InsertRow inserts an empty row at the given index.
func (t *LinkTable) InsertRow(at int) error {
	if at < 0 || at > len(t.rows) {
		return types.ErrRowOutOfRange
	}
	t.rows = append(t.rows, types.Link{})
	copy(t.rows[at+1:], t.rows[at:])
	t.rows[at] = types.Link{}
	return nil
}

// RemoveRow removes the row at the given index.
// Returns ErrGroundRow for row 0.
func (t *LinkTable) RemoveRow(at int) error {
	if at == types.GroundRow {
		return types.ErrGroundRow
	}
	if at < 0 || at >= len(t.rows) {
		return types.ErrRowOutOfRange
	}
	t.rows = append(t.rows[:at], t.rows[at+1:]...)
	return nil
}

// FindByName returns the row index of the named link.
func (t *LinkTable) FindByName(name string) (int, bool) {
	for row := range t.rows {
		if t.rows[row].Name == name {
			return row, true
		}
	}
	return 0, false
}

// Links returns a deep copy of every row.
func (t *LinkTable) Links() []types.Link {
	out := make([]types.Link, len(t.rows))
	for i := range t.rows {
		out[i] = t.rows[i].Clone()
	}
	return out
}

// Clear removes every row except ground, which is reset to its seed state.
func (t *LinkTable) Clear() {
	t.rows = []types.Link{{Name: types.GroundName, Color: types.DefaultGroundColor}}
}
