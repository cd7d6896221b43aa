// Package model provides the in-memory table and list models the command
// layer mutates. They are the headless equivalents of the original table
// widgets: ordered rows with typed fields, addressed by row index.
// See docs/ARCHITECTURE.md § Models.
package model

import (
	"github.com/kinematics-lab/linkage/pkg/types"
)

// PointTable holds the point rows of a document.
type PointTable struct {
	rows []types.Point
}

var _ types.PointTable = (*PointTable)(nil)

// NewPointTable creates an empty point table.
func NewPointTable() *PointTable {
	return &PointTable{}
}

// RowCount returns the number of point rows.
func (t *PointTable) RowCount() int {
	return len(t.rows)
}

// Point returns a deep copy of the row.
func (t *PointTable) Point(row int) (types.Point, error) {
	if row < 0 || row >= len(t.rows) {
		return types.Point{}, types.ErrRowOutOfRange
	}
	return t.rows[row].Clone(), nil
}

// SetPoint overwrites the row with a deep copy of p.
func (t *PointTable) SetPoint(row int, p types.Point) error {
	if row < 0 || row >= len(t.rows) {
		return types.ErrRowOutOfRange
	}
	t.rows[row] = p.Clone()
	return nil
}

// InsertRow inserts an empty row at the given index.
func (t *PointTable) InsertRow(at int) error {
	if at < 0 || at > len(t.rows) {
		return types.ErrRowOutOfRange
	}
	t.rows = append(t.rows, types.Point{})
	copy(t.rows[at+1:], t.rows[at:])
	t.rows[at] = types.Point{}
	return nil
}

// RemoveRow removes the row at the given index.
func (t *PointTable) RemoveRow(at int) error {
	if at < 0 || at >= len(t.rows) {
		return types.ErrRowOutOfRange
	}
	t.rows = append(t.rows[:at], t.rows[at+1:]...)
	return nil
}

// Renumber rewrites display names from the given row down the table.
func (t *PointTable) Renumber(from int) {
	if from < 0 {
		from = 0
	}
	for row := from; row < len(t.rows); row++ {
		t.rows[row].Name = types.PointName(row)
	}
}

// Points returns a deep copy of every row, for expression emit and saving.
func (t *PointTable) Points() []types.Point {
	out := make([]types.Point, len(t.rows))
	for i := range t.rows {
		out[i] = t.rows[i].Clone()
	}
	return out
}

// Clear removes every row.
func (t *PointTable) Clear() {
	t.rows = nil
}
