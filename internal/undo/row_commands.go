package undo

import (
	"fmt"

	"github.com/kinematics-lab/linkage/pkg/types"
)

// AddRow appends one empty row at the end of a table. Revert removes the
// last row; the stack's LIFO discipline guarantees no structural change
// slips in between.
type AddRow struct {
	table types.RowTable
	text  string
}

// NewAddRow creates the command for the given table.
func NewAddRow(table types.RowTable) *AddRow {
	return &AddRow{table: table, text: "add row"}
}

// Text returns the command label.
func (c *AddRow) Text() string { return c.text }

// Apply appends an empty row.
func (c *AddRow) Apply() error {
	return c.table.InsertRow(c.table.RowCount())
}

// Revert removes the last row.
func (c *AddRow) Revert() error {
	return c.table.RemoveRow(c.table.RowCount() - 1)
}

// renumberer is satisfied by tables whose rows carry index-derived display
// names (the point table).
type renumberer interface {
	Renumber(from int)
}

// DeleteRow removes the row at a fixed index. When renumber is set the
// table's display names below the row are rewritten after the structural
// change in both directions, so they always match their row indices. The
// row is expected to have been cleared (memberships detached) by a
// preceding command in the same macro.
type DeleteRow struct {
	table    types.RowTable
	row      int
	renumber bool
}

// NewDeleteRow creates the command. Returns ErrRowOutOfRange for a bad
// index. Requesting renumbering on a table without index-derived names is
// a caller defect.
func NewDeleteRow(table types.RowTable, row int, renumber bool) (*DeleteRow, error) {
	if row < 0 || row >= table.RowCount() {
		return nil, fmt.Errorf("delete row %d: %w", row, types.ErrRowOutOfRange)
	}
	if renumber {
		if _, ok := table.(renumberer); !ok {
			return nil, fmt.Errorf("delete row %d: table cannot renumber", row)
		}
	}
	return &DeleteRow{table: table, row: row, renumber: renumber}, nil
}

// Text returns the command label.
func (c *DeleteRow) Text() string { return "delete row" }

// Apply removes the row, then renumbers the rows below it.
func (c *DeleteRow) Apply() error {
	if err := c.table.RemoveRow(c.row); err != nil {
		return err
	}
	if c.renumber {
		c.table.(renumberer).Renumber(c.row)
	}
	return nil
}

// Revert re-inserts an empty row at the same index, then renumbers the
// rows pushed below it back to their pre-removal names. The re-inserted
// row's own fields are restored by the preceding command in the macro.
func (c *DeleteRow) Revert() error {
	if err := c.table.InsertRow(c.row); err != nil {
		return err
	}
	if c.renumber {
		c.table.(renumberer).Renumber(c.row + 1)
	}
	return nil
}

// FixSequenceNumber rewrites one link row's point references around a
// removed point index. Point identity is positional: deleting the point at
// the benchmark index shifts every higher index down by one, so each link's
// reference list must follow. One command per link row; rows are
// independent, so ordering across them does not matter.
type FixSequenceNumber struct {
	links     types.LinkTable
	row       int
	benchmark int
}

// NewFixSequenceNumber creates the command for one link row.
// Returns ErrRowOutOfRange for a bad link row.
func NewFixSequenceNumber(links types.LinkTable, row, benchmark int) (*FixSequenceNumber, error) {
	if row < 0 || row >= links.RowCount() {
		return nil, fmt.Errorf("fix sequence on link row %d: %w", row, types.ErrRowOutOfRange)
	}
	return &FixSequenceNumber{links: links, row: row, benchmark: benchmark}, nil
}

// Text returns the command label.
func (c *FixSequenceNumber) Text() string { return "fix sequence number" }

// Apply shifts references above the benchmark down by one.
func (c *FixSequenceNumber) Apply() error {
	return c.shift(true)
}

// Revert shifts references at or above the benchmark back up by one.
func (c *FixSequenceNumber) Revert() error {
	return c.shift(false)
}

func (c *FixSequenceNumber) shift(forward bool) error {
	l, err := c.links.Link(c.row)
	if err != nil {
		return err
	}
	if len(l.Points) == 0 {
		return nil
	}
	for i, p := range l.Points {
		if forward {
			if p > c.benchmark {
				l.Points[i] = p - 1
			}
		} else {
			if p >= c.benchmark {
				l.Points[i] = p + 1
			}
		}
	}
	return c.links.SetLink(c.row, l)
}
