// Package project aggregates the point and link tables, the path, storage
// and input models, and the undo stack into one document, and provides the
// composed operations the CLI works with. Every mutation goes through the
// command stack, so any operation can be undone as a unit.
// See docs/ARCHITECTURE.md § Document.
package project

import (
	"fmt"
	"math"

	"github.com/kinematics-lab/linkage/internal/model"
	"github.com/kinematics-lab/linkage/internal/undo"
	"github.com/kinematics-lab/linkage/pkg/expr"
	"github.com/kinematics-lab/linkage/pkg/types"
)

// Document is a complete in-memory design.
type Document struct {
	Points      *model.PointTable
	Links       *model.LinkTable
	PathList    *model.List
	PathData    map[string]types.Path
	StorageList *model.List
	StorageName *model.Field
	InputList   *model.List
	Stack       *undo.Stack
}

// New creates an empty document: no points, the ground link, clean stack.
func New() *Document {
	return &Document{
		Points:      model.NewPointTable(),
		Links:       model.NewLinkTable(),
		PathList:    model.NewList(),
		PathData:    map[string]types.Path{},
		StorageList: model.NewList(),
		StorageName: model.NewField("mechanism"),
		InputList:   model.NewList(),
		Stack:       undo.NewStack(),
	}
}

// macro runs fn as one undo entry. The macro is closed even when fn fails,
// so a mid-macro error never wedges the stack: the commands applied before
// the failure stay reachable through Undo.
func (d *Document) macro(text string, fn func() error) error {
	d.Stack.BeginMacro(text)
	err := fn()
	if endErr := d.Stack.EndMacro(); err == nil {
		err = endErr
	}
	return err
}

// AddPoint appends a point row and fills it in, as one undo entry.
// Returns the new row index.
func (d *Document) AddPoint(args undo.PointArgs) (int, error) {
	for _, name := range args.Links {
		if _, ok := d.Links.FindByName(name); !ok {
			return 0, fmt.Errorf("add point: %w: %q", types.ErrUnknownLink, name)
		}
	}
	row := d.Points.RowCount()
	err := d.macro("add "+types.PointName(row), func() error {
		if err := d.Stack.Push(undo.NewAddRow(d.Points)); err != nil {
			return err
		}
		cmd, err := undo.NewEditPoint(d.Points, d.Links, row, args)
		if err != nil {
			return err
		}
		return d.Stack.Push(cmd)
	})
	if err != nil {
		return 0, err
	}
	return row, nil
}

// EditPoint rewrites a point row.
func (d *Document) EditPoint(row int, args undo.PointArgs) error {
	cmd, err := undo.NewEditPoint(d.Points, d.Links, row, args)
	if err != nil {
		return err
	}
	return d.Stack.Push(cmd)
}

// DeletePoint removes a point row as one undo entry: clear its memberships,
// shift every link reference above the row down, then remove the row with
// renumbering.
func (d *Document) DeletePoint(row int) error {
	if row < 0 || row >= d.Points.RowCount() {
		return fmt.Errorf("delete point %d: %w", row, types.ErrRowOutOfRange)
	}
	return d.macro("delete "+types.PointName(row), func() error {
		clear, err := undo.NewEditPoint(d.Points, d.Links, row, undo.PointArgs{Color: "Green"})
		if err != nil {
			return err
		}
		if err := d.Stack.Push(clear); err != nil {
			return err
		}
		for lrow := 0; lrow < d.Links.RowCount(); lrow++ {
			fix, err := undo.NewFixSequenceNumber(d.Links, lrow, row)
			if err != nil {
				return err
			}
			if err := d.Stack.Push(fix); err != nil {
				return err
			}
		}
		del, err := undo.NewDeleteRow(d.Points, row, true)
		if err != nil {
			return err
		}
		return d.Stack.Push(del)
	})
}

// AddLink appends a link row with the given members, as one undo entry.
// The name must be non-empty and unused. Returns the new row index.
func (d *Document) AddLink(args undo.LinkArgs) (int, error) {
	if args.Name == "" {
		return 0, fmt.Errorf("add link: empty name: %w", types.ErrDuplicateName)
	}
	if _, ok := d.Links.FindByName(args.Name); ok {
		return 0, fmt.Errorf("add link: %w: %q", types.ErrDuplicateName, args.Name)
	}
	for _, p := range args.Points {
		if p < 0 || p >= d.Points.RowCount() {
			return 0, fmt.Errorf("add link: %w: row %d", types.ErrUnknownPoint, p)
		}
	}
	row := d.Links.RowCount()
	err := d.macro("add "+args.Name, func() error {
		if err := d.Stack.Push(undo.NewAddRow(d.Links)); err != nil {
			return err
		}
		cmd, err := undo.NewEditLink(d.Links, d.Points, row, args)
		if err != nil {
			return err
		}
		return d.Stack.Push(cmd)
	})
	if err != nil {
		return 0, err
	}
	return row, nil
}

// EditLink rewrites a link row. Renaming to an existing name is rejected.
func (d *Document) EditLink(row int, args undo.LinkArgs) error {
	old, err := d.Links.Link(row)
	if err != nil {
		return fmt.Errorf("edit link %d: %w", row, err)
	}
	if args.Name != old.Name {
		if _, ok := d.Links.FindByName(args.Name); ok {
			return fmt.Errorf("edit link: %w: %q", types.ErrDuplicateName, args.Name)
		}
	}
	cmd, err := undo.NewEditLink(d.Links, d.Points, row, args)
	if err != nil {
		return err
	}
	return d.Stack.Push(cmd)
}

// DeleteLink removes a link row as one undo entry: rename it to the empty
// name, which detaches every member point, then remove the row. The ground
// link cannot be deleted. Link rows are not positional identities, so no
// renumbering happens.
func (d *Document) DeleteLink(row int) error {
	if row == types.GroundRow {
		return fmt.Errorf("delete link: %w", types.ErrGroundRow)
	}
	old, err := d.Links.Link(row)
	if err != nil {
		return fmt.Errorf("delete link %d: %w", row, err)
	}
	return d.macro("delete "+old.Name, func() error {
		clear, err := undo.NewEditLink(d.Links, d.Points, row, undo.LinkArgs{
			Color: types.DefaultGroundColor,
		})
		if err != nil {
			return err
		}
		if err := d.Stack.Push(clear); err != nil {
			return err
		}
		del, err := undo.NewDeleteRow(d.Links, row, false)
		if err != nil {
			return err
		}
		return d.Stack.Push(del)
	})
}

// RecordPath stores a recorded trajectory under the given name.
func (d *Document) RecordPath(name string, path types.Path) error {
	if _, ok := d.PathData[name]; ok {
		return fmt.Errorf("record path: %w: %q", types.ErrDuplicateName, name)
	}
	return d.Stack.Push(undo.NewAddPath(d.PathList, d.PathData, name, path))
}

// DeletePath removes the path at a list row.
func (d *Document) DeletePath(row int) error {
	cmd, err := undo.NewDeletePath(d.PathList, d.PathData, row)
	if err != nil {
		return err
	}
	return d.Stack.Push(cmd)
}

// StoreMechanism captures the current mechanism expression as a storage
// entry and clears the pending name field, as one undo entry. The entry
// name comes from the field, falling back to its placeholder.
func (d *Document) StoreMechanism() error {
	name := d.StorageName.Text()
	if name == "" {
		name = d.StorageName.Placeholder()
	}
	return d.macro("store "+name, func() error {
		if err := d.Stack.Push(undo.NewAddStorage(d.StorageList, name, d.Expression())); err != nil {
			return err
		}
		return d.Stack.Push(undo.NewClearStorageName(d.StorageName))
	})
}

// AddStorageEntry appends a named mechanism expression directly, used when
// loading saved entries.
func (d *Document) AddStorageEntry(name, mechanism string) error {
	return d.Stack.Push(undo.NewAddStorage(d.StorageList, name, mechanism))
}

// DeleteStorageEntry removes the storage entry at a list row.
func (d *Document) DeleteStorageEntry(row int) error {
	cmd, err := undo.NewDeleteStorage(d.StorageList, row)
	if err != nil {
		return err
	}
	return d.Stack.Push(cmd)
}

// AddInput registers a driver variable for a base/drive point pair. Both
// points must share a link, and a revolute pair can only be driven once.
// The initial value is the slope angle from base to drive.
func (d *Document) AddInput(base, drive int) error {
	p0, err := d.Points.Point(base)
	if err != nil {
		return fmt.Errorf("add input: base %d: %w", base, err)
	}
	p1, err := d.Points.Point(drive)
	if err != nil {
		return fmt.Errorf("add input: drive %d: %w", drive, err)
	}
	if !sameLink(&p0, &p1) {
		return fmt.Errorf("add input: %w: Point%d and Point%d share no link",
			types.ErrInvalidVariable, base, drive)
	}
	for _, v := range d.Inputs() {
		if samePair(v, base, drive) && p0.Joint == types.JointR {
			return fmt.Errorf("add input: %w: pair already driven", types.ErrInvalidVariable)
		}
	}
	v := types.Variable{Base: base, Drive: drive, Value: slopeAngle(&p0, &p1)}
	return d.Stack.Push(undo.NewAddVariable(d.InputList, v.Text()))
}

// DeleteInput removes the driver variable at a list row.
func (d *Document) DeleteInput(row int) error {
	cmd, err := undo.NewDeleteVariable(d.InputList, row)
	if err != nil {
		return err
	}
	return d.Stack.Push(cmd)
}

// Inputs returns the parsed driver variables in list order. Unparseable
// items are skipped; they cannot be produced through the command layer.
func (d *Document) Inputs() []types.Variable {
	var out []types.Variable
	for _, text := range d.InputList.Texts() {
		v, err := types.ParseVariable(text)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Expression returns the mechanism expression for the current point table.
func (d *Document) Expression() string {
	return expr.Emit(d.Points.Points())
}

// LoadExpression rebuilds the mechanism from an expression string and a
// link color map, as one undo entry. Used when checking out a commit.
func (d *Document) LoadExpression(mechanism string, colors map[string]string) error {
	points, err := expr.Parse(mechanism)
	if err != nil {
		return err
	}
	return d.macro("load mechanism", func() error {
		if err := d.loadLinks(colors); err != nil {
			return err
		}
		for _, p := range points {
			if _, err := d.AddPoint(undo.PointArgs{
				Links: p.Links,
				Joint: p.Joint,
				Angle: p.Angle,
				Color: p.Color,
				X:     p.X,
				Y:     p.Y,
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// LinkColors returns the name-to-color map of the link table.
func (d *Document) LinkColors() map[string]string {
	out := make(map[string]string, d.Links.RowCount())
	for _, l := range d.Links.Links() {
		out[l.Name] = l.Color
	}
	return out
}

// Undo reverts the newest undo entry.
func (d *Document) Undo() error { return d.Stack.Undo() }

// Redo re-applies the newest undone entry.
func (d *Document) Redo() error { return d.Stack.Redo() }

// Clear resets the document to the empty state and drops all history.
func (d *Document) Clear() {
	d.Points.Clear()
	d.Links.Clear()
	d.PathList.Clear()
	for name := range d.PathData {
		delete(d.PathData, name)
	}
	d.StorageList.Clear()
	d.StorageName.Clear()
	d.InputList.Clear()
	d.Stack.Clear()
}

func sameLink(p0, p1 *types.Point) bool {
	for _, name := range p0.Links {
		if p1.HasLink(name) {
			return true
		}
	}
	return false
}

func samePair(v types.Variable, base, drive int) bool {
	if v.Base == base && v.Drive == drive {
		return true
	}
	return v.Base == drive && v.Drive == base
}

// slopeAngle returns the angle of the line from p0 to p1 in degrees.
func slopeAngle(p0, p1 *types.Point) float64 {
	return math.Atan2(p1.Y-p0.Y, p1.X-p0.X) * 180 / math.Pi
}
