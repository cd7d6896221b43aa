package undo

import (
	"fmt"
	"strings"

	"github.com/kinematics-lab/linkage/pkg/types"
)

// pathLabel renders a path's list item text: the name followed by the
// indices of the tracked points that produced a trajectory.
func pathLabel(name string, path types.Path) string {
	var tags []string
	for i, seg := range path.Coords {
		if len(seg) > 0 {
			tags = append(tags, fmt.Sprintf("[%d]", i))
		}
	}
	return name + ": " + strings.Join(tags, ", ")
}

// AddPath appends a recorded path to the data map and its list model.
type AddPath struct {
	list types.ListModel
	data map[string]types.Path
	name string
	path types.Path
}

// NewAddPath creates the command. The path is deep-copied at construction.
func NewAddPath(list types.ListModel, data map[string]types.Path, name string, path types.Path) *AddPath {
	return &AddPath{list: list, data: data, name: name, path: path.Clone()}
}

// Text returns the command label.
func (c *AddPath) Text() string { return "add path" }

// Apply stores the path and appends its list item.
func (c *AddPath) Apply() error {
	c.data[c.name] = c.path.Clone()
	c.list.Append(&types.ListItem{Text: pathLabel(c.name, c.path)})
	return nil
}

// Revert removes the last list item and the stored path.
func (c *AddPath) Revert() error {
	if _, err := c.list.Take(c.list.Count() - 1); err != nil {
		return err
	}
	delete(c.data, c.name)
	return nil
}

// DeletePath removes the path at a list row. The full value is captured at
// construction so Revert reconstructs it identically.
type DeletePath struct {
	list types.ListModel
	data map[string]types.Path
	row  int
	item *types.ListItem
	name string
	path types.Path
}

// NewDeletePath creates the command. Returns ErrRowOutOfRange for a bad row
// and ErrEntryNotFound when the list item has no backing path — which means
// list and map were already out of step.
func NewDeletePath(list types.ListModel, data map[string]types.Path, row int) (*DeletePath, error) {
	item, err := list.Item(row)
	if err != nil {
		return nil, fmt.Errorf("delete path row %d: %w", row, err)
	}
	name, _, _ := strings.Cut(item.Text, ":")
	path, ok := data[name]
	if !ok {
		return nil, fmt.Errorf("delete path %q: %w", name, types.ErrEntryNotFound)
	}
	return &DeletePath{
		list: list,
		data: data,
		row:  row,
		item: item,
		name: name,
		path: path.Clone(),
	}, nil
}

// Text returns the command label.
func (c *DeletePath) Text() string { return "delete path" }

// Apply removes the list item and the stored path.
func (c *DeletePath) Apply() error {
	if _, err := c.list.Take(c.row); err != nil {
		return err
	}
	delete(c.data, c.name)
	return nil
}

// Revert restores the path, re-appends the original item and selects it.
func (c *DeletePath) Revert() error {
	c.data[c.name] = c.path.Clone()
	c.list.Append(c.item)
	if row, ok := c.list.Row(c.item); ok {
		c.list.SetCurrent(row)
	}
	return nil
}

// AddStorage appends a named mechanism expression to the storage list.
type AddStorage struct {
	list      types.ListModel
	name      string
	mechanism string
}

// NewAddStorage creates the command.
func NewAddStorage(list types.ListModel, name, mechanism string) *AddStorage {
	return &AddStorage{list: list, name: name, mechanism: mechanism}
}

// Text returns the command label.
func (c *AddStorage) Text() string { return "add storage" }

// Apply appends the entry.
func (c *AddStorage) Apply() error {
	c.list.Append(&types.ListItem{Text: c.name, Expr: c.mechanism})
	return nil
}

// Revert removes the last entry.
func (c *AddStorage) Revert() error {
	_, err := c.list.Take(c.list.Count() - 1)
	return err
}

// DeleteStorage removes the storage entry at a list row, capturing the name
// and expression at construction.
type DeleteStorage struct {
	list      types.ListModel
	row       int
	name      string
	mechanism string
}

// NewDeleteStorage creates the command.
// Returns ErrRowOutOfRange for a bad row.
func NewDeleteStorage(list types.ListModel, row int) (*DeleteStorage, error) {
	item, err := list.Item(row)
	if err != nil {
		return nil, fmt.Errorf("delete storage row %d: %w", row, err)
	}
	return &DeleteStorage{list: list, row: row, name: item.Text, mechanism: item.Expr}, nil
}

// Text returns the command label.
func (c *DeleteStorage) Text() string { return "delete storage" }

// Apply removes the entry.
func (c *DeleteStorage) Apply() error {
	_, err := c.list.Take(c.row)
	return err
}

// Revert reconstructs the entry at its original row.
func (c *DeleteStorage) Revert() error {
	return c.list.Insert(c.row, &types.ListItem{Text: c.name, Expr: c.mechanism})
}

// SetStorageName writes a pending storage name into the name field.
type SetStorageName struct {
	field types.TextField
	name  string
}

// NewSetStorageName creates the command.
func NewSetStorageName(field types.TextField, name string) *SetStorageName {
	return &SetStorageName{field: field, name: name}
}

// Text returns the command label.
func (c *SetStorageName) Text() string { return "set storage name" }

// Apply sets the field text.
func (c *SetStorageName) Apply() error {
	c.field.SetText(c.name)
	return nil
}

// Revert clears the field.
func (c *SetStorageName) Revert() error {
	c.field.Clear()
	return nil
}

// ClearStorageName clears the name field, capturing the effective name
// (text, or the placeholder when empty) at construction.
type ClearStorageName struct {
	field types.TextField
	name  string
}

// NewClearStorageName creates the command.
func NewClearStorageName(field types.TextField) *ClearStorageName {
	name := field.Text()
	if name == "" {
		name = field.Placeholder()
	}
	return &ClearStorageName{field: field, name: name}
}

// Text returns the command label.
func (c *ClearStorageName) Text() string { return "clear storage name" }

// Apply clears the field.
func (c *ClearStorageName) Apply() error {
	c.field.Clear()
	return nil
}

// Revert restores the captured name.
func (c *ClearStorageName) Revert() error {
	c.field.SetText(c.name)
	return nil
}

// AddVariable appends a driver variable item. The item is held by identity
// so Revert finds it even after other rows moved.
type AddVariable struct {
	list types.ListModel
	item *types.ListItem
}

// NewAddVariable creates the command from the variable's item text.
func NewAddVariable(list types.ListModel, text string) *AddVariable {
	return &AddVariable{list: list, item: &types.ListItem{Text: text, Hint: text}}
}

// Text returns the command label.
func (c *AddVariable) Text() string { return "add variable" }

// Apply appends the item.
func (c *AddVariable) Apply() error {
	c.list.Append(c.item)
	return nil
}

// Revert removes the item wherever it currently sits.
func (c *AddVariable) Revert() error {
	row, ok := c.list.Row(c.item)
	if !ok {
		return fmt.Errorf("revert add variable: %w", types.ErrEntryNotFound)
	}
	_, err := c.list.Take(row)
	return err
}

// DeleteVariable removes the variable item at a list row, holding it by
// identity for Revert.
type DeleteVariable struct {
	list types.ListModel
	item *types.ListItem
}

// NewDeleteVariable creates the command.
// Returns ErrRowOutOfRange for a bad row.
func NewDeleteVariable(list types.ListModel, row int) (*DeleteVariable, error) {
	item, err := list.Item(row)
	if err != nil {
		return nil, fmt.Errorf("delete variable row %d: %w", row, err)
	}
	return &DeleteVariable{list: list, item: item}, nil
}

// Text returns the command label.
func (c *DeleteVariable) Text() string { return "delete variable" }

// Apply removes the item wherever it currently sits.
func (c *DeleteVariable) Apply() error {
	row, ok := c.list.Row(c.item)
	if !ok {
		return fmt.Errorf("delete variable: %w", types.ErrEntryNotFound)
	}
	_, err := c.list.Take(row)
	return err
}

// Revert re-appends the item.
func (c *DeleteVariable) Revert() error {
	c.list.Append(c.item)
	return nil
}
