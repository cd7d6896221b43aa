package model

import (
	"github.com/kinematics-lab/linkage/pkg/types"
)

// List is an ordered list model with a selection cursor, backing the path,
// storage and variable entries. Items are held by pointer so commands can
// locate an item after unrelated rows move.
type List struct {
	items   []*types.ListItem
	current int
}

var _ types.ListModel = (*List)(nil)

// NewList creates an empty list with no selection.
func NewList() *List {
	return &List{current: -1}
}

// Count returns the number of items.
func (l *List) Count() int {
	return len(l.items)
}

// Item returns the item at the given row.
func (l *List) Item(row int) (*types.ListItem, error) {
	if row < 0 || row >= len(l.items) {
		return nil, types.ErrRowOutOfRange
	}
	return l.items[row], nil
}

// Append adds an item at the end.
func (l *List) Append(item *types.ListItem) {
	l.items = append(l.items, item)
}

// Insert adds an item at the given row.
func (l *List) Insert(row int, item *types.ListItem) error {
	if row < 0 || row > len(l.items) {
		return types.ErrRowOutOfRange
	}
	l.items = append(l.items, nil)
	copy(l.items[row+1:], l.items[row:])
	l.items[row] = item
	return nil
}

// Take removes and returns the item at the given row.
func (l *List) Take(row int) (*types.ListItem, error) {
	if row < 0 || row >= len(l.items) {
		return nil, types.ErrRowOutOfRange
	}
	item := l.items[row]
	l.items = append(l.items[:row], l.items[row+1:]...)
	if l.current >= len(l.items) {
		l.current = len(l.items) - 1
	}
	return item, nil
}

// Row returns the current row of the given item.
func (l *List) Row(item *types.ListItem) (int, bool) {
	for row := range l.items {
		if l.items[row] == item {
			return row, true
		}
	}
	return 0, false
}

// SetCurrent moves the selection cursor. Out-of-range rows clear it.
func (l *List) SetCurrent(row int) {
	if row < 0 || row >= len(l.items) {
		l.current = -1
		return
	}
	l.current = row
}

// Current returns the selected row, or -1 when nothing is selected.
func (l *List) Current() int {
	return l.current
}

// Texts returns the item texts in order.
func (l *List) Texts() []string {
	out := make([]string, len(l.items))
	for i, item := range l.items {
		out[i] = item.Text
	}
	return out
}

// Clear removes every item and the selection.
func (l *List) Clear() {
	l.items = nil
	l.current = -1
}
