package types

import "errors"

// RowTable is the minimal structural contract shared by both tables.
type RowTable interface {
	// RowCount returns the number of rows.
	RowCount() int

	// InsertRow inserts an empty row at the given index.
	// Returns ErrRowOutOfRange if the index is not in [0, RowCount()].
	InsertRow(at int) error

	// RemoveRow removes the row at the given index.
	// Returns ErrRowOutOfRange if the index is not in [0, RowCount()).
	RemoveRow(at int) error
}

// PointTable provides typed access to the point rows.
type PointTable interface {
	RowTable

	// Point returns a deep copy of the row.
	// Returns ErrRowOutOfRange for a bad index.
	Point(row int) (Point, error)

	// SetPoint overwrites every field of the row.
	SetPoint(row int, p Point) error

	// Renumber rewrites the display names of rows from the given index down
	// the table so they match their row indices again.
	Renumber(from int)
}

// LinkTable provides typed access to the link rows. Row 0 is always the
// ground link; implementations must refuse to remove it.
type LinkTable interface {
	RowTable

	// Link returns a deep copy of the row.
	// Returns ErrRowOutOfRange for a bad index.
	Link(row int) (Link, error)

	// SetLink overwrites every field of the row.
	SetLink(row int, l Link) error

	// FindByName returns the row index of the named link.
	FindByName(name string) (int, bool)
}

// ListItem is one entry of a list model. Display decorations (icons,
// tooltips) are derived from these values, never stored separately.
type ListItem struct {
	Text string
	Hint string // tooltip text
	Expr string // mechanism expression, set on storage entries
}

// ListModel is the list widget equivalent consumed by the path, storage and
// variable commands. Items are held by pointer so a command can find an
// item's current row after unrelated insertions and removals.
type ListModel interface {
	// Count returns the number of items.
	Count() int

	// Item returns the item at the given row.
	// Returns ErrRowOutOfRange for a bad index.
	Item(row int) (*ListItem, error)

	// Append adds an item at the end.
	Append(item *ListItem)

	// Insert adds an item at the given row.
	Insert(row int, item *ListItem) error

	// Take removes and returns the item at the given row.
	Take(row int) (*ListItem, error)

	// Row returns the current row of an item added earlier.
	Row(item *ListItem) (int, bool)

	// SetCurrent moves the selection cursor.
	SetCurrent(row int)
}

// TextField is the single-line input equivalent consumed by the storage
// name commands.
type TextField interface {
	Text() string
	SetText(s string)
	Clear()
	Placeholder() string
}

// Table and command preconditions. A caller is expected to validate before
// constructing a command; these surface caller defects, not user input
// problems.
var (
	ErrRowOutOfRange = errors.New("row index out of range")
	ErrUnknownLink   = errors.New("unknown link name")
	ErrUnknownPoint  = errors.New("unknown point reference")
	ErrGroundRow     = errors.New("ground link cannot be removed")
)

// Entity and entry errors.
var (
	ErrInvalidJointType = errors.New("invalid joint type")
	ErrInvalidVariable  = errors.New("invalid variable text")
	ErrDuplicateName    = errors.New("name already in use")
	ErrEntryNotFound    = errors.New("entry not found")
)
