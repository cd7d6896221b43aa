package model

import "github.com/kinematics-lab/linkage/pkg/types"

// Field is a single-line text holder, the headless stand-in for the storage
// name input.
type Field struct {
	text        string
	placeholder string
}

var _ types.TextField = (*Field)(nil)

// NewField creates a field with the given placeholder text.
func NewField(placeholder string) *Field {
	return &Field{placeholder: placeholder}
}

func (f *Field) Text() string        { return f.text }
func (f *Field) SetText(s string)    { f.text = s }
func (f *Field) Clear()              { f.text = "" }
func (f *Field) Placeholder() string { return f.placeholder }
