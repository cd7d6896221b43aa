// Package undo implements the reversible command layer and its stack.
//
// Every mutation of the document models goes through a Command pushed onto a
// Stack. A command is constructed with everything both directions need: the
// constructor snapshots prior state before any mutation, so Revert never
// reads state that may have changed since. Constructors validate their
// preconditions (row in range, link names resolvable) and return sentinel
// errors from pkg/types on violation; Apply and Revert on a validly
// constructed command are not expected to fail.
// See docs/ARCHITECTURE.md § Command Layer.
package undo

import "errors"

// Command is a reversible unit of mutation over the document models.
// Revert after Apply must leave every observable field identical to the
// pre-apply state.
type Command interface {
	// Text is a short description for undo/redo menu labels.
	Text() string

	// Apply mutates the owned models forward.
	Apply() error

	// Revert restores the exact prior state.
	Revert() error
}

// Stack errors.
var (
	ErrMacroActive = errors.New("macro composition in progress")
	ErrNoMacro     = errors.New("no macro composition in progress")
)

// Stack is a linear undo/redo history. It owns the only mutation path of
// the models it manages: once tables are under stack management, no other
// code may write them or the recorded history becomes invalid.
//
// Stack is not safe for concurrent use; commands run synchronously on the
// caller's goroutine.
type Stack struct {
	applied []Command
	index   int // number of applied, not-yet-undone commands
	clean   int // index at the last SetClean, -1 when unreachable
	macros  []*Macro
}

// NewStack creates an empty stack in the clean state.
func NewStack() *Stack {
	return &Stack{}
}

// Push applies the command and records it for undo. The redo history is
// discarded. If Apply fails the command is not recorded.
// During macro composition the command is collected into the open macro
// instead of the history.
func (s *Stack) Push(c Command) error {
	if err := c.Apply(); err != nil {
		return err
	}
	if n := len(s.macros); n > 0 {
		m := s.macros[n-1]
		m.commands = append(m.commands, c)
		return nil
	}
	s.record(c)
	return nil
}

func (s *Stack) record(c Command) {
	if s.clean > s.index {
		// The clean state lived in the discarded redo history.
		s.clean = -1
	}
	s.applied = append(s.applied[:s.index], c)
	s.index++
}

// Undo reverts the most recently applied command and moves it to the redo
// history. Undo on an empty history is a no-op.
func (s *Stack) Undo() error {
	if len(s.macros) > 0 {
		return ErrMacroActive
	}
	if s.index == 0 {
		return nil
	}
	if err := s.applied[s.index-1].Revert(); err != nil {
		return err
	}
	s.index--
	return nil
}

// Redo re-applies the most recently undone command.
// Redo with nothing undone is a no-op.
func (s *Stack) Redo() error {
	if len(s.macros) > 0 {
		return ErrMacroActive
	}
	if s.index == len(s.applied) {
		return nil
	}
	if err := s.applied[s.index].Apply(); err != nil {
		return err
	}
	s.index++
	return nil
}

// Clear discards all history, used on document reset and load.
func (s *Stack) Clear() {
	s.applied = nil
	s.index = 0
	s.clean = 0
	s.macros = nil
}

// CanUndo reports whether there is a command to undo.
func (s *Stack) CanUndo() bool {
	return len(s.macros) == 0 && s.index > 0
}

// CanRedo reports whether there is a command to redo.
func (s *Stack) CanRedo() bool {
	return len(s.macros) == 0 && s.index < len(s.applied)
}

// UndoText returns the label of the next command to undo.
func (s *Stack) UndoText() string {
	if !s.CanUndo() {
		return ""
	}
	return s.applied[s.index-1].Text()
}

// RedoText returns the label of the next command to redo.
func (s *Stack) RedoText() string {
	if !s.CanRedo() {
		return ""
	}
	return s.applied[s.index].Text()
}

// Count returns the number of commands in the history.
func (s *Stack) Count() int {
	return len(s.applied)
}

// Index returns the number of applied, not-yet-undone commands.
func (s *Stack) Index() int {
	return s.index
}

// BeginMacro starts collecting subsequent pushes into one compound command
// with the given label. Macros nest; inner macros become children of the
// outer one. The redo history is discarded.
func (s *Stack) BeginMacro(text string) {
	if len(s.macros) == 0 {
		s.applied = s.applied[:s.index]
		if s.clean > s.index {
			s.clean = -1
		}
	}
	s.macros = append(s.macros, &Macro{text: text})
}

// EndMacro closes the innermost open macro and records it as a single
// history entry. An empty macro is dropped.
// Returns ErrNoMacro when no macro is open.
func (s *Stack) EndMacro() error {
	n := len(s.macros)
	if n == 0 {
		return ErrNoMacro
	}
	m := s.macros[n-1]
	s.macros = s.macros[:n-1]
	if len(m.commands) == 0 {
		return nil
	}
	if n > 1 {
		outer := s.macros[n-2]
		outer.commands = append(outer.commands, m)
		return nil
	}
	s.record(m)
	return nil
}

// SetClean marks the current position as the saved document state.
func (s *Stack) SetClean() {
	s.clean = s.index
}

// IsClean reports whether the history sits at the last saved state.
func (s *Stack) IsClean() bool {
	return len(s.macros) == 0 && s.clean == s.index
}

// Macro is a compound command: its children apply in order and revert in
// reverse order. Built through Stack.BeginMacro/EndMacro; children are
// already applied by the time the macro is recorded.
type Macro struct {
	text     string
	commands []Command
}

// Text returns the macro label.
func (m *Macro) Text() string {
	return m.text
}

// Apply runs the children in forward order.
func (m *Macro) Apply() error {
	for _, c := range m.commands {
		if err := c.Apply(); err != nil {
			return err
		}
	}
	return nil
}

// Revert runs the children in reverse order.
func (m *Macro) Revert() error {
	for i := len(m.commands) - 1; i >= 0; i-- {
		if err := m.commands[i].Revert(); err != nil {
			return err
		}
	}
	return nil
}
