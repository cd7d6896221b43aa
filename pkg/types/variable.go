package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Variable is a driver pair: the relative angle (or offset) between the
// base and drive points parametrizes mechanism motion. The list widget
// stores variables as "Point{base}->Point{drive}->{value}" text.
type Variable struct {
	Base  int     `yaml:"base"`
	Drive int     `yaml:"drive"`
	Value float64 `yaml:"-"`
}

// Text renders the variable in its list item form.
func (v Variable) Text() string {
	return strings.Join([]string{
		PointName(v.Base),
		PointName(v.Drive),
		fmt.Sprintf("%.02f", v.Value),
	}, "->")
}

// ParseVariable parses a "Point0->Point1->45.00" item back into a Variable.
func ParseVariable(text string) (Variable, error) {
	parts := strings.Split(text, "->")
	if len(parts) != 3 {
		return Variable{}, fmt.Errorf("%w: %q", ErrInvalidVariable, text)
	}
	base, err := PointIndex(parts[0])
	if err != nil {
		return Variable{}, fmt.Errorf("%w: %q", ErrInvalidVariable, text)
	}
	drive, err := PointIndex(parts[1])
	if err != nil {
		return Variable{}, fmt.Errorf("%w: %q", ErrInvalidVariable, text)
	}
	value, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Variable{}, fmt.Errorf("%w: %q", ErrInvalidVariable, text)
	}
	return Variable{Base: base, Drive: drive, Value: value}, nil
}
