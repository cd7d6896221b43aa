// Package expr encodes a mechanism as its expression string, the compact
// text form used by storage entries, commit payloads and the CLI:
//
//	M[J[R, color[Green], P[0.0, 0.0], L[ground, L1]], ...]
//
// Each J[...] is one point: joint type, slider angle (A[...], slider joints
// only), color, position and link memberships. See docs/ARCHITECTURE.md
// § Expressions.
package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kinematics-lab/linkage/pkg/types"
)

// ErrSyntax reports a malformed expression.
var ErrSyntax = errors.New("invalid mechanism expression")

// Emit renders the expression for a list of points.
func Emit(points []types.Point) string {
	var b strings.Builder
	b.WriteString("M[")
	for i := range points {
		if i > 0 {
			b.WriteString(", ")
		}
		emitJoint(&b, &points[i])
	}
	b.WriteString("]")
	return b.String()
}

func emitJoint(b *strings.Builder, p *types.Point) {
	b.WriteString("J[")
	b.WriteString(p.Joint.String())
	if p.Joint.HasAngle() {
		fmt.Fprintf(b, ", A[%s]", formatFloat(p.Angle))
	}
	fmt.Fprintf(b, ", color[%s]", p.Color)
	fmt.Fprintf(b, ", P[%s, %s]", formatFloat(p.X), formatFloat(p.Y))
	b.WriteString(", L[")
	b.WriteString(strings.Join(p.Links, ", "))
	b.WriteString("]]")
}

// formatFloat renders a coordinate the way the original files store it:
// shortest form, but always with a decimal point.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// Parse decodes an expression into points. Names are assigned positionally
// ("Point0", "Point1", ...) and Current is seeded from the position, so the
// result can be loaded straight into a point table.
func Parse(s string) ([]types.Point, error) {
	p := &parser{src: s}
	p.skipSpace()
	if !p.literal("M[") {
		return nil, p.fail("expected M[")
	}
	var points []types.Point
	for {
		p.skipSpace()
		if p.literal("]") {
			break
		}
		if len(points) > 0 && !p.literal(",") {
			return nil, p.fail("expected , between joints")
		}
		p.skipSpace()
		pt, err := p.joint(len(points))
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.fail("trailing input")
	}
	return points, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) fail(msg string) error {
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, msg, p.pos)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n') {
		p.pos++
	}
}

// literal consumes the given text when it is next in the input.
func (p *parser) literal(text string) bool {
	if strings.HasPrefix(p.src[p.pos:], text) {
		p.pos += len(text)
		return true
	}
	return false
}

// token consumes up to the next delimiter (comma or bracket), trimmed.
func (p *parser) token() string {
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune(",[]", rune(p.src[p.pos])) {
		p.pos++
	}
	return strings.TrimSpace(p.src[start:p.pos])
}

func (p *parser) number() (float64, error) {
	tok := p.token()
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, p.fail(fmt.Sprintf("bad number %q", tok))
	}
	return f, nil
}

// joint parses one J[...] entry.
func (p *parser) joint(row int) (types.Point, error) {
	pt := types.Point{Name: types.PointName(row)}
	if !p.literal("J[") {
		return pt, p.fail("expected J[")
	}
	joint, err := types.ParseJointType(p.token())
	if err != nil {
		return pt, p.fail(err.Error())
	}
	pt.Joint = joint

	for {
		p.skipSpace()
		if p.literal("]") {
			break
		}
		if !p.literal(",") {
			return pt, p.fail("expected , between joint fields")
		}
		p.skipSpace()
		switch {
		case p.literal("A["):
			if pt.Angle, err = p.number(); err != nil {
				return pt, err
			}
			if !p.literal("]") {
				return pt, p.fail("unterminated A[")
			}
		case p.literal("color["):
			pt.Color = p.token()
			if !p.literal("]") {
				return pt, p.fail("unterminated color[")
			}
		case p.literal("P["):
			if pt.X, err = p.number(); err != nil {
				return pt, err
			}
			if !p.literal(",") {
				return pt, p.fail("expected , in P[")
			}
			if pt.Y, err = p.number(); err != nil {
				return pt, err
			}
			if !p.literal("]") {
				return pt, p.fail("unterminated P[")
			}
		case p.literal("L["):
			for {
				p.skipSpace()
				if p.literal("]") {
					break
				}
				if len(pt.Links) > 0 && !p.literal(",") {
					return pt, p.fail("expected , in L[")
				}
				p.skipSpace()
				name := p.token()
				if name == "" {
					return pt, p.fail("empty link name")
				}
				pt.Links = append(pt.Links, name)
			}
		default:
			return pt, p.fail("unknown joint field")
		}
	}
	pt.Current = []types.Coord{{X: pt.X, Y: pt.Y}}
	return pt, nil
}
