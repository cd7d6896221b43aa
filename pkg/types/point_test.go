package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseJointType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    JointType
		wantErr error
	}{
		{name: "revolute", input: "R", want: JointR},
		{name: "prismatic", input: "P", want: JointP},
		{name: "revolute-prismatic", input: "RP", want: JointRP},
		{name: "unknown tag", input: "Q", wantErr: ErrInvalidJointType},
		{name: "empty", input: "", wantErr: ErrInvalidJointType},
		{name: "lowercase rejected", input: "r", wantErr: ErrInvalidJointType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJointType(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, got.String(), "String should round-trip")
		})
	}
}

func TestPointTypeText(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		want  string
	}{
		{name: "revolute has no angle", point: Point{Joint: JointR, Angle: 45}, want: "R"},
		{name: "prismatic carries angle", point: Point{Joint: JointP, Angle: 30}, want: "P:30"},
		{name: "rp carries angle", point: Point{Joint: JointRP, Angle: 0.5}, want: "RP:0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.point.TypeText())
		})
	}
}

func TestPointLinkMembership(t *testing.T) {
	t.Run("attach and detach", func(t *testing.T) {
		p := Point{Links: []string{"ground"}}
		p.AttachLink("L1")
		assert.Equal(t, []string{"ground", "L1"}, p.Links)
		assert.True(t, p.HasLink("L1"))

		assert.True(t, p.DetachLink("ground"))
		assert.Equal(t, []string{"L1"}, p.Links)
	})

	t.Run("detach empty name is a no-op", func(t *testing.T) {
		p := Point{Links: []string{"ground", "L1"}}
		assert.False(t, p.DetachLink(""))
		assert.Equal(t, []string{"ground", "L1"}, p.Links)
	})

	t.Run("detach removes first occurrence only", func(t *testing.T) {
		p := Point{Links: []string{"L1", "ground", "L1"}}
		assert.True(t, p.DetachLink("L1"))
		assert.Equal(t, []string{"ground", "L1"}, p.Links)
	})

	t.Run("detach missing name", func(t *testing.T) {
		p := Point{Links: []string{"ground"}}
		assert.False(t, p.DetachLink("L9"))
	})
}

func TestPointReplaceLink(t *testing.T) {
	tests := []struct {
		name  string
		links []string
		from  string
		to    string
		want  []string
	}{
		{
			name:  "rename in place",
			links: []string{"ground", "L1"},
			from:  "L1",
			to:    "L2",
			want:  []string{"ground", "L2"},
		},
		{
			name:  "rename to empty drops the entry",
			links: []string{"ground", "L1"},
			from:  "L1",
			to:    "",
			want:  []string{"ground"},
		},
		{
			name:  "exact match only",
			links: []string{"L1", "L12"},
			from:  "L1",
			to:    "L2",
			want:  []string{"L2", "L12"},
		},
		{
			name:  "absent name leaves links untouched",
			links: []string{"ground"},
			from:  "L1",
			to:    "L2",
			want:  []string{"ground"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Point{Links: append([]string(nil), tt.links...)}
			p.ReplaceLink(tt.from, tt.to)
			assert.Equal(t, tt.want, p.Links)
		})
	}
}

func TestPointNameRoundTrip(t *testing.T) {
	assert.Equal(t, "Point0", PointName(0))
	assert.Equal(t, "Point12", PointName(12))

	row, err := PointIndex("Point7")
	assert.NoError(t, err)
	assert.Equal(t, 7, row)

	_, err = PointIndex("Link7")
	assert.ErrorIs(t, err, ErrUnknownPoint)
	_, err = PointIndex("PointX")
	assert.ErrorIs(t, err, ErrUnknownPoint)
}

func TestPointClone(t *testing.T) {
	p := Point{
		Name:    "Point0",
		Links:   []string{"ground", "L1"},
		Current: []Coord{{X: 1, Y: 2}},
	}
	c := p.Clone()
	c.Links[0] = "changed"
	c.Current[0].X = 99

	assert.Equal(t, "ground", p.Links[0], "clone must not alias links")
	assert.Equal(t, 1.0, p.Current[0].X, "clone must not alias coordinates")
}

func TestSplitNames(t *testing.T) {
	assert.Equal(t, []string{"ground", "L1"}, SplitNames("ground,L1"))
	assert.Equal(t, []string{"L1"}, SplitNames(",L1,"))
	assert.Equal(t, []string{"a", "b"}, SplitNames(" a , b "))
	assert.Nil(t, SplitNames(""))
}
