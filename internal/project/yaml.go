package project

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/kinematics-lab/linkage/internal/undo"
	"github.com/kinematics-lab/linkage/pkg/types"
)

// fileHeader leads every saved project file.
const fileHeader = "# Generated by linkage\n\n"

// fileData is the on-disk project schema.
type fileData struct {
	Mechanism []pointData               `yaml:"mechanism"`
	Links     map[string]string         `yaml:"links"`
	Input     []inputData               `yaml:"input"`
	Storage   [][]string                `yaml:"storage"`
	Path      map[string][][][2]float64 `yaml:"path"`
}

// pointData is one mechanism entry. The angle is stored only for slider
// joints.
type pointData struct {
	Links []string `yaml:"links"`
	Type  int      `yaml:"type"`
	X     float64  `yaml:"x"`
	Y     float64  `yaml:"y"`
	Angle *float64 `yaml:"angle,omitempty"`
}

// inputData is one driver variable pair. The value is not persisted; it is
// recomputed from the point positions on load.
type inputData struct {
	Base  int `yaml:"base"`
	Drive int `yaml:"drive"`
}

// Marshal renders the document as project-file bytes.
func (d *Document) Marshal() ([]byte, error) {
	data := fileData{
		Links: d.LinkColors(),
		Path:  map[string][][][2]float64{},
	}
	for _, p := range d.Points.Points() {
		pd := pointData{
			Links: p.Links,
			Type:  int(p.Joint),
			X:     p.X,
			Y:     p.Y,
		}
		if p.Joint.HasAngle() {
			angle := p.Angle
			pd.Angle = &angle
		}
		data.Mechanism = append(data.Mechanism, pd)
	}
	for _, v := range d.Inputs() {
		data.Input = append(data.Input, inputData{Base: v.Base, Drive: v.Drive})
	}
	for row := 0; row < d.StorageList.Count(); row++ {
		item, err := d.StorageList.Item(row)
		if err != nil {
			return nil, err
		}
		data.Storage = append(data.Storage, []string{item.Text, item.Expr})
	}
	for name, path := range d.PathData {
		var coords [][][2]float64
		for _, seg := range path.Coords {
			points := make([][2]float64, len(seg))
			for i, c := range seg {
				points[i] = [2]float64{c.X, c.Y}
			}
			coords = append(coords, points)
		}
		data.Path[name] = coords
	}

	out, err := yaml.Marshal(&data)
	if err != nil {
		return nil, fmt.Errorf("marshal project: %w", err)
	}
	return append([]byte(fileHeader), out...), nil
}

// Unmarshal loads project-file bytes into the document. The current content
// and history are cleared first; each loaded section lands as one macro, so
// the load is undoable section by section.
func (d *Document) Unmarshal(in []byte) error {
	var data fileData
	if err := yaml.Unmarshal(in, &data); err != nil {
		return fmt.Errorf("unmarshal project: %w", err)
	}
	d.Clear()

	err := d.macro("load mechanism", func() error {
		if err := d.loadLinks(data.Links); err != nil {
			return err
		}
		return d.loadPoints(data.Mechanism)
	})
	if err != nil {
		return err
	}

	err = d.macro("load input data", func() error {
		for _, pair := range data.Input {
			err := d.AddInput(pair.Base, pair.Drive)
			if errors.Is(err, types.ErrInvalidVariable) || errors.Is(err, types.ErrRowOutOfRange) {
				continue // stale pair in the file; the original skips these too
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = d.macro("load storage", func() error {
		for _, entry := range data.Storage {
			if len(entry) != 2 {
				return fmt.Errorf("unmarshal project: storage entry needs name and expression")
			}
			if err := d.AddStorageEntry(entry[0], entry[1]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = d.macro("load paths", func() error {
		for name, coords := range data.Path {
			path := types.Path{}
			for _, seg := range coords {
				points := make([]types.Coord, len(seg))
				for i, c := range seg {
					points[i] = types.Coord{X: c[0], Y: c[1]}
				}
				path.Coords = append(path.Coords, points)
			}
			if err := d.RecordPath(name, path); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	d.Stack.SetClean()
	return nil
}

// loadLinks creates every named link with its color. The ground link
// already exists, so it only takes its color.
func (d *Document) loadLinks(links map[string]string) error {
	if color, ok := links[types.GroundName]; ok && color != types.DefaultGroundColor {
		if err := d.EditLink(types.GroundRow, undo.LinkArgs{
			Name:  types.GroundName,
			Color: color,
		}); err != nil {
			return err
		}
	}
	// Map order is unspecified; sort so re-loading gives a stable table.
	// Membership comes from the points.
	names := make([]string, 0, len(links))
	for name := range links {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if name == types.GroundName {
			continue
		}
		if _, err := d.AddLink(undo.LinkArgs{Name: name, Color: links[name]}); err != nil {
			return err
		}
	}
	return nil
}

// loadPoints fills the point table. Loaded points render in the default
// color, as the original application does.
func (d *Document) loadPoints(mechanism []pointData) error {
	for _, pd := range mechanism {
		args := undo.PointArgs{
			Links: pd.Links,
			Joint: types.JointType(pd.Type),
			Color: "Green",
			X:     pd.X,
			Y:     pd.Y,
		}
		if pd.Angle != nil {
			args.Angle = *pd.Angle
		}
		if _, err := d.AddPoint(args); err != nil {
			return err
		}
	}
	return nil
}

// SaveFile writes the project to a file.
func (d *Document) SaveFile(path string) error {
	out, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	d.Stack.SetClean()
	return nil
}

// LoadFile reads a project file into the document.
func (d *Document) LoadFile(path string) error {
	in, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}
	return d.Unmarshal(in)
}
