package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kinematics-lab/linkage/internal/undo"
	"github.com/kinematics-lab/linkage/pkg/types"
)

var (
	pointLinks string
	pointType  string
	pointAngle float64
	pointColor string
	pointX     float64
	pointY     float64
)

var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Manage the points of the project",
}

var pointAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a point",
	Long: `Add appends a point to the project.

Example:
  linkage point add --links ground,L1 --x -6.5 --y -1.3
  linkage point add --links L1 --type P --angle 30`,
	RunE: runPointAdd,
}

var pointEditCmd = &cobra.Command{
	Use:   "edit ROW",
	Short: "Rewrite a point",
	Args:  cobra.ExactArgs(1),
	RunE:  runPointEdit,
}

var pointDeleteCmd = &cobra.Command{
	Use:   "delete ROW",
	Short: "Delete a point",
	Long: `Delete removes a point. Points below it move up one row and every
link reference follows, so the design stays consistent.`,
	Args: cobra.ExactArgs(1),
	RunE: runPointDelete,
}

var pointListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the points",
	RunE:  runPointList,
}

func init() {
	for _, cmd := range []*cobra.Command{pointAddCmd, pointEditCmd} {
		cmd.Flags().StringVar(&pointLinks, "links", "", "comma-separated link memberships")
		cmd.Flags().StringVar(&pointType, "type", "R", "joint type: R, P or RP")
		cmd.Flags().Float64Var(&pointAngle, "angle", 0, "slider angle (P and RP joints)")
		cmd.Flags().StringVar(&pointColor, "color", "Green", "display color")
		cmd.Flags().Float64Var(&pointX, "x", 0, "x coordinate")
		cmd.Flags().Float64Var(&pointY, "y", 0, "y coordinate")
	}
	pointCmd.AddCommand(pointAddCmd)
	pointCmd.AddCommand(pointEditCmd)
	pointCmd.AddCommand(pointDeleteCmd)
	pointCmd.AddCommand(pointListCmd)
}

func pointArgs() (undo.PointArgs, error) {
	joint, err := types.ParseJointType(pointType)
	if err != nil {
		return undo.PointArgs{}, err
	}
	return undo.PointArgs{
		Links: parseNames(pointLinks),
		Joint: joint,
		Angle: pointAngle,
		Color: pointColor,
		X:     pointX,
		Y:     pointY,
	}, nil
}

func runPointAdd(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	pa, err := pointArgs()
	if err != nil {
		return err
	}
	row, err := doc.AddPoint(pa)
	if err != nil {
		return err
	}
	if err := doc.SaveFile(flagFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", types.PointName(row))
	return nil
}

func runPointEdit(cmd *cobra.Command, args []string) error {
	row, err := parseRow(args[0])
	if err != nil {
		return err
	}
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	pa, err := pointArgs()
	if err != nil {
		return err
	}
	if err := doc.EditPoint(row, pa); err != nil {
		return err
	}
	if err := doc.SaveFile(flagFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Edited %s\n", types.PointName(row))
	return nil
}

func runPointDelete(cmd *cobra.Command, args []string) error {
	row, err := parseRow(args[0])
	if err != nil {
		return err
	}
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	if err := doc.DeletePoint(row); err != nil {
		return err
	}
	if err := doc.SaveFile(flagFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", types.PointName(row))
	return nil
}

func runPointList(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	for row, p := range doc.Points.Points() {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t(%.4f, %.4f)\t%s\n",
			row, p.TypeText(), p.Color, p.X, p.Y, p.LinksText())
	}
	return nil
}
