package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kinematics-lab/linkage/internal/undo"
)

var (
	linkName   string
	linkColor  string
	linkPoints string
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Manage the links of the project",
}

var linkAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a link",
	Long: `Add appends a link with the given member points.

Example:
  linkage link add --name L1 --points 0,1
  linkage link add --name L2 --color Blue`,
	RunE: runLinkAdd,
}

var linkEditCmd = &cobra.Command{
	Use:   "edit ROW",
	Short: "Rewrite a link",
	Long: `Edit rewrites a link row. Renaming rewrites the reference held by
every member point.`,
	Args: cobra.ExactArgs(1),
	RunE: runLinkEdit,
}

var linkDeleteCmd = &cobra.Command{
	Use:   "delete ROW",
	Short: "Delete a link",
	Args:  cobra.ExactArgs(1),
	RunE:  runLinkDelete,
}

var linkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the links",
	RunE:  runLinkList,
}

func init() {
	for _, cmd := range []*cobra.Command{linkAddCmd, linkEditCmd} {
		cmd.Flags().StringVar(&linkName, "name", "", "link name (required)")
		cmd.Flags().StringVar(&linkColor, "color", "Blue", "display color")
		cmd.Flags().StringVar(&linkPoints, "points", "", "comma-separated member point rows")
		_ = cmd.MarkFlagRequired("name")
	}
	linkCmd.AddCommand(linkAddCmd)
	linkCmd.AddCommand(linkEditCmd)
	linkCmd.AddCommand(linkDeleteCmd)
	linkCmd.AddCommand(linkListCmd)
}

func linkArgs() (undo.LinkArgs, error) {
	points, err := parseRows(linkPoints)
	if err != nil {
		return undo.LinkArgs{}, err
	}
	return undo.LinkArgs{Name: linkName, Color: linkColor, Points: points}, nil
}

func runLinkAdd(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	la, err := linkArgs()
	if err != nil {
		return err
	}
	if _, err := doc.AddLink(la); err != nil {
		return err
	}
	if err := doc.SaveFile(flagFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", la.Name)
	return nil
}

func runLinkEdit(cmd *cobra.Command, args []string) error {
	row, err := parseRow(args[0])
	if err != nil {
		return err
	}
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	la, err := linkArgs()
	if err != nil {
		return err
	}
	if err := doc.EditLink(row, la); err != nil {
		return err
	}
	if err := doc.SaveFile(flagFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Edited %s\n", la.Name)
	return nil
}

func runLinkDelete(cmd *cobra.Command, args []string) error {
	row, err := parseRow(args[0])
	if err != nil {
		return err
	}
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	if err := doc.DeleteLink(row); err != nil {
		return err
	}
	if err := doc.SaveFile(flagFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted link row %d\n", row)
	return nil
}

func runLinkList(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	for row, l := range doc.Links.Links() {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", row, l.Name, l.Color, l.PointsText())
	}
	return nil
}
