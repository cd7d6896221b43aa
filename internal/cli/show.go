package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the project summary",
	Long: `Show prints the mechanism expression and the project's links,
driver variables, storage entries and recorded paths.`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Mechanism: %s\n", doc.Expression())

	fmt.Fprintf(out, "Links (%d):\n", doc.Links.RowCount())
	for row, l := range doc.Links.Links() {
		fmt.Fprintf(out, "  %d\t%s\t%s\t%s\n", row, l.Name, l.Color, l.PointsText())
	}

	inputs := doc.InputList.Texts()
	fmt.Fprintf(out, "Inputs (%d):\n", len(inputs))
	for _, text := range inputs {
		fmt.Fprintf(out, "  %s\n", text)
	}

	fmt.Fprintf(out, "Storage (%d):\n", doc.StorageList.Count())
	for _, text := range doc.StorageList.Texts() {
		fmt.Fprintf(out, "  %s\n", text)
	}

	names := make([]string, 0, len(doc.PathData))
	for name := range doc.PathData {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Fprintf(out, "Paths (%d):\n", len(names))
	for _, name := range names {
		fmt.Fprintf(out, "  %s (%d point paths)\n", name, len(doc.PathData[name].Coords))
	}
	return nil
}
