package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var inputCmd = &cobra.Command{
	Use:   "input",
	Short: "Manage the driver variables of the project",
}

var inputAddCmd = &cobra.Command{
	Use:   "add BASE DRIVE",
	Short: "Register a driver variable",
	Long: `Add registers a driver variable for a base/drive point pair. The
two points must share a link; the initial value is the slope angle from
base to drive.

Example:
  linkage input add 0 1`,
	Args: cobra.ExactArgs(2),
	RunE: runInputAdd,
}

var inputDeleteCmd = &cobra.Command{
	Use:   "delete ROW",
	Short: "Remove a driver variable",
	Args:  cobra.ExactArgs(1),
	RunE:  runInputDelete,
}

var inputListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the driver variables",
	RunE:  runInputList,
}

func init() {
	inputCmd.AddCommand(inputAddCmd)
	inputCmd.AddCommand(inputDeleteCmd)
	inputCmd.AddCommand(inputListCmd)
}

func runInputAdd(cmd *cobra.Command, args []string) error {
	base, err := parseRow(args[0])
	if err != nil {
		return err
	}
	drive, err := parseRow(args[1])
	if err != nil {
		return err
	}
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	if err := doc.AddInput(base, drive); err != nil {
		return err
	}
	if err := doc.SaveFile(flagFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added input Point%d->Point%d\n", base, drive)
	return nil
}

func runInputDelete(cmd *cobra.Command, args []string) error {
	row, err := parseRow(args[0])
	if err != nil {
		return err
	}
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	if err := doc.DeleteInput(row); err != nil {
		return err
	}
	if err := doc.SaveFile(flagFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted input row %d\n", row)
	return nil
}

func runInputList(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	for row, text := range doc.InputList.Texts() {
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", row, text)
	}
	return nil
}
