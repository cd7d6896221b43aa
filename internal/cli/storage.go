package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var storageName string

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Manage stored mechanism configurations",
}

var storageAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Store the current mechanism expression",
	Long: `Add captures the current mechanism as a named storage entry.

Example:
  linkage storage add --name FourBar`,
	RunE: runStorageAdd,
}

var storageDeleteCmd = &cobra.Command{
	Use:   "delete ROW",
	Short: "Remove a storage entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runStorageDelete,
}

var storageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the storage entries",
	RunE:  runStorageList,
}

func init() {
	storageAddCmd.Flags().StringVar(&storageName, "name", "", "entry name (default: the field placeholder)")
	storageCmd.AddCommand(storageAddCmd)
	storageCmd.AddCommand(storageDeleteCmd)
	storageCmd.AddCommand(storageListCmd)
}

func runStorageAdd(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	doc.StorageName.SetText(storageName)
	if err := doc.StoreMechanism(); err != nil {
		return err
	}
	if err := doc.SaveFile(flagFile); err != nil {
		return err
	}
	item, err := doc.StorageList.Item(doc.StorageList.Count() - 1)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Stored %s\n", item.Text)
	return nil
}

func runStorageDelete(cmd *cobra.Command, args []string) error {
	row, err := parseRow(args[0])
	if err != nil {
		return err
	}
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	if err := doc.DeleteStorageEntry(row); err != nil {
		return err
	}
	if err := doc.SaveFile(flagFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted storage row %d\n", row)
	return nil
}

func runStorageList(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	for row := 0; row < doc.StorageList.Count(); row++ {
		item, err := doc.StorageList.Item(row)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", row, item.Text, item.Expr)
	}
	return nil
}
