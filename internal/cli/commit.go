package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kinematics-lab/linkage/internal/project"
	"github.com/kinematics-lab/linkage/internal/sqlite"
)

var (
	commitMessage string
	commitAuthor  string
	commitBranch  string
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Snapshot the project into the commit history",
	Long: `Commit saves the current design as a commit on a branch. The
commit carries the full design: mechanism, link colors, storage entries,
driver variables and recorded paths.

Example:
  linkage commit -m "crank ratio tuned" --author alice`,
	RunE: runCommit,
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List the commit history, newest first",
	RunE:  runLog,
}

var checkoutCmd = &cobra.Command{
	Use:   "checkout COMMIT",
	Short: "Restore the project from a commit",
	Long: `Checkout rebuilds the project file from a commit snapshot. The
current project file is overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckout,
}

func init() {
	commitCmd.Flags().StringVarP(&commitMessage, "message", "m", "", "commit description (required)")
	commitCmd.Flags().StringVar(&commitAuthor, "author", "anonymous", "author name")
	commitCmd.Flags().StringVar(&commitBranch, "branch", "master", "branch name")
	_ = commitCmd.MarkFlagRequired("message")
}

// payloadOf snapshots a document into a commit payload.
func payloadOf(doc *project.Document) (sqlite.Payload, error) {
	p := sqlite.Payload{
		Mechanism:  doc.Expression(),
		LinkColors: doc.LinkColors(),
		Inputs:     doc.Inputs(),
		Paths:      doc.PathData,
	}
	for row := 0; row < doc.StorageList.Count(); row++ {
		item, err := doc.StorageList.Item(row)
		if err != nil {
			return sqlite.Payload{}, err
		}
		p.Storage = append(p.Storage, []string{item.Text, item.Expr})
	}
	return p, nil
}

func runCommit(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument()
	if err != nil {
		return err
	}
	payload, err := payloadOf(doc)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(commitBranch, commitAuthor, commitMessage, payload)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", commitBranch, id)
	return nil
}

func runLog(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	log, err := store.Log()
	if err != nil {
		return err
	}
	for _, c := range log {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s  %s  %s\n",
			c.ID, c.Date.Format("2006-01-02 15:04:05"), c.Branch, c.Author, c.Description)
	}
	return nil
}

func runCheckout(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	c, err := store.Get(args[0])
	if err != nil {
		return err
	}

	doc := project.New()
	if err := doc.LoadExpression(c.Payload.Mechanism, c.Payload.LinkColors); err != nil {
		return err
	}
	for _, v := range c.Payload.Inputs {
		if err := doc.AddInput(v.Base, v.Drive); err != nil {
			return err
		}
	}
	for _, entry := range c.Payload.Storage {
		if len(entry) != 2 {
			continue
		}
		if err := doc.AddStorageEntry(entry[0], entry[1]); err != nil {
			return err
		}
	}
	for name, path := range c.Payload.Paths {
		if err := doc.RecordPath(name, path); err != nil {
			return err
		}
	}

	if err := doc.SaveFile(flagFile); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Checked out %s\n", c.ID)
	return nil
}
