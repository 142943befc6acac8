package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Evict a document and delete its source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog()
		if err != nil {
			return err
		}

		doc, err := cat.Get(args[0])
		if err != nil {
			return err
		}

		if force, _ := cmd.Flags().GetBool("force"); !force {
			var confirmed bool
			err := huh.NewConfirm().
				Title(fmt.Sprintf("Delete %s (%s)?", doc.ID, doc.SourceRef)).
				Value(&confirmed).
				Run()
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println("Aborted.")
				return nil
			}
		}

		if _, err := cat.Remove(doc.ID); err != nil {
			return err
		}
		if err := os.Remove(doc.SourceRef); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("deleting %s: %w", doc.SourceRef, err)
		}
		fmt.Printf("Removed %s\n", doc.ID)
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolP("force", "f", false, "skip the confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}
