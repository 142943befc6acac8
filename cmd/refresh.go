package cmd

import (
	"fmt"

	"github.com/rogersnm/almanac/internal/editor"
	"github.com/rogersnm/almanac/internal/source"
	"github.com/spf13/cobra"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh <id>",
	Short: "Re-ingest a document from its source file",
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
		raw, err := source.ReadFile(doc.SourceRef)
		if err != nil {
			return err
		}

		id, err := cat.Ingest(raw.Ref, raw.Data)
		if err != nil {
			printIngestError(raw.Ref, err)
			return fmt.Errorf("document rejected; catalog keeps the prior version")
		}
		fmt.Printf("Refreshed %s\n", id)
		return nil
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a document's source file in $EDITOR and re-ingest it",
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
		if err := editor.Open(doc.SourceRef); err != nil {
			return err
		}

		raw, err := source.ReadFile(doc.SourceRef)
		if err != nil {
			return err
		}
		if _, err := cat.Ingest(raw.Ref, raw.Data); err != nil {
			printIngestError(raw.Ref, err)
			return fmt.Errorf("edited document is invalid; fix it and run: almanac refresh %s", doc.ID)
		}
		fmt.Printf("Updated %s\n", doc.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(editCmd)
}
