package cmd

import (
	"fmt"

	"github.com/rogersnm/almanac/internal/catalog"
	"github.com/rogersnm/almanac/internal/markdown"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|dir>...",
	Short: "Check documents against the metadata schema without storing them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := collectDocs(args)
		if err != nil {
			return err
		}

		// A scratch catalog exercises the exact ingestion path, then gets
		// thrown away.
		scratch := catalog.New(catalogOptions())
		failed := 0
		for _, doc := range docs {
			_, err := scratch.Ingest(doc.Ref, doc.Data)
			fmt.Println(markdown.RenderVerdict(err == nil, doc.Ref))
			if err != nil {
				failed++
				printIngestError(doc.Ref, err)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d document(s) invalid", failed, len(docs))
		}
		fmt.Printf("%d document(s) valid\n", len(docs))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
