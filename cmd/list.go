package cmd

import (
	"fmt"

	"github.com/rogersnm/almanac/internal/catalog"
	"github.com/rogersnm/almanac/internal/markdown"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every document, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog()
		if err != nil {
			return err
		}
		if cat.Len() == 0 {
			fmt.Println("No documents found.")
			return nil
		}

		res, err := cat.Search(catalog.Filter{Limit: cat.Len()})
		if err != nil {
			return err
		}
		fmt.Println(markdown.RenderSummaryTable(res.Items))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
