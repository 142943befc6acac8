package cmd

import (
	"fmt"

	"github.com/rogersnm/almanac/internal/markdown"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List every category in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog()
		if err != nil {
			return err
		}
		fmt.Println(markdown.RenderKeyTable("Category", cat.Categories()))
		return nil
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every tag in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog()
		if err != nil {
			return err
		}
		fmt.Println(markdown.RenderKeyTable("Tag", cat.Tags()))
		return nil
	},
}

var authorsCmd = &cobra.Command{
	Use:   "authors",
	Short: "List every author in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog()
		if err != nil {
			return err
		}
		fmt.Println(markdown.RenderKeyTable("Author", cat.Authors()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(authorsCmd)
}
