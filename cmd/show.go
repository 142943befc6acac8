package cmd

import (
	"fmt"
	"strings"

	"github.com/rogersnm/almanac/internal/markdown"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a document's metadata and body",
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

		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			data, err := markdown.Marshal(doc.Meta, doc.Body)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		}

		fields := []string{
			markdown.RenderField("ID", doc.ID),
			markdown.RenderField("Category", doc.Meta.Category),
			markdown.RenderField("Author", doc.Meta.Author),
		}
		if doc.Meta.AuthorURL != "" {
			fields = append(fields, markdown.RenderField("Author URL", doc.Meta.AuthorURL))
		}
		fields = append(fields,
			markdown.RenderField("Tags", strings.Join(doc.Meta.Tags, ", ")),
			markdown.RenderField("Updated", doc.Meta.LastUpdated.String()),
			markdown.RenderField("Source", doc.SourceRef),
		)
		fmt.Print(markdown.RenderEntityHeader(doc.Meta.Name, fields))
		fmt.Println()
		fmt.Println(doc.Meta.Description)

		if doc.Body != "" {
			rendered, err := markdown.RenderMarkdown(doc.Body)
			if err != nil {
				return err
			}
			fmt.Print(rendered)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("raw", false, "print the original frontmatter and body")
	rootCmd.AddCommand(showCmd)
}
