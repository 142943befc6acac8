package cmd

import (
	"fmt"
	"strings"

	"github.com/rogersnm/almanac/internal/catalog"
	"github.com/rogersnm/almanac/internal/markdown"
	"github.com/rogersnm/almanac/internal/model"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [text...]",
	Short: "Search the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, _, err := loadCatalog()
		if err != nil {
			return err
		}

		filter, err := filterFromFlags(cmd, args)
		if err != nil {
			return err
		}

		res, err := cat.Search(filter)
		if err != nil {
			return err
		}

		fmt.Println(markdown.RenderSummaryTable(res.Items))
		fmt.Println(markdown.RenderCount(len(res.Items), res.Total))
		return nil
	},
}

func filterFromFlags(cmd *cobra.Command, args []string) (catalog.Filter, error) {
	category, _ := cmd.Flags().GetString("category")
	tags, _ := cmd.Flags().GetStringSlice("tag")
	author, _ := cmd.Flags().GetString("author")
	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	sortBy, _ := cmd.Flags().GetString("sort")
	limit, _ := cmd.Flags().GetInt("limit")
	offset, _ := cmd.Flags().GetInt("offset")

	f := catalog.Filter{
		Category: category,
		Tags:     tags,
		Author:   author,
		Text:     strings.Join(args, " "),
		Sort:     catalog.Sort(sortBy),
		Limit:    limit,
		Offset:   offset,
	}
	if f.Limit == 0 {
		f.Limit = pageSize()
	}

	var err error
	if from != "" {
		if f.DateFrom, err = model.ParseDate(from); err != nil {
			return catalog.Filter{}, &catalog.InvalidFilterError{Reason: fmt.Sprintf("from: %v", err)}
		}
	}
	if to != "" {
		if f.DateTo, err = model.ParseDate(to); err != nil {
			return catalog.Filter{}, &catalog.InvalidFilterError{Reason: fmt.Sprintf("to: %v", err)}
		}
	}
	return f, nil
}

func init() {
	searchCmd.Flags().String("category", "", "exact category match")
	searchCmd.Flags().StringSlice("tag", nil, "tag the documents must carry (repeatable, AND semantics)")
	searchCmd.Flags().String("author", "", "exact author match")
	searchCmd.Flags().String("from", "", "earliest lastUpdated date (YYYY-MM-DD, inclusive)")
	searchCmd.Flags().String("to", "", "latest lastUpdated date (YYYY-MM-DD, inclusive)")
	searchCmd.Flags().String("sort", string(catalog.SortRecency), "sort order: recency or name")
	searchCmd.Flags().Int("limit", 0, "page size")
	searchCmd.Flags().Int("offset", 0, "items to skip")
	rootCmd.AddCommand(searchCmd)
}
