package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/almanac/internal/catalog"
	"github.com/rogersnm/almanac/internal/catalogfile"
	"github.com/rogersnm/almanac/internal/config"
	"github.com/rogersnm/almanac/internal/source"
	"github.com/spf13/cobra"
)

var (
	version     = "dev"
	dataDir     string
	catalogFlag string
	cfg         *config.Config
)

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".almanac")
	}
	return filepath.Join(home, ".almanac")
}

var rootCmd = &cobra.Command{
	Use:     "almanac",
	Short:   "Catalog of frontmatter-tagged markdown examples",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(dataDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "config directory path")
	rootCmd.PersistentFlags().StringVarP(&catalogFlag, "catalog", "C", "", "catalog directory of example documents")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"ingest": {
				Examples: []mtp.Example{
					{Description: "Validate and add a document to the catalog", Command: "almanac ingest examples/react-app.md"},
					{Description: "Ingest a whole directory", Command: "almanac ingest ./incoming --catalog ./examples"},
				},
			},
			"validate": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Per-file verdicts with every metadata violation listed",
				},
				Examples: []mtp.Example{
					{Description: "Lint contributions without storing them", Command: "almanac validate examples/*.md"},
				},
			},
			"search": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Table of matching documents plus a total-match count",
				},
				Examples: []mtp.Example{
					{Description: "Filter by category", Command: "almanac search --category \"Backend Service\""},
					{Description: "Documents carrying all listed tags", Command: "almanac search --tag react --tag typescript"},
					{Description: "Free text over name and description", Command: "almanac search starter kit"},
					{Description: "Date-bounded, name-sorted page", Command: "almanac search --from 2024-01-01 --to 2024-12-31 --sort name --limit 10"},
				},
			},
			"show": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/markdown",
					Description: "Document metadata header followed by the rendered body",
				},
				Examples: []mtp.Example{
					{Description: "Show a document", Command: "almanac show react-app"},
					{Description: "Print the raw source", Command: "almanac show react-app --raw"},
				},
			},
			"remove": {
				Examples: []mtp.Example{
					{Description: "Evict a document and delete its source (interactive confirm)", Command: "almanac remove react-app"},
					{Description: "Skip the confirmation", Command: "almanac remove react-app --force"},
				},
			},
			"refresh": {
				Examples: []mtp.Example{
					{Description: "Re-ingest a document from its source file", Command: "almanac refresh react-app"},
				},
			},
			"watch": {
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Log of ingestions and evictions as files change",
				},
				Examples: []mtp.Example{
					{Description: "Mirror filesystem changes into the catalog", Command: "almanac watch --catalog ./examples"},
				},
			},
			"catalog link": {
				Examples: []mtp.Example{
					{Description: "Pin the current directory to a catalog", Command: "almanac catalog link ./examples"},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	return rootCmd.Execute()
}

// resolveCatalogDir returns the catalog directory from the flag, a
// repo-local .almanac-catalog file, or the configured default.
func resolveCatalogDir() (string, error) {
	if catalogFlag != "" {
		return catalogFlag, nil
	}
	if cwd, err := os.Getwd(); err == nil {
		if dir, _, _ := catalogfile.Find(cwd); dir != "" {
			return dir, nil
		}
	}
	if cfg != nil && cfg.DefaultCatalog != "" {
		return cfg.DefaultCatalog, nil
	}
	return "", fmt.Errorf("--catalog is required (or set a default with: almanac catalog set-default <dir>, or link a directory with: almanac catalog link)")
}

func catalogOptions() catalog.Options {
	opts := catalog.Options{}
	if cfg != nil && cfg.FutureSlackDays > 0 {
		opts.FutureSlack = time.Duration(cfg.FutureSlackDays) * 24 * time.Hour
	}
	return opts
}

// loadCatalog scans the resolved catalog directory and ingests every
// markdown file. Files that fail to parse or validate are reported on
// stderr and skipped; the rest of the catalog stays usable.
func loadCatalog() (*catalog.Catalog, string, error) {
	dir, err := resolveCatalogDir()
	if err != nil {
		return nil, "", err
	}
	docs, err := source.ScanDir(dir)
	if err != nil {
		return nil, "", err
	}

	cat := catalog.New(catalogOptions())
	for _, doc := range docs {
		if _, err := cat.Ingest(doc.Ref, doc.Data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}
	return cat, dir, nil
}

func pageSize() int {
	if cfg != nil && cfg.PageSize > 0 {
		return cfg.PageSize
	}
	return catalog.DefaultPageSize
}
