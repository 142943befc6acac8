package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rogersnm/almanac/internal/model"
	"github.com/rogersnm/almanac/internal/source"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file|dir>...",
	Short: "Validate documents and add them to the catalog directory",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, dir, err := loadCatalog()
		if err != nil {
			return err
		}

		docs, err := collectDocs(args)
		if err != nil {
			return err
		}

		failed := 0
		for _, doc := range docs {
			id, err := cat.Ingest(doc.Ref, doc.Data)
			if err != nil {
				failed++
				printIngestError(doc.Ref, err)
				continue
			}
			if err := persistSource(dir, id, doc); err != nil {
				return err
			}
			fmt.Printf("Ingested %s (%s)\n", id, doc.Ref)
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d document(s) rejected", failed, len(docs))
		}
		return nil
	},
}

func collectDocs(paths []string) ([]source.RawDoc, error) {
	var docs []source.RawDoc
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if info.IsDir() {
			scanned, err := source.ScanDir(path)
			if err != nil {
				return nil, err
			}
			docs = append(docs, scanned...)
			continue
		}
		doc, err := source.ReadFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// persistSource copies an ingested document into the catalog directory
// under its id, unless it already lives there.
func persistSource(catalogDir, id string, doc source.RawDoc) error {
	abs, err := filepath.Abs(doc.Ref)
	if err != nil {
		return err
	}
	absDir, err := filepath.Abs(catalogDir)
	if err != nil {
		return err
	}
	if strings.HasPrefix(abs, absDir+string(filepath.Separator)) {
		return nil
	}

	dest := filepath.Join(catalogDir, id+".md")
	if err := os.WriteFile(dest, doc.Data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}

func printIngestError(ref string, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "%s:\n", ref)
		for _, v := range verr.Violations {
			fmt.Fprintf(os.Stderr, "  %s\n", v)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "%v\n", err)
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
