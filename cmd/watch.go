package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rogersnm/almanac/internal/catalog"
	"github.com/rogersnm/almanac/internal/source"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Mirror filesystem changes into the catalog until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, dir, err := loadCatalog()
		if err != nil {
			return err
		}

		w, err := source.NewWatcher(dir)
		if err != nil {
			return err
		}
		defer w.Close()

		fmt.Printf("Watching %s (%d document(s) loaded). Ctrl-C to stop.\n", dir, cat.Len())

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		for {
			select {
			case ev, ok := <-w.Events():
				if !ok {
					return nil
				}
				handleWatchEvent(cat, ev)
			case <-sig:
				fmt.Println("\nStopped.")
				return nil
			}
		}
	},
}

func handleWatchEvent(cat *catalog.Catalog, ev source.Event) {
	if ev.Removed {
		id, ok := cat.FindBySource(ev.Ref)
		if !ok {
			return
		}
		if _, err := cat.Remove(id); err == nil {
			fmt.Printf("Evicted %s\n", id)
		}
		return
	}

	raw, err := source.ReadFile(ev.Ref)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return
	}
	id, err := cat.Ingest(raw.Ref, raw.Data)
	if err != nil {
		printIngestError(raw.Ref, err)
		return
	}
	fmt.Printf("Ingested %s\n", id)
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
