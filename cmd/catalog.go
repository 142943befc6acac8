package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rogersnm/almanac/internal/catalogfile"
	"github.com/rogersnm/almanac/internal/config"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage catalog directory settings",
}

var catalogLinkCmd = &cobra.Command{
	Use:   "link <dir>",
	Short: "Pin the current directory tree to a catalog directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return fmt.Errorf("%s is not a directory", dir)
		}

		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := catalogfile.Write(cwd, dir); err != nil {
			return err
		}
		fmt.Printf("Linked %s to %s\n", cwd, dir)
		return nil
	},
}

var catalogUnlinkCmd = &cobra.Command{
	Use:   "unlink",
	Short: "Remove the repo-local catalog link",
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := catalogfile.Remove(cwd); err != nil {
			return err
		}
		fmt.Println("Unlinked")
		return nil
	},
}

var catalogSetDefaultCmd = &cobra.Command{
	Use:   "set-default <dir>",
	Short: "Set the default catalog directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}
		cfg.DefaultCatalog = dir
		if err := config.Save(dataDir, cfg); err != nil {
			return err
		}
		fmt.Printf("Default catalog set to %s\n", dir)
		return nil
	},
}

var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which catalog directory would be used",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveCatalogDir()
		if err != nil {
			return err
		}
		cat, _, err := loadCatalog()
		if err != nil {
			return err
		}
		fmt.Printf("Catalog: %s\n", dir)
		fmt.Printf("Documents: %d\n", cat.Len())
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogLinkCmd)
	catalogCmd.AddCommand(catalogUnlinkCmd)
	catalogCmd.AddCommand(catalogSetDefaultCmd)
	catalogCmd.AddCommand(catalogStatusCmd)
	rootCmd.AddCommand(catalogCmd)
}
