package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/london-crypto-directory/internal/directory"
	"github.com/jonathan/london-crypto-directory/internal/observability"
	"github.com/jonathan/london-crypto-directory/internal/types"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the directory from the terminal",
	Long:  "Loads the company snapshot once and prints the rows matching --q and --category.",
	RunE:  runSearch,
}

var (
	searchTerm       string
	searchCategory   string
	searchStore      string
	searchCategories bool
	searchJSON       bool
)

func init() {
	searchCmd.Flags().StringVar(&searchTerm, "q", "", "Case-insensitive search term")
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", types.AllCategories, "Exact category to filter by")
	searchCmd.Flags().StringVar(&searchStore, "store", "", "Company store driver: memory, sqlite or postgres")
	searchCmd.Flags().BoolVar(&searchCategories, "categories", false, "List categories instead of companies")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print JSON instead of a table")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if searchStore != "" {
		cfg.StoreDriver = searchStore
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	v := directory.NewView()
	if err := v.Load(ctx, st); err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}
	v.SetSearch(searchTerm)
	v.SetCategory(searchCategory)

	return printView(cmd, v, searchCategories, searchJSON)
}

func printView(cmd *cobra.Command, v *directory.View, categoriesOnly, asJSON bool) error {
	out := cmd.OutOrStdout()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if categoriesOnly {
			return enc.Encode(v.Categories())
		}
		return enc.Encode(v.Rows())
	}

	p := observability.NewPrinter(out)
	if categoriesOnly {
		p.PrintCategories(v.Categories())
		return nil
	}
	p.PrintDirectory(v)
	return nil
}
