package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pokegrid/pkg/catalog"
	"pokegrid/pkg/pager"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [query]",
	Short: "Run one query and print the first page as JSON",
	Long: `Fetch runs a single query without the interactive interface and
writes the first page of results to stdout as JSON. The optional
argument is a search text (name or id); combine with --category and
--sort the same way as the interactive form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, p, err := buildPager(cmd)
		if err != nil {
			return err
		}

		text := ""
		if len(args) == 1 {
			text = args[0]
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		page, err := p.Submit(ctx, pager.Input{
			Text:     text,
			Category: cfg.Category,
			Sort:     catalog.SortKey(cfg.Sort),
		})
		if err != nil {
			return err
		}

		out := struct {
			Results []catalog.Entity `json:"results"`
			HasMore bool             `json:"has_more"`
			Notice  string           `json:"notice,omitempty"`
		}{
			Results: page.Entities,
			HasMore: page.HasMore,
			Notice:  page.Notice,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}
