package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"pokegrid/internal/config"
	"pokegrid/internal/ui"
	"pokegrid/pkg/api"
	"pokegrid/pkg/cache"
	"pokegrid/pkg/catalog"
	"pokegrid/pkg/fetch"
	"pokegrid/pkg/logging"
	"pokegrid/pkg/pager"
)

var version = "dev"

var (
	flagConfig   string
	flagPageSize int
	flagCategory string
	flagSort     string
	flagQuery    string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "pokegrid",
	Short: "Browse the Pokédex from your terminal",
	Long: `Pokegrid is a terminal Pokédex browser. It pages through the full
catalog, filters by type, looks up single Pokémon by name or id, and
renders results as a card grid.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, p, err := buildPager(cmd)
		if err != nil {
			return err
		}
		return ui.Run(p, ui.Options{
			InitialQuery:    flagQuery,
			InitialCategory: cfg.Category,
			InitialSort:     catalog.SortKey(cfg.Sort),
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().IntVar(&flagPageSize, "page-size", 0, "results per page")
	rootCmd.PersistentFlags().StringVar(&flagCategory, "category", "", "filter by type")
	rootCmd.PersistentFlags().StringVar(&flagSort, "sort", "", "sort order (id-asc, id-desc, name-asc, name-desc)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "initial search text")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(versionCmd)
}

// buildPager loads config, applies flag overrides, sets up logging and
// metrics, and wires the client, cache, batch fetcher and pager together.
func buildPager(cmd *cobra.Command) (*config.Config, *pager.Pager, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	// Flags override file and environment.
	if cmd.Flags().Changed("page-size") {
		cfg.PageSize = flagPageSize
	}
	if flagCategory != "" {
		cfg.Category = flagCategory
	}
	if flagSort != "" {
		cfg.Sort = flagSort
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}
	if cfg.Sort != "" && catalog.ParseSortKey(cfg.Sort) == catalog.SortNone {
		return nil, nil, fmt.Errorf("unknown sort order %q", cfg.Sort)
	}

	// The TUI owns stdout, so logs go to a file (or nowhere).
	logger, err := logging.SetupFile(cfg.LogFile, logging.LogLevel(cfg.LogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("setup logging: %w", err)
	}

	client, err := api.New(api.Config{
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create api client: %w", err)
	}

	store := cache.NewStore()
	resolver := cache.NewResolver(store, client)
	batch := fetch.NewBatchFetcher(resolver, fetch.Config{MaxConcurrency: cfg.MaxConcurrency})
	p := pager.New(client, resolver, batch, cfg.PageSize)

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Error().Err(err).Str("addr", cfg.MetricsAddr).Msg("Metrics server stopped")
			}
		}()
		logger.Info().Str("addr", cfg.MetricsAddr).Msg("Metrics server listening")
	}

	logger.Info().
		Str("base_url", cfg.BaseURL).
		Int("page_size", cfg.PageSize).
		Int("max_concurrency", cfg.MaxConcurrency).
		Msg("Pokegrid starting")

	return cfg, p, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pokegrid %s\n", version)
	},
}
