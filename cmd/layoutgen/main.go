package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/v0xg/layoutgen/internal/ai"
	"github.com/v0xg/layoutgen/internal/config"
	"github.com/v0xg/layoutgen/internal/generator"
	"github.com/v0xg/layoutgen/internal/store"
)

var (
	configPath   string
	dbPath       string
	providerName string
	modelName    string
	verbose      bool

	cfg    *config.Config
	logger = zap.NewNop()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "layoutgen",
		Short: "Generate marketing page layouts from your knowledge base",
		Long: `layoutgen picks and orders visual components for a marketing page so the page
tells a story (hook, problem, solution, proof, action) with the content you have.

It asks an LLM for a plan when one is configured and falls back to
deterministic rule-based planning otherwise.

Example:
  layoutgen seed acme.yaml
  layoutgen generate pricing --persona business --save`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = logger.Sync() },
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "layoutgen.yaml", "Config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (default: from config)")
	rootCmd.PersistentFlags().StringVar(&providerName, "provider", "", "AI provider: claude, openai, none (default: from config)")
	rootCmd.PersistentFlags().StringVar(&modelName, "model", "", "Specific model override")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show detailed progress")

	rootCmd.AddCommand(
		newGenerateCmd(),
		newSiteCmd(),
		newCrawlCmd(),
		newSeedCmd(),
		newCatalogCmd(),
		newShowCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if dbPath != "" {
		c.Database = dbPath
	}
	if providerName != "" {
		c.LLM.Provider = providerName
	}
	if modelName != "" {
		c.LLM.Model = modelName
	}
	cfg = c

	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = l
	return nil
}

func openStore() (*store.SQLiteStore, error) {
	st, err := store.NewSQLiteStore(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", cfg.Database, err)
	}
	return st, nil
}

// newProvider returns nil when the LLM is disabled. A provider that cannot
// be set up still fails each attempt with its error, so results report
// e.g. missing_credentials rather than disabled.
func newProvider() ai.Provider {
	if !cfg.LLMEnabled() {
		return nil
	}
	p, err := ai.NewProvider(cfg.LLM.Provider, ai.Options{
		Model:   cfg.LLM.Model,
		APIKey:  cfg.LLM.APIKey,
		BaseURL: cfg.LLM.BaseURL,
	})
	if err != nil {
		logger.Warn("llm provider unavailable", zap.String("provider", cfg.LLM.Provider), zap.Error(err))
		return ai.Unavailable(cfg.LLM.Provider, err)
	}
	return p
}

func newGenerator(st *store.SQLiteStore) *generator.Generator {
	return generator.New(generator.Options{
		Provider:    newProvider(),
		Content:     st,
		Personas:    st,
		Brands:      st,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
		Logger:      logger,
	})
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
