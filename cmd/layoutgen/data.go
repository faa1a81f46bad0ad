package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/v0xg/layoutgen/internal/catalog"
	"github.com/v0xg/layoutgen/internal/crawler"
	"github.com/v0xg/layoutgen/internal/model"
	"github.com/v0xg/layoutgen/internal/store"
)

func newCrawlCmd() *cobra.Command {
	opts := crawler.Options{}
	cmd := &cobra.Command{
		Use:   "crawl <url>",
		Short: "Import copy from an existing site into the knowledge base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(os.Stderr, "→ Crawling %s... ", args[0])
			snap, err := crawler.Crawl(cmd.Context(), args[0], opts)
			if err != nil {
				fmt.Fprintln(os.Stderr, "failed")
				return err
			}
			items := crawler.ToKnowledgeItems(snap, cfg.WorkspaceID)
			fmt.Fprintf(os.Stderr, "done (found %d items)\n", len(items))

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			for _, it := range items {
				if _, err := st.AddKnowledgeItem(cmd.Context(), store.AddItemParams{
					WorkspaceID: it.WorkspaceID,
					EntityType:  it.EntityType,
					Content:     it.Content,
					Metadata:    it.Metadata,
				}); err != nil {
					return err
				}
			}
			return printJSON(snap)
		},
	}
	cmd.Flags().IntVar(&opts.Width, "width", 1280, "Viewport width")
	cmd.Flags().IntVar(&opts.Height, "height", 800, "Viewport height")
	cmd.Flags().StringVar(&opts.ProfileDir, "profile", "", "Chrome/Chromium profile directory for authenticated sessions (close browser first)")
	return cmd
}

// seedFile is the fixture format accepted by the seed command.
type seedFile struct {
	Knowledge []model.KnowledgeItem `yaml:"knowledge"`
	Personas  []model.Persona       `yaml:"personas"`
	Brand     *model.BrandConfig    `yaml:"brand"`
}

func loadSeed(path, workspaceID string) (*seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	for i := range f.Knowledge {
		if f.Knowledge[i].WorkspaceID == "" {
			f.Knowledge[i].WorkspaceID = workspaceID
		}
	}
	for i := range f.Personas {
		if f.Personas[i].WorkspaceID == "" {
			f.Personas[i].WorkspaceID = workspaceID
		}
	}
	return &f, nil
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.yaml>",
		Short: "Load knowledge items, personas and a brand from YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadSeed(args[0], cfg.WorkspaceID)
			if err != nil {
				return err
			}
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			for _, it := range f.Knowledge {
				if _, err := st.AddKnowledgeItem(ctx, store.AddItemParams{
					WorkspaceID: it.WorkspaceID,
					EntityType:  it.EntityType,
					Content:     it.Content,
					Metadata:    it.Metadata,
				}); err != nil {
					return err
				}
			}
			for _, p := range f.Personas {
				if _, err := st.PutPersona(ctx, p); err != nil {
					return err
				}
			}
			if f.Brand != nil {
				b, err := st.PutBrand(ctx, *f.Brand)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "→ brand %s stored as %s\n", b.Name, b.ID)
			}
			fmt.Fprintf(os.Stderr, "→ seeded %d items and %d personas into %s\n", len(f.Knowledge), len(f.Personas), cfg.WorkspaceID)
			return nil
		},
	}
}

func newCatalogCmd() *cobra.Command {
	var category, role string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the component catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defs := catalog.Default().All()
			if category != "" {
				defs = catalog.ByCategory(catalog.Category(category))
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCATEGORY\tROLE\tPOSITION\tREQUIRES")
			for _, d := range defs {
				if role != "" && string(d.AI.NarrativeRole) != role {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.ID, d.Category, d.AI.NarrativeRole,
					d.AI.PositionHints.Preferred, strings.Join(d.AI.ContentRequirements.Required, ", "))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Only this category (hero, features, pricing, ...)")
	cmd.Flags().StringVar(&role, "role", "", "Only this narrative role (hook, problem, solution, proof, action)")
	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [slug]",
		Short: "Print a saved layout, or list saved layouts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if len(args) == 0 {
				layouts, err := st.ListPageLayouts(cmd.Context(), cfg.WebsiteID)
				if err != nil {
					return err
				}
				for _, l := range layouts {
					fmt.Printf("%-14s %-10s %d sections  %.2f  %s\n", l.Slug, l.PageType, len(l.Sections), l.ConfidenceScore, l.GeneratedBy)
				}
				return nil
			}

			slug := args[0]
			if !strings.HasPrefix(slug, "/") {
				slug = "/" + slug
			}
			l, err := st.GetPageLayout(cmd.Context(), cfg.WebsiteID, slug)
			if err != nil {
				return err
			}
			if l == nil {
				return fmt.Errorf("no layout saved for %s on website %s", slug, cfg.WebsiteID)
			}
			return printJSON(l)
		},
	}
}
