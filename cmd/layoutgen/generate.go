package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/v0xg/layoutgen/internal/generator"
	"github.com/v0xg/layoutgen/internal/site"
)

func newGenerateCmd() *cobra.Command {
	var (
		persona    string
		personaIDs []string
		brand      string
		save       bool
	)
	cmd := &cobra.Command{
		Use:   "generate <page-type>",
		Short: "Generate one page layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if brand == "" {
				brand = cfg.BrandID
			}
			res, err := newGenerator(st).Generate(cmd.Context(), generator.Request{
				WebsiteID:     cfg.WebsiteID,
				WorkspaceID:   cfg.WorkspaceID,
				PageType:      args[0],
				TargetPersona: persona,
				PersonaIDs:    personaIDs,
				BrandID:       brand,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "→ %s page: %d sections via %s (confidence %.2f)\n",
				res.Layout.PageType, len(res.Layout.Sections), res.Layout.GeneratedBy, res.Layout.ConfidenceScore)
			if res.BelowMinimum {
				fmt.Fprintln(os.Stderr, "⚠ fewer sections than this page type usually needs; add more content to the knowledge base")
			}

			layout := res.Layout
			if save {
				if layout, err = st.SavePageLayout(cmd.Context(), layout); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "→ saved %s\n", layout.Slug)
			}
			return printJSON(layout)
		},
	}
	cmd.Flags().StringVar(&persona, "persona", "", "Target persona label (e.g. business, developer)")
	cmd.Flags().StringSliceVar(&personaIDs, "persona-id", nil, "Persona ids to consider (default: all in workspace)")
	cmd.Flags().StringVar(&brand, "brand", "", "Brand id (default: from config)")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the layout")
	return cmd
}

func newSiteCmd() *cobra.Command {
	var (
		persona string
		save    bool
	)
	cmd := &cobra.Command{
		Use:   "site <page-type>...",
		Short: "Generate several pages plus navigation, header and footer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			name, err := brandName(cmd.Context(), st)
			if err != nil {
				return err
			}

			opts := site.Options{Generator: newGenerator(st), Logger: logger}
			if save {
				opts.Saver = st
			}
			s, err := site.NewBuilder(opts).Build(cmd.Context(), site.Request{
				WebsiteID:     cfg.WebsiteID,
				WorkspaceID:   cfg.WorkspaceID,
				PageTypes:     args,
				TargetPersona: persona,
				BrandID:       cfg.BrandID,
				BrandName:     name,
			})
			if err != nil {
				return err
			}
			for _, p := range s.Pages {
				fmt.Fprintf(os.Stderr, "→ %-10s %-12s %d sections via %s\n", p.PageType, p.Slug, len(p.Sections), p.GeneratedBy)
			}
			return printJSON(s)
		},
	}
	cmd.Flags().StringVar(&persona, "persona", "", "Target persona label")
	cmd.Flags().BoolVar(&save, "save", false, "Persist every layout")
	return cmd
}
