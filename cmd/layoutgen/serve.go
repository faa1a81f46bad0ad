package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/v0xg/layoutgen/internal/api"
	"github.com/v0xg/layoutgen/internal/store"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generation API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			name, err := brandName(ctx, st)
			if err != nil {
				return err
			}
			srv := &http.Server{
				Addr: addr,
				Handler: api.NewServer(api.Options{
					Generator:   newGenerator(st),
					Layouts:     st,
					WebsiteID:   cfg.WebsiteID,
					WorkspaceID: cfg.WorkspaceID,
					BrandID:     cfg.BrandID,
					BrandName:   name,
					Logger:      logger,
				}).Handler(),
				ReadHeaderTimeout: 10 * time.Second,
				WriteTimeout:      2 * time.Minute,
				IdleTimeout:       60 * time.Second,
			}

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info("server starting", zap.String("addr", addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	return cmd
}

// brandName resolves the configured brand's display name, or "" when no
// brand is configured.
func brandName(ctx context.Context, st *store.SQLiteStore) (string, error) {
	if cfg.BrandID == "" {
		return "", nil
	}
	b, err := st.FetchBrandConfig(ctx, cfg.BrandID)
	if err != nil || b == nil {
		return "", err
	}
	return b.Name, nil
}
