package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dailylift/dailylift/internal/routes"
	"github.com/dailylift/dailylift/internal/watch"
)

func ServeCmd() *cobra.Command {
	var port string
	var noWatch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build, serve the output directory and rebuild on changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			defer closeApp(a)

			if port == "" {
				port = a.Cfg.Port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if _, err := a.BuildService.Build(ctx); err != nil {
				return fmt.Errorf("initial build failed: %w", err)
			}

			rebuild := func(ctx context.Context) error {
				_, err := a.BuildService.Build(ctx)
				return err
			}
			if !noWatch {
				watcher := watch.New([]string{a.Cfg.SrcPath, a.Cfg.ContentPath, a.Cfg.DataPath}, watch.DefaultDebounce, rebuild)
				go func() {
					if err := watcher.Run(ctx); err != nil {
						slog.Error("watcher stopped", "error", err)
					}
				}()
			}

			server := &http.Server{
				Addr:              ":" + port,
				Handler:           routes.SetupRoutes(a.Cfg.DistPath),
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				server.Shutdown(shutdownCtx)
			}()

			slog.Info("server starting", "port", port, "dist", a.Cfg.DistPath, "url", "http://localhost:"+port)
			err = server.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (default $PORT or 8090)")
	cmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not rebuild on file changes")
	return cmd
}
